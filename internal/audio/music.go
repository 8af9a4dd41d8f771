// Package audio provides the looping background music cue.
package audio

import (
	"errors"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is the rate the melody is rendered at.
const SampleRate = beep.SampleRate(44100)

// ErrNoSink is logged when music is requested without an output device.
var ErrNoSink = errors.New("audio: no output device")

// Sink plays streamers on an output device.
type Sink interface {
	Play(s beep.Streamer) error
	Clear()
}

// Music loops a melody on a sink. Every failure is logged and swallowed:
// the game runs the same with or without sound.
type Music struct {
	mu     sync.Mutex
	sink   Sink
	buf    *beep.Buffer
	ctrl   *beep.Ctrl
	volume float64 // 0 = silent, 1 = full
	logger *log.Logger
}

// NewMusic renders the melody for sink. A nil sink gives a cue that only logs.
func NewMusic(sink Sink, volume float64, logger *log.Logger) *Music {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	format := beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}
	return &Music{
		sink:   sink,
		buf:    renderMelody(format),
		volume: math.Max(0, math.Min(1, volume)),
		logger: logger,
	}
}

// StartLoop starts the loop unless it is already playing.
func (m *Music) StartLoop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrl != nil && !m.ctrl.Paused {
		return
	}
	m.play()
}

// RestartLoop stops the current loop and plays it again from the top.
func (m *Music) RestartLoop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stop()
	m.play()
}

// Stop silences the loop.
func (m *Music) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stop()
}

// Playing reports whether the loop is running.
func (m *Music) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ctrl != nil && !m.ctrl.Paused
}

func (m *Music) play() {
	if m.sink == nil {
		m.logger.Debug("music unavailable", "error", ErrNoSink)
		return
	}

	ctrl := &beep.Ctrl{Streamer: m.stream()}
	if err := m.sink.Play(ctrl); err != nil {
		m.logger.Debug("music failed to start", "error", err)
		return
	}
	m.ctrl = ctrl
}

func (m *Music) stop() {
	if m.ctrl != nil {
		m.ctrl.Paused = true
		m.ctrl = nil
	}
	if m.sink != nil {
		m.sink.Clear()
	}
}

// stream builds a fresh looping streamer at the configured volume.
func (m *Music) stream() beep.Streamer {
	loop := beep.Loop(-1, m.buf.Streamer(0, m.buf.Len()))
	if m.volume >= 1 {
		return loop
	}
	return &effects.Volume{
		Streamer: loop,
		Base:     2,
		Volume:   math.Log2(math.Max(m.volume, 1e-3)),
		Silent:   m.volume == 0,
	}
}
