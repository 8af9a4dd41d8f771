// Package device connects audio streams to the system speaker.
package device

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays streamers on the default output device.
// The device is opened on first use; if that fails every Play reports the
// same error.
type Speaker struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	once    sync.Once
	initErr error
}

// NewSpeaker creates a speaker sink for the given sample rate.
func NewSpeaker(rate beep.SampleRate) *Speaker {
	return &Speaker{rate: rate}
}

func (s *Speaker) init() error {
	s.once.Do(func() {
		if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
			s.initErr = fmt.Errorf("device: speaker init: %w", err)
		}
	})
	return s.initErr
}

// Play starts s on the speaker.
func (s *Speaker) Play(st beep.Streamer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.init(); err != nil {
		return err
	}
	speaker.Play(st)
	return nil
}

// Clear stops everything the speaker is playing.
func (s *Speaker) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.init() != nil {
		return
	}
	speaker.Clear()
}
