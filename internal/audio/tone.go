package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// note is one step of the background melody. Zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

// melody is a short major-key loop.
var melody = []note{
	{523.25, 200 * time.Millisecond}, // C5
	{659.25, 200 * time.Millisecond}, // E5
	{783.99, 200 * time.Millisecond}, // G5
	{659.25, 200 * time.Millisecond},
	{698.46, 200 * time.Millisecond}, // F5
	{880.00, 200 * time.Millisecond}, // A5
	{783.99, 400 * time.Millisecond},
	{0, 200 * time.Millisecond},
	{587.33, 200 * time.Millisecond}, // D5
	{698.46, 200 * time.Millisecond},
	{880.00, 200 * time.Millisecond},
	{698.46, 200 * time.Millisecond},
	{659.25, 200 * time.Millisecond},
	{587.33, 200 * time.Millisecond},
	{523.25, 400 * time.Millisecond},
	{0, 200 * time.Millisecond},
}

// tone generates a sine note with a short linear attack and release.
type tone struct {
	freq     float64
	phase    float64
	position int
	duration int
	fade     int
	rate     beep.SampleRate
}

func newTone(freq float64, dur time.Duration, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:     freq,
		duration: rate.N(dur),
		fade:     rate.N(10 * time.Millisecond),
		rate:     rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.duration {
			return i, i > 0
		}

		val := 0.0
		if t.freq > 0 {
			val = math.Sin(2*math.Pi*t.phase) * t.envelope()
			t.phase += t.freq / float64(t.rate)
			t.phase -= math.Floor(t.phase) // Keep in [0, 1)
		}

		samples[i][0] = val
		samples[i][1] = val
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope ramps the amplitude in and out to avoid clicks between notes.
func (t *tone) envelope() float64 {
	if t.fade <= 0 {
		return 1
	}
	in := float64(t.position) / float64(t.fade)
	out := float64(t.duration-t.position) / float64(t.fade)
	return math.Min(1, math.Min(in, out))
}

// renderMelody renders the melody into a seekable buffer.
func renderMelody(format beep.Format) *beep.Buffer {
	streamers := make([]beep.Streamer, 0, len(melody))
	for _, n := range melody {
		streamers = append(streamers, newTone(n.freq, n.dur, format.SampleRate))
	}

	buf := beep.NewBuffer(format)
	buf.Append(beep.Seq(streamers...))
	return buf
}
