package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a finite raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

func newOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// createCorrect is a rising two-note chime (C6, E6)
func createCorrect(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		note(1046.50, 90*time.Millisecond, WaveSine, rate),
		note(1318.51, 160*time.Millisecond, WaveSine, rate),
	)
	return newVolume(seq, cfg.volume(CueCorrect))
}

// createIncorrect is a short low saw buzz
func createIncorrect(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	buzz := newEnvelope(newOscillator(110, 250*time.Millisecond, WaveSaw, rate),
		250*time.Millisecond, 10*time.Millisecond, 80*time.Millisecond, rate)
	return newVolume(buzz, cfg.volume(CueIncorrect))
}

// createWin is a major arpeggio ending on a held octave
func createWin(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		note(523.25, 120*time.Millisecond, WaveSquare, rate),
		note(659.25, 120*time.Millisecond, WaveSquare, rate),
		note(783.99, 120*time.Millisecond, WaveSquare, rate),
		beep.Mix(
			note(1046.50, 450*time.Millisecond, WaveSine, rate),
			newVolume(note(2093.00, 450*time.Millisecond, WaveSine, rate), 0.3),
		),
	)
	return newVolume(seq, cfg.volume(CueWin))
}

// CueStream returns a fresh finite streamer for cue
func CueStream(cue Cue, cfg *Config) beep.Streamer {
	switch cue {
	case CueCorrect:
		return createCorrect(cfg)
	case CueIncorrect:
		return createIncorrect(cfg)
	case CueWin:
		return createWin(cfg)
	default:
		return nil
	}
}
