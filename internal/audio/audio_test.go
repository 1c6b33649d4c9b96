package audio

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok || n == 0 {
			return total, peak
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return total, peak
}

func TestCueStreamsAreFiniteAndAudible(t *testing.T) {
	cfg := DefaultConfig()
	limit := cfg.SampleRate * 5

	for _, cue := range []Cue{CueCorrect, CueIncorrect, CueWin} {
		t.Run(cue.String(), func(t *testing.T) {
			s := CueStream(cue, cfg)
			require.NotNil(t, s)

			n, peak := drain(t, s, limit)
			assert.Greater(t, n, cfg.SampleRate/10)
			assert.Greater(t, peak, 0.01)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestIncorrectCueDuration(t *testing.T) {
	cfg := DefaultConfig()
	n, _ := drain(t, CueStream(CueIncorrect, cfg), cfg.SampleRate*5)
	want := int(float64(cfg.SampleRate) * (250 * time.Millisecond).Seconds())
	assert.InDelta(t, want, n, 2)
}

func TestUnknownCue(t *testing.T) {
	assert.Nil(t, CueStream(Cue(99), DefaultConfig()))
	assert.Equal(t, "unknown", Cue(99).String())
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CueStream(CueCorrect, cfg), cfg.SampleRate*5)
	assert.Zero(t, peak)
}

func TestDisabledPlayerCountsButStaysSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false

	p := NewPlayer(cfg, nil)
	require.NoError(t, p.Start())
	assert.True(t, p.Silent())

	p.Play(CueWin)
	p.Play(CueWin)
	p.Play(Cue(42))
	assert.Equal(t, 2, p.Played(CueWin))
	assert.Equal(t, 0, p.Played(CueCorrect))

	p.Shutdown()
}

func TestDefaultVolumes(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 0.5, cfg.volume(CueCorrect))
	assert.Equal(t, 0.5, cfg.volume(CueIncorrect))
	assert.Equal(t, 0.4, cfg.volume(CueWin))
}
