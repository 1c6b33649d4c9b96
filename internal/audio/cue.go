package audio

// Cue names a feedback sound
type Cue int

const (
	CueCorrect Cue = iota
	CueIncorrect
	CueWin
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueCorrect:
		return "correct"
	case CueIncorrect:
		return "incorrect"
	case CueWin:
		return "win"
	default:
		return "unknown"
	}
}

// Config controls playback
type Config struct {
	Enabled      bool
	MasterVolume float64
	SampleRate   int
	CueVolumes   map[Cue]float64
}

// DefaultConfig mirrors the volumes the trainer ships with
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   44100,
		CueVolumes: map[Cue]float64{
			CueCorrect:   0.5,
			CueIncorrect: 0.5,
			CueWin:       0.4,
		},
	}
}

// volume returns the effective gain for cue
func (c *Config) volume(cue Cue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 0.5
	}
	return v * c.MasterVolume
}
