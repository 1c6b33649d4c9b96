package audio

import (
	"fmt"
	"sync"
	"time"

	"pc-builder/internal/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays feedback cues through the system speaker. When no output
// device is available it stays silent and Play becomes a no-op.
type Player struct {
	config *Config
	logger logger.Logger
	mixer  *beep.Mixer

	mu          sync.Mutex
	initialized bool
	silent      bool
	played      [cueCount]int
}

// NewPlayer creates a player; call Start before playing
func NewPlayer(cfg *Config, log logger.Logger) *Player {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Player{
		config: cfg,
		logger: log,
		mixer:  &beep.Mixer{},
	}
}

// Start opens the speaker. A failure switches the player to silent mode and
// is returned for logging only.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if !p.config.Enabled {
		p.silent = true
		p.initialized = true
		p.logger.Info("AudioPlayer", "audio disabled by configuration", nil)
		return nil
	}

	rate := beep.SampleRate(p.config.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		p.silent = true
		p.initialized = true
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("AudioPlayer", "speaker initialized", map[string]interface{}{
		"sample_rate": p.config.SampleRate,
	})
	return nil
}

// Play queues cue. It never blocks on playback.
func (p *Player) Play(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if cue < 0 || cue >= cueCount {
		return
	}
	p.played[cue]++

	if !p.initialized || p.silent {
		return
	}

	stream := CueStream(cue, p.config)
	if stream == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(stream)
	speaker.Unlock()
}

// Played returns how many times cue was requested
func (p *Player) Played(cue Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return p.played[cue]
}

// Silent reports whether playback is disabled
func (p *Player) Silent() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.silent
}

// Shutdown drops queued sounds
func (p *Player) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.silent {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
	p.logger.Debug("AudioPlayer", "playback stopped", nil)
}
