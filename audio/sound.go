package audio

import (
	"time"

	"rock-snake/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a short sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	appleTone    = Tone{Freq: 880, Duration: 60 * time.Millisecond}
	badAppleTone = Tone{Freq: 220, Duration: 120 * time.Millisecond}
	deathTone    = Tone{Freq: 110, Duration: 300 * time.Millisecond}
)

// ToneFor picks the beep for a tick's outcome. Death outranks eating.
func ToneFor(result game.TickResult) (Tone, bool) {
	switch {
	case result.Died():
		return deathTone, true
	case result.AteApple:
		return appleTone, true
	case result.AteBadApple:
		return badAppleTone, true
	}
	return Tone{}, false
}

// SoundPlayer plays game event beeps. A player whose Init failed, or that was
// never initialized, silently does nothing.
type SoundPlayer struct {
	initialized bool
}

func NewSoundPlayer() *SoundPlayer {
	return &SoundPlayer{}
}

func (sp *SoundPlayer) Init() error {
	if sp.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return errors.Wrap(err, "initializing speaker")
	}
	sp.initialized = true
	return nil
}

// Play beeps for the tick's outcome, if it deserves one.
func (sp *SoundPlayer) Play(result game.TickResult) {
	if !sp.initialized {
		return
	}
	tone, ok := ToneFor(result)
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, tone.Freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(tone.Duration), sine))
}

func (sp *SoundPlayer) Close() {
	if sp.initialized {
		speaker.Close()
		sp.initialized = false
	}
}
