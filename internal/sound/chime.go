package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate beep.SampleRate = 44100
	toneFreq                   = 880
	toneLength                 = 600 * time.Millisecond
)

// Chimer plays the completion chime. The tone is synthesized, so no
// audio assets ship with the binary.
type Chimer struct {
	mu     sync.Mutex
	logger *zap.Logger
	ready  bool
}

// NewChimer initializes the speaker. An audio failure disables the chime
// rather than failing the application.
func NewChimer(logger *zap.Logger) *Chimer {
	if logger == nil {
		logger = zap.NewNop()
	}
	chimer := &Chimer{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		logger.Warn("audio disabled", zap.Error(err))
		return chimer
	}
	chimer.ready = true
	return chimer
}

// Play sounds the chime once. Safe to call from any goroutine; a no-op
// when the speaker failed to initialize.
func (chimer *Chimer) Play() {
	if !chimer.ready {
		return
	}
	tone, err := generators.SinTone(sampleRate, toneFreq)
	if err != nil {
		chimer.logger.Warn("generate chime tone", zap.Error(err))
		return
	}

	chimer.mu.Lock()
	defer chimer.mu.Unlock()
	speaker.Play(beep.Take(sampleRate.N(toneLength), tone))
}
