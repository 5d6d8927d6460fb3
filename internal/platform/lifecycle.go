package platform

import (
	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"tickdown/internal/core/countdown"
)

// LifecycleBinding forwards the host's foreground/background transitions
// to the countdown machine so suspended ticks can be reconciled.
type LifecycleBinding struct {
	lifecycle fyne.Lifecycle
	logger    *zap.Logger
}

// BindLifecycle subscribes the machine to the application lifecycle.
// Ticks are not delivered while the host is suspended; the foreground
// handler subtracts the wall-clock time the countdown missed.
func BindLifecycle(lifecycle fyne.Lifecycle, machine *countdown.Machine, logger *zap.Logger) *LifecycleBinding {
	if logger == nil {
		logger = zap.NewNop()
	}

	lifecycle.SetOnExitedForeground(func() {
		machine.EnterBackground()
		logger.Debug("entered background")
	})
	lifecycle.SetOnEnteredForeground(func() {
		corrected := machine.EnterForeground()
		if corrected > 0 {
			logger.Info("reconciled suspended time",
				zap.Duration("elapsed", corrected),
				zap.Duration("remaining", machine.Remaining()))
		}
	})

	return &LifecycleBinding{lifecycle: lifecycle, logger: logger}
}

// Unbind removes the lifecycle subscriptions. Transitions reported after
// Unbind returns no longer reach the machine.
func (binding *LifecycleBinding) Unbind() {
	binding.lifecycle.SetOnExitedForeground(nil)
	binding.lifecycle.SetOnEnteredForeground(nil)
}
