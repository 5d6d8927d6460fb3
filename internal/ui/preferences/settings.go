package preferences

import (
	"time"

	"tickdown/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	InitialDuration time.Duration
	Units           model.UnitSet
	AutoStart       bool
	ChimeEnabled    bool
	ShowLabels      bool
}

// DefaultSettings returns default settings for Tickdown.
func DefaultSettings() Settings {
	return Settings{
		InitialDuration: 10 * time.Minute,
		Units:           model.AllUnits(),
		AutoStart:       false,
		ChimeEnabled:    true,
		ShowLabels:      true,
	}
}

// CountdownConfig converts settings to the machine configuration.
// Identity and hooks are owned by the caller wiring the machine.
func (settings Settings) CountdownConfig(identity string) model.Config {
	return model.Config{
		Identity:        identity,
		InitialDuration: settings.InitialDuration,
		Running:         settings.AutoStart,
		Units:           settings.Units,
	}
}
