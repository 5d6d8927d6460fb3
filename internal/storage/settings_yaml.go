package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"tickdown/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	InitialSeconds float64 `yaml:"initial_seconds"`
	ShowDays       bool    `yaml:"show_days"`
	ShowHours      bool    `yaml:"show_hours"`
	ShowMinutes    bool    `yaml:"show_minutes"`
	ShowSeconds    bool    `yaml:"show_seconds"`
	AutoStart      bool    `yaml:"auto_start"`
	ChimeEnabled   bool    `yaml:"chime_enabled"`
	ShowLabels     bool    `yaml:"show_labels"`
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}
	return saveSettingsFile(configPath, settings)
}

func loadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		InitialSeconds: settings.InitialDuration.Seconds(),
		ShowDays:       settings.Units.Days,
		ShowHours:      settings.Units.Hours,
		ShowMinutes:    settings.Units.Minutes,
		ShowSeconds:    settings.Units.Seconds,
		AutoStart:      settings.AutoStart,
		ChimeEnabled:   settings.ChimeEnabled,
		ShowLabels:     settings.ShowLabels,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.InitialSeconds > 0 {
		settings.InitialDuration = time.Duration(fileData.InitialSeconds * float64(time.Second))
	}

	// A file hiding every unit would render nothing; keep the defaults
	// in that case.
	if fileData.ShowDays || fileData.ShowHours || fileData.ShowMinutes || fileData.ShowSeconds {
		settings.Units.Days = fileData.ShowDays
		settings.Units.Hours = fileData.ShowHours
		settings.Units.Minutes = fileData.ShowMinutes
		settings.Units.Seconds = fileData.ShowSeconds
	}

	settings.AutoStart = fileData.AutoStart
	settings.ChimeEnabled = fileData.ChimeEnabled
	settings.ShowLabels = fileData.ShowLabels
}
