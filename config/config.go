// Package config provides configuration loading for rmxchords.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rapidmidiex/rmxchords/naming"
	"github.com/rapidmidiex/rmxchords/quiz"
	"github.com/rapidmidiex/rmxchords/rmxerr"
	"github.com/rapidmidiex/rmxchords/vpiano"
)

// Config represents the complete rmxchords configuration
type Config struct {
	// Language used when no preferences were saved yet (english, german)
	Language string `yaml:"language"`
	// StateFile is where preferences and statistics are persisted (empty = not persisted)
	StateFile string `yaml:"state_file"`
	// MaxAttempts bounds the retries spent avoiding the previous chord
	MaxAttempts int `yaml:"max_attempts"`
	// StartOctave is the octave of the lowest C on the keyboard
	StartOctave int `yaml:"start_octave"`
	// LogFile receives debug logs (empty = discard)
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	stateFile := ""
	if dir, err := os.UserConfigDir(); err == nil {
		stateFile = filepath.Join(dir, "rmxchords", "state.json")
	}
	return &Config{
		Language:    naming.English,
		StateFile:   stateFile,
		MaxAttempts: quiz.DefaultMaxAttempts,
		StartOctave: 4,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := naming.Lookup(c.Language); err != nil {
		return fmt.Errorf("%w: language: %v", rmxerr.ErrInvalidConfig, err)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts must be at least 1", rmxerr.ErrInvalidConfig)
	}
	keyboard := vpiano.MakeKeyboard(vpiano.Octave(c.StartOctave), vpiano.KeyboardOctaves)
	if !vpiano.InRange(keyboard[0].MIDI) || !vpiano.InRange(keyboard[len(keyboard)-1].MIDI) {
		return fmt.Errorf("%w: start_octave %d puts the keyboard outside MIDI notes 21-127", rmxerr.ErrInvalidConfig, c.StartOctave)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
