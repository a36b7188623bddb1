package utils

import (
	"encoding/json"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Seed      int64         `json:"seed"`
	FrameRate time.Duration `json:"frame_rate"`
	AliveChar string        `json:"alive_char"`
	DeadChar  string        `json:"dead_char"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:     0, // fit the terminal
		Height:    0,
		Seed:      0, // seed from the clock
		FrameRate: 0, // advance on key press only
		AliveChar: "X",
		DeadChar:  " ",
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks the fields a run cannot start without
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("[Validate] dimensions must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	}
	if utf8.RuneCountInString(c.AliveChar) != 1 {
		return errors.Errorf("[Validate] alive_char must be a single character, got %q", c.AliveChar)
	}
	if utf8.RuneCountInString(c.DeadChar) != 1 {
		return errors.Errorf("[Validate] dead_char must be a single character, got %q", c.DeadChar)
	}
	return nil
}

// AliveRune returns the character drawn for live cells
func (c Config) AliveRune() rune {
	r, _ := utf8.DecodeRuneInString(c.AliveChar)
	return r
}

// DeadRune returns the character drawn for dead cells
func (c Config) DeadRune() rune {
	r, _ := utf8.DecodeRuneInString(c.DeadChar)
	return r
}
