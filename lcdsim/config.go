package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harveysanders/lcdprompt/keypad"
	"github.com/harveysanders/lcdprompt/lcd"
	"github.com/harveysanders/lcdprompt/prompt"
)

// Config is the simulator configuration file.
type Config struct {
	// Display size in characters.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Indicator and Bullet are single characters, or a byte written as
	// "0xa5" for characters outside ASCII.
	Indicator string `yaml:"indicator"`
	Bullet    string `yaml:"bullet"`

	// Aliases lists, for Up, Down, Left, Right, Enter and Escape in that
	// order, the keys that also produce them.
	Aliases []string `yaml:"aliases"`

	PollInterval time.Duration `yaml:"poll_interval"`

	LogFile  string `yaml:"log_file"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig is a 20x4 display with arrow keys only, so digits stay free
// for shortcuts.
func DefaultConfig() Config {
	return Config{
		Width:        lcd.MaxColumns,
		Height:       lcd.MaxRows,
		Indicator:    "~",
		Bullet:       "0xa5",
		PollInterval: prompt.DefaultPollInterval,
		LogFile:      "lcdsim.log",
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks sizes and characters.
func (c Config) Validate() error {
	if c.Width < 1 || c.Width > lcd.MaxColumns {
		return fmt.Errorf("width %d out of range 1-%d", c.Width, lcd.MaxColumns)
	}
	if c.Height < 1 || c.Height > lcd.MaxRows {
		return fmt.Errorf("height %d out of range 1-%d", c.Height, lcd.MaxRows)
	}
	if _, err := parseChar(c.Indicator); err != nil {
		return fmt.Errorf("indicator: %w", err)
	}
	if _, err := parseChar(c.Bullet); err != nil {
		return fmt.Errorf("bullet: %w", err)
	}
	if len(c.Aliases) > keypad.FunctionKeys {
		return fmt.Errorf("%d alias entries, at most %d", len(c.Aliases), keypad.FunctionKeys)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("negative poll_interval %s", c.PollInterval)
	}
	return nil
}

// KeyAliases returns the alias table for keypad.Poller.
func (c Config) KeyAliases() keypad.Aliases {
	var a keypad.Aliases
	copy(a[:], c.Aliases)
	return a
}

// UIConfig fills the display-independent part of a prompt.Config.
func (c Config) UIConfig() prompt.Config {
	indicator, _ := parseChar(c.Indicator)
	bullet, _ := parseChar(c.Bullet)
	return prompt.Config{
		Width:        c.Width,
		Height:       c.Height,
		Indicator:    indicator,
		Bullet:       bullet,
		PollInterval: c.PollInterval,
	}
}

var errChar = errors.New("want one character or a 0xNN byte")

// parseChar reads "~", "0xa5" or "". Empty means the library default.
func parseChar(s string) (byte, error) {
	switch {
	case s == "":
		return 0, nil
	case len(s) == 1:
		return s[0], nil
	case len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		v, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", s, errChar)
		}
		return byte(v), nil
	}
	return 0, fmt.Errorf("%q: %w", s, errChar)
}
