package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultHandSize = 5
	DefaultDeck     = "standard_deck"
)

// Config describes a session. A nil Seed selects a non-deterministic source.
type Config struct {
	HandSize int    `json:"hand_size" yaml:"hand_size"`
	Deck     string `json:"deck" yaml:"deck"`
	Seed     *int   `json:"seed,omitempty" yaml:"seed,omitempty"`
	Shuffle  bool   `json:"shuffle" yaml:"shuffle"`
	Catalog  string `json:"catalog,omitempty" yaml:"catalog,omitempty"`
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		HandSize: DefaultHandSize,
		Deck:     DefaultDeck,
		Shuffle:  true,
		LogLevel: "info",
	}
}

// LoadConfig decodes YAML on top of DefaultConfig, so absent keys keep their
// default values. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	if c.HandSize < 1 {
		return fmt.Errorf("%w: hand_size must be at least 1, got %d", ErrInvalidConfig, c.HandSize)
	}
	if c.Deck == "" {
		return fmt.Errorf("%w: deck is required", ErrInvalidConfig)
	}
	if c.Seed != nil && *c.Seed < 0 {
		return fmt.Errorf("%w: seed must not be negative, got %d", ErrInvalidConfig, *c.Seed)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error"); empty means info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return level, nil
}
