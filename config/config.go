// Package config loads runner configuration from YAML.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the gdlrun host. Every field has a working default;
// a missing config file means defaults throughout.
type Config struct {
	TickRate    float64  `yaml:"tickRate"`
	WorldWidth  float64  `yaml:"worldWidth"`
	WorldHeight float64  `yaml:"worldHeight"`
	LogLevel    string   `yaml:"logLevel"`
	Audio       bool     `yaml:"audio"`
	Keys        KeyBinds `yaml:"keys"`
}

// KeyBinds maps keyboard runes to simulation actions. Arrow keys are
// always bound in addition to these.
type KeyBinds struct {
	Up         string `yaml:"up"`
	Down       string `yaml:"down"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Jump       string `yaml:"jump"`
	Interact   string `yaml:"interact"`
	Accelerate string `yaml:"accelerate"`
	Brake      string `yaml:"brake"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		TickRate:    60,
		WorldWidth:  800,
		WorldHeight: 600,
		LogLevel:    "info",
		Audio:       true,
		Keys: KeyBinds{
			Up:         "w",
			Down:       "s",
			Left:       "a",
			Right:      "d",
			Jump:       " ",
			Interact:   "e",
			Accelerate: "w",
			Brake:      "s",
		},
	}
}

// Load reads YAML from r over the defaults. Fields absent from the
// document keep their default values.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the config at path. A missing file is not an error;
// defaults apply.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (c *Config) validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("config: tickRate must be positive, got %v", c.TickRate)
	}
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 {
		return fmt.Errorf("config: world dimensions must be positive, got %vx%v", c.WorldWidth, c.WorldHeight)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}
