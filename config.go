package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is read from the YAML file named by --config.
type Config struct {
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"` // debug, info, warn, error
	} `yaml:"log"`
	Watch struct {
		Schedule string `yaml:"schedule"`
		Count    int    `yaml:"count"` // -1 runs until stopped
	} `yaml:"watch"`
	Blinkt struct {
		Brightness float64 `yaml:"brightness"`
	} `yaml:"blinkt"`
	MaxResults int `yaml:"max_results"`
}

// DefaultConfig returns the settings used when no file exists.
func DefaultConfig() *Config {
	cfg := &Config{MaxResults: 100}
	cfg.Log.Level = "info"
	cfg.Watch.Schedule = "*/1 * * * * *"
	cfg.Watch.Count = -1
	cfg.Blinkt.Brightness = 0.5
	return cfg
}

// LoadConfig reads path on top of the defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.MaxResults < 1 {
		return fmt.Errorf("invalid max_results: %d", c.MaxResults)
	}
	if c.Blinkt.Brightness < 0 || c.Blinkt.Brightness > 1 {
		return fmt.Errorf("invalid blinkt brightness: %v", c.Blinkt.Brightness)
	}
	if _, err := parseSchedule(c.Watch.Schedule); err != nil {
		return err
	}
	return nil
}
