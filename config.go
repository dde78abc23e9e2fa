package aoc

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the optional runner configuration, read from the file passed
// with -config.
//
//	version: 1
//	input_dir: inputs
//	log_level: debug
//	workers: 4
type Config struct {
	Version  int    `yaml:"version"`
	InputDir string `yaml:"input_dir"`
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
}

// InputDirOrDefault returns the directory puzzle inputs are cached in,
// defaulting to the working directory.
func (c *Config) InputDirOrDefault() string {
	if c.InputDir == "" {
		return "."
	}
	return c.InputDir
}

// WorkerLimit returns how many goroutines Parallel may use, defaulting to the
// number of CPUs.
func (c *Config) WorkerLimit() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}

	if cfg.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d", cfg.Version)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config: workers must not be negative, got %d", cfg.Workers)
	}

	return &cfg, nil
}
