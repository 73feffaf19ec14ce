package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/mrhaoxx/soj-doublecheck/checker"
)

type Config struct {
	Epsilon  float64 `yaml:"epsilon"`
	Result   string  `yaml:"result"`
	Color    bool    `yaml:"color"`
	LogLevel string  `yaml:"loglevel"`
}

func DefaultConfig() Config {
	return Config{
		Epsilon:  checker.DefaultEpsilon,
		LogLevel: "warn",
	}
}

func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()

	_f, err := os.ReadFile(file)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config file")
	}

	err = yaml.Unmarshal(_f, &cfg)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to parse config file")
	}

	if cfg.Epsilon <= 0 {
		cfg.Epsilon = checker.DefaultEpsilon
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return cfg, errors.Wrapf(err, "invalid loglevel %q", cfg.LogLevel)
	}

	return cfg, nil
}
