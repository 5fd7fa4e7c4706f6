package main

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	defaultTrials   = 100
	defaultSamples  = 10000
	defaultLogLevel = "INFO"
)

var (
	ErrBadTrials = errors.New("floatkeys: trials must be > 0")
	ErrNoValues  = errors.New("floatkeys: encode needs at least one value")
)

// Config holds the settings shared by the subcommands. Values come from the
// flag defaults, then the optional TOML file, then flags given explicitly.
type Config struct {
	Trials    int    `toml:"trials"`
	Samples   int    `toml:"samples"`
	Seed      uint64 `toml:"seed"`
	FullRange bool   `toml:"full_range"`
	LogLevel  string `toml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Trials:   defaultTrials,
		Samples:  defaultSamples,
		LogLevel: defaultLogLevel,
	}
}

// applyConfigFile loads path over cfg. Any flag reported by changed keeps its
// command line value.
func applyConfigFile(path string, cfg *Config, changed func(name string) bool) error {
	fileCfg := *cfg
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	if !changed(flagTrials) {
		cfg.Trials = fileCfg.Trials
	}
	if !changed(flagSamples) {
		cfg.Samples = fileCfg.Samples
	}
	if !changed(flagSeed) {
		cfg.Seed = fileCfg.Seed
	}
	if !changed(flagFullRange) {
		cfg.FullRange = fileCfg.FullRange
	}
	if !changed(flagLogLevel) {
		cfg.LogLevel = fileCfg.LogLevel
	}
	return nil
}
