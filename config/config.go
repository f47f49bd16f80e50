// Package config loads sumsolve settings from built-in defaults, an optional
// YAML file, SUMSOLVE_* environment variables and explicit CLI overrides,
// in that order of precedence.
package config

import (
	"errors"
	"time"
)

// Strategy names accepted in Solve.Algorithms.
const (
	StrategyExhaustive = "exhaustive"
	StrategyGreedy     = "greedy"
	StrategyRandom     = "random"
	StrategyGreedy1Opt = "greedy-1opt"
	StrategyRandom1Opt = "random-1opt"
	StrategyTabu       = "tabu"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "SUMSOLVE_"

var (
	// ErrReadFile indicates that the YAML file could not be read or decoded.
	ErrReadFile = errors.New("config: cannot read config file")
	// ErrInvalid indicates that the merged configuration failed validation.
	ErrInvalid = errors.New("config: invalid configuration")
)

type Config struct {
	Log     LogConfig     `koanf:"log"`
	Solve   SolveConfig   `koanf:"solve"`
	Output  OutputConfig  `koanf:"output"`
	Batch   BatchConfig   `koanf:"batch"`
	Metrics MetricsConfig `koanf:"metrics"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// SolveConfig selects the strategies run on every instance.
type SolveConfig struct {
	// TimeLimit bounds each time-bounded strategy; 0 means unbounded.
	TimeLimit time.Duration `koanf:"time_limit" validate:"min=0"`
	// Seed is the base of the per-strategy seeds; 0 seeds from the wall clock.
	Seed int64 `koanf:"seed"`
	// Algorithms lists strategy names in run order.
	Algorithms []string `koanf:"algorithms" validate:"min=1,dive,oneof=exhaustive greedy random greedy-1opt random-1opt tabu"`
	// Construction is the starting vector of the tabu strategy.
	Construction string `koanf:"construction" validate:"oneof=greedy random"`
}

type OutputConfig struct {
	// Dir receives "<name>_<strategy>.out" reports; empty prints to stdout.
	Dir string `koanf:"dir"`
}

type BatchConfig struct {
	Workers int    `koanf:"workers" validate:"min=1,max=1024"`
	Pattern string `koanf:"pattern" validate:"required"`
}

type MetricsConfig struct {
	// Path is the Prometheus textfile written after a run; empty disables it.
	Path string `koanf:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Solve: SolveConfig{
			TimeLimit:    0,
			Seed:         0,
			Algorithms:   []string{StrategyGreedy1Opt, StrategyRandom1Opt, StrategyTabu},
			Construction: StrategyGreedy,
		},
		Batch: BatchConfig{
			Workers: 8,
			Pattern: "*.dat",
		},
	}
}
