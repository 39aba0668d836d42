package app

import (
	"errors"
	"fmt"

	"github.com/vk/powergridgo/internal/network"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	NetworkPath string // hcl network definition file

	Mode              string
	SCCase            string
	Sequence          int
	CheckConnectivity bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a raw configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.NetworkPath == "" {
		return nil, errors.New("NetworkPath is a required configuration field and cannot be empty")
	}
	switch network.Mode(cfg.Mode) {
	case network.ModePF, network.ModePF3Ph, network.ModeSC, network.ModeOPF:
	default:
		return nil, fmt.Errorf("unknown analysis mode %q", cfg.Mode)
	}
	switch network.SCCase(cfg.SCCase) {
	case network.SCMax, network.SCMin:
	default:
		return nil, fmt.Errorf("unknown short-circuit case %q", cfg.SCCase)
	}
	if cfg.Sequence != 0 && cfg.Sequence != 1 {
		return nil, fmt.Errorf("unsupported sequence %d: must be 0 or 1", cfg.Sequence)
	}
	return &cfg, nil
}

// Options translates the validated configuration into compiler options.
func (c *Config) Options() network.Options {
	return network.Options{
		Mode:              network.Mode(c.Mode),
		Sequence:          c.Sequence,
		CheckConnectivity: c.CheckConnectivity,
		SCCase:            network.SCCase(c.SCCase),
	}
}
