// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings read from the process environment.
type Env struct {
	// Config is the configuration file path. Empty means search.
	Config string `env:"JUMP_CONFIG"`

	// LogLevel is the minimum slog level: debug, info, warn, error.
	LogLevel string `env:"JUMP_LOG_LEVEL" envDefault:"info"`

	// HTTPTimeout bounds each request made to the build server.
	HTTPTimeout time.Duration `env:"JUMP_HTTP_TIMEOUT" envDefault:"10s"`
}

// LoadEnv parses [Env] from the environment.
func LoadEnv() (Env, error) {
	var settings Env
	if err := env.Parse(&settings); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return settings, nil
}
