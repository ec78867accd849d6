// Package config reads AGROMARKET_-prefixed environment variables into
// tagged structs and provides the fatal-exit helper CLI entry points share.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from the environment variables its env tags declare.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
