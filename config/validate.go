package config

import (
	"errors"
	"fmt"
	"strings"
)

// MinJWTSecretLength is the shortest HS256 secret accepted in jwt mode.
const MinJWTSecretLength = 32

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	switch c.Auth.Mode {
	case AuthModeJWT:
		if len(c.Auth.JWTSecret) < MinJWTSecretLength {
			errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least %d characters (got %d)", MinJWTSecretLength, len(c.Auth.JWTSecret)))
		}
	case AuthModeSession:
	default:
		errs = append(errs, fmt.Errorf("auth.mode must be %q or %q (got %q)", AuthModeJWT, AuthModeSession, c.Auth.Mode))
	}

	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if c.Cache.SlidingWindow <= 0 {
		errs = append(errs, fmt.Errorf("cache.sliding_window must be > 0 (got %s)", c.Cache.SlidingWindow))
	}
	if c.Cache.MaxEntries <= 0 {
		errs = append(errs, fmt.Errorf("cache.max_entries must be > 0 (got %d)", c.Cache.MaxEntries))
	}

	return errors.Join(errs...)
}
