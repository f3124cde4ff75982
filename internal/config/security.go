package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// SecurityConfig tunes password hashing and abuse protection of public endpoints.
type SecurityConfig struct {
	// BcryptCost is the work factor of password hashes.
	BcryptCost int `koanf:"bcrypt_cost"`

	// SignupRateLimit is the sustained number of registration requests allowed
	// per client IP per second. Zero disables the limiter.
	SignupRateLimit float64 `koanf:"signup_rate_limit"`

	// SignupBurst is the number of requests a client may send at once.
	SignupBurst int `koanf:"signup_burst"`
}

func DefaultSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		BcryptCost:      bcrypt.DefaultCost,
		SignupRateLimit: 1,
		SignupBurst:     5,
	}
}

// Validate fills unset values with defaults and rejects out of range ones.
func (c *SecurityConfig) Validate() error {
	defaults := DefaultSecurityConfig()

	if c.BcryptCost == 0 {
		c.BcryptCost = defaults.BcryptCost
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if c.SignupRateLimit < 0 {
		return fmt.Errorf("signup_rate_limit must be non-negative")
	}
	if c.SignupRateLimit > 0 && c.SignupBurst <= 0 {
		c.SignupBurst = defaults.SignupBurst
	}

	return nil
}
