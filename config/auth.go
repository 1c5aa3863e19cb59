package config

import "time"

// AuthConfig contains session configuration.
type AuthConfig struct {
	// SessionTTL is how long a session stays valid after sign-in.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 168 * time.Hour
	}
}
