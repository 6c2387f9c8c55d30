// Package config loads the process-wide configuration once at startup.
// The resulting Config is immutable; nothing in the core consults the
// environment after Load returns.
package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

const (
	// EnvKeyJWTSecret is the environment variable holding the token signing secret.
	EnvKeyJWTSecret = "JWT_SECRET"

	defaultTokenTTL = 7 * 24 * time.Hour
	defaultPort     = "8080"
)

// ErrMissingJWTSecret is returned when JWT_SECRET is unset. Callers are
// expected to treat it as fatal: without a signing secret no token can be
// issued or verified.
var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Config holds every value the process reads from its environment.
type Config struct {
	// JWTSecret signs and verifies identity tokens. Required.
	JWTSecret string

	// TokenTTL is the lifetime embedded in every issued token.
	TokenTTL time.Duration

	// Port the HTTP server listens on.
	Port string

	// AllowedOrigins is the CORS allow-list applied in the router.
	// Empty means same-origin / server-to-server clients only.
	AllowedOrigins []string

	// ImageBaseURL is the base under which movie images are served.
	// When set, catalog responses rewrite image references to this base.
	ImageBaseURL string
}

// Load reads the environment into a Config. A missing JWT secret is an error
// so that main can fail fast instead of serving unverifiable tokens.
func Load() (*Config, error) {
	secret := os.Getenv(EnvKeyJWTSecret)
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}

	ttl := defaultTokenTTL
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			ttl = d
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	var origins []string
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		JWTSecret:      secret,
		TokenTTL:       ttl,
		Port:           port,
		AllowedOrigins: origins,
		ImageBaseURL:   strings.TrimRight(os.Getenv("IMAGE_BASE_URL"), "/"),
	}, nil
}
