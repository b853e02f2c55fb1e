package keepalive

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds the Supabase credentials for a keep-alive ping.
type Config struct {
	URL      string
	Key      string
	Email    string
	Password string
}

// HasAuthCredentials reports whether the heavier sign-in variant of the
// ping can be used.
func (c *Config) HasAuthCredentials() bool {
	return c.Email != "" && c.Password != ""
}

// LoadConfig reads credentials from the environment, optionally
// hydrating it from a .env file first. URL and key are mandatory; the
// email/password pair is optional but must come as a pair. Validation
// failures name the missing variable so a cron mail is actionable.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "failed to load env file %q", envFile)
		}
	}

	cfg := &Config{
		URL:      os.Getenv("SUPABASE_URL"),
		Key:      os.Getenv("SUPABASE_KEY"),
		Email:    os.Getenv("SUPABASE_EMAIL"),
		Password: os.Getenv("SUPABASE_PASSWORD"),
	}

	if cfg.URL == "" {
		return nil, errors.New("SUPABASE_URL is not set")
	}
	if cfg.Key == "" {
		return nil, errors.New("SUPABASE_KEY is not set")
	}
	if cfg.Email != "" && cfg.Password == "" {
		return nil, errors.New("SUPABASE_PASSWORD is not set")
	}
	if cfg.Password != "" && cfg.Email == "" {
		return nil, errors.New("SUPABASE_EMAIL is not set")
	}

	return cfg, nil
}
