package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the whole application configuration, read from the environment.
// The invite link defaults (30-day lifetime, 24h refresh sweep) are the
// product defaults and should only be changed deliberately.
type Config struct {
	Port                  string        `env:"PORT" env-default:"8080"`
	DBPath                string        `env:"DB_PATH" env-default:"data/budget-planner.db"`
	SecretKey             string        `env:"SECRET_KEY" env-default:"change_me_in_production"`
	AuthTokenTTL          time.Duration `env:"AUTH_TOKEN_TTL" env-default:"168h"`
	InviteLinkLifetime    time.Duration `env:"INVITE_LINK_LIFETIME" env-default:"720h"`
	InviteRefreshInterval time.Duration `env:"INVITE_REFRESH_INTERVAL" env-default:"24h"`
}

// Load reads configuration from the environment, after loading a local .env
// file when one is present. Environment variables that are already set win
// over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.AuthTokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be positive, got %s", cfg.AuthTokenTTL)
	}
	if cfg.InviteLinkLifetime <= 0 {
		return fmt.Errorf("INVITE_LINK_LIFETIME must be positive, got %s", cfg.InviteLinkLifetime)
	}
	if cfg.InviteRefreshInterval <= 0 {
		return fmt.Errorf("INVITE_REFRESH_INTERVAL must be positive, got %s", cfg.InviteRefreshInterval)
	}
	return nil
}
