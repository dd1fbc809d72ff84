// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	// BotToken is the Telegram bot API token. When empty the bot is not
	// started and only the read API serves.
	BotToken string `env:"STOREBOT_BOT_TOKEN"`

	// SuperAdminIDs are Telegram user IDs that are always authorized and can
	// never be removed. Fixed for the lifetime of the process.
	SuperAdminIDs []int64 `env:"STOREBOT_SUPER_ADMIN_IDS" envSeparator:","`

	DBPath     string `env:"STOREBOT_DB_PATH" envDefault:"./data/storebot.db"`
	ServerHost string `env:"STOREBOT_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"STOREBOT_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"STOREBOT_ENV" envDefault:"development"`
	LogLevel   string `env:"STOREBOT_LOG_LEVEL" envDefault:"info"`

	// CORSOrigins are the frontend origins allowed to call the read API.
	CORSOrigins []string `env:"STOREBOT_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// Cache configuration
	RedisURL    string `env:"STOREBOT_REDIS_URL"`                        // Optional Redis URL for distributed caching
	CachePrefix string `env:"STOREBOT_CACHE_PREFIX" envDefault:"storebot:"` // Redis key prefix
	CacheTTL    int    `env:"STOREBOT_CACHE_TTL" envDefault:"300"`       // Read API cache TTL in seconds

	// SessionTTL is the idle lifetime of a guided blog-input session in
	// minutes. 0 keeps abandoned drafts forever.
	SessionTTL int `env:"STOREBOT_SESSION_TTL" envDefault:"30"`

	// Seeding configuration
	DoSeed bool `env:"STOREBOT_DO_SEED" envDefault:"true"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// BotEnabled returns true if a bot token is configured.
func (c Config) BotEnabled() bool {
	return c.BotToken != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
