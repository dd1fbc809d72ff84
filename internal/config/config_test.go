// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"os"
	"testing"
)

func setEnv(t *testing.T, key, value string) {
	t.Helper()
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.DBPath != "./data/storebot.db" {
		t.Errorf("DBPath = %q, want %q", cfg.DBPath, "./data/storebot.db")
	}
	if cfg.ServerHost != "localhost" {
		t.Errorf("ServerHost = %q, want %q", cfg.ServerHost, "localhost")
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want %d", cfg.ServerPort, 8080)
	}
	if cfg.CacheTTL != 300 {
		t.Errorf("CacheTTL = %d, want 300", cfg.CacheTTL)
	}
	if cfg.SessionTTL != 30 {
		t.Errorf("SessionTTL = %d, want 30", cfg.SessionTTL)
	}
	if cfg.BotEnabled() {
		t.Error("BotEnabled() should be false without a token")
	}
	if len(cfg.SuperAdminIDs) != 0 {
		t.Errorf("SuperAdminIDs = %v, want empty", cfg.SuperAdminIDs)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	setEnv(t, "STOREBOT_BOT_TOKEN", "123:abc")
	setEnv(t, "STOREBOT_SUPER_ADMIN_IDS", "111,222")
	setEnv(t, "STOREBOT_SERVER_PORT", "3000")
	setEnv(t, "STOREBOT_CORS_ORIGINS", "https://shop.example.com,http://localhost:5173")
	setEnv(t, "STOREBOT_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if !cfg.BotEnabled() {
		t.Error("BotEnabled() = false, want true")
	}
	if len(cfg.SuperAdminIDs) != 2 || cfg.SuperAdminIDs[0] != 111 || cfg.SuperAdminIDs[1] != 222 {
		t.Errorf("SuperAdminIDs = %v, want [111 222]", cfg.SuperAdminIDs)
	}
	if got := cfg.ServerAddr(); got != "localhost:3000" {
		t.Errorf("ServerAddr() = %q, want %q", got, "localhost:3000")
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want two entries", cfg.CORSOrigins)
	}
	if !cfg.UseRedisCache() {
		t.Error("UseRedisCache() = false, want true")
	}
}

func TestLoad_InvalidSuperAdminID(t *testing.T) {
	os.Clearenv()
	setEnv(t, "STOREBOT_SUPER_ADMIN_IDS", "111,not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on a non-numeric super admin ID")
	}
}
