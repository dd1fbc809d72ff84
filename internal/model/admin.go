// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the data types shared by the store, the bot and the
// public API.
package model

import (
	"database/sql"
	"time"
)

// Authorization levels for bot commands.
type Level int

const (
	// LevelAdmin is granted by a store-backed admin record or super-admin
	// membership. Revocable.
	LevelAdmin Level = iota
	// LevelSuperAdmin is granted only by the deployment-time super-admin set.
	// Cannot be granted or revoked at runtime.
	LevelSuperAdmin
)

// String returns a human-readable level name for logs.
func (l Level) String() string {
	if l == LevelSuperAdmin {
		return "super-admin"
	}
	return "admin"
}

// Admin represents a bot administrator identified by a Telegram user ID.
// Admins are soft-deleted: removal flips IsActive rather than deleting the
// row, keeping the audit trail intact.
type Admin struct {
	TelegramID int64        `json:"telegram_id"`
	Username   string       `json:"username"`
	FullName   string       `json:"full_name"`
	AddedBy    sql.NullInt64 `json:"added_by,omitempty"`
	AddedAt    time.Time    `json:"added_at"`
	IsActive   bool         `json:"is_active"`
	// IsSuper is derived from the super-admin set, never stored.
	IsSuper bool `json:"is_super"`
}
