// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package auth decides whether a Telegram identity may run privileged bot
// commands. Two tiers exist: admins, granted through store-backed records,
// and super-admins, fixed in configuration for the lifetime of the process.
package auth

import (
	"context"
	"log/slog"

	"storebot/internal/model"
)

// AdminChecker is the single store lookup the service depends on.
type AdminChecker interface {
	IsActiveAdmin(ctx context.Context, telegramID int64) (bool, error)
}

// Service answers authorization queries. It never mutates admin state.
type Service struct {
	superAdmins map[int64]struct{}
	store       AdminChecker
}

// NewService builds a Service from the deployment-time super-admin IDs and
// the admin store. The super-admin set is copied and never changes afterward.
func NewService(superAdminIDs []int64, store AdminChecker) *Service {
	set := make(map[int64]struct{}, len(superAdminIDs))
	for _, id := range superAdminIDs {
		set[id] = struct{}{}
	}
	return &Service{superAdmins: set, store: store}
}

// IsSuperAdmin reports super-admin membership. Pure set lookup, no I/O.
func (s *Service) IsSuperAdmin(id int64) bool {
	_, ok := s.superAdmins[id]
	return ok
}

// IsAuthorized reports whether id holds the required level. Super-admins
// pass every check. Admin checks fall back to one store lookup; a lookup
// failure denies access rather than granting it.
func (s *Service) IsAuthorized(ctx context.Context, id int64, level model.Level) bool {
	if s.IsSuperAdmin(id) {
		return true
	}
	if level == model.LevelSuperAdmin {
		return false
	}

	active, err := s.store.IsActiveAdmin(ctx, id)
	if err != nil {
		slog.Error("admin lookup failed, denying access", "telegram_id", id, "error", err)
		return false
	}
	return active
}

// SuperAdminIDs returns the members of the super-admin set. Order is not
// defined; callers that display the list sort or append as needed.
func (s *Service) SuperAdminIDs() []int64 {
	ids := make([]int64, 0, len(s.superAdmins))
	for id := range s.superAdmins {
		ids = append(ids, id)
	}
	return ids
}
