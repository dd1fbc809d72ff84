// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package auth

import (
	"context"
	"errors"
	"testing"

	"storebot/internal/model"
)

// fakeChecker is an in-memory AdminChecker.
type fakeChecker struct {
	active map[int64]bool
	err    error
}

func (f *fakeChecker) IsActiveAdmin(_ context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.active[id], nil
}

func TestIsAuthorized_SuperAdmin(t *testing.T) {
	svc := NewService([]int64{111}, &fakeChecker{})
	ctx := context.Background()

	if !svc.IsAuthorized(ctx, 111, model.LevelAdmin) {
		t.Error("super admin must pass admin check")
	}
	if !svc.IsAuthorized(ctx, 111, model.LevelSuperAdmin) {
		t.Error("super admin must pass super admin check")
	}
	if !svc.IsSuperAdmin(111) {
		t.Error("IsSuperAdmin(111) = false, want true")
	}
}

func TestIsAuthorized_StoreBackedAdmin(t *testing.T) {
	svc := NewService([]int64{111}, &fakeChecker{active: map[int64]bool{222: true}})
	ctx := context.Background()

	if !svc.IsAuthorized(ctx, 222, model.LevelAdmin) {
		t.Error("active admin must pass admin check")
	}
	if svc.IsAuthorized(ctx, 222, model.LevelSuperAdmin) {
		t.Error("store-backed admin must never pass super admin check")
	}
	if svc.IsSuperAdmin(222) {
		t.Error("IsSuperAdmin(222) = true, want false")
	}
}

func TestIsAuthorized_Unknown(t *testing.T) {
	svc := NewService([]int64{111}, &fakeChecker{})
	ctx := context.Background()

	if svc.IsAuthorized(ctx, 333, model.LevelAdmin) {
		t.Error("unknown identity must fail admin check")
	}
	if svc.IsAuthorized(ctx, 333, model.LevelSuperAdmin) {
		t.Error("unknown identity must fail super admin check")
	}
}

func TestIsAuthorized_StoreErrorDenies(t *testing.T) {
	svc := NewService(nil, &fakeChecker{
		active: map[int64]bool{222: true},
		err:    errors.New("database is locked"),
	})

	if svc.IsAuthorized(context.Background(), 222, model.LevelAdmin) {
		t.Error("a failing store lookup must deny, never grant")
	}
}

func TestIsAuthorized_InactiveAdmin(t *testing.T) {
	svc := NewService(nil, &fakeChecker{active: map[int64]bool{222: false}})

	if svc.IsAuthorized(context.Background(), 222, model.LevelAdmin) {
		t.Error("deactivated admin must fail admin check")
	}
}
