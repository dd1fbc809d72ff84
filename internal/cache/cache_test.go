// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	ctx := context.Background()

	if _, err := m.Get(ctx, "missing"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("Get(missing) error = %v, want ErrCacheMiss", err)
	}

	if err := m.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !bytes.Equal(got, []byte("v")) {
		t.Errorf("Get = %q, want %q", got, "v")
	}
}

func TestMemoryExpiry(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "k", []byte("v"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(20 * time.Millisecond)

	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expired entry: error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	ctx := context.Background()

	_ = m.Set(ctx, "k", []byte("v"), 0)
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("deleted entry: error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	m := NewMemory(time.Minute, 0)
	defer m.Close()
	ctx := context.Background()

	value := []byte("original")
	_ = m.Set(ctx, "k", value, 0)
	value[0] = 'X'

	got, err := m.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "original" {
		t.Errorf("stored value mutated: %q", got)
	}

	got[0] = 'Y'
	again, _ := m.Get(ctx, "k")
	if string(again) != "original" {
		t.Errorf("returned value aliases the entry: %q", again)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	c, err := New(Config{DefaultTTL: time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*Memory); !ok {
		t.Errorf("New without RedisURL = %T, want *Memory", c)
	}
}
