// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"storebot/internal/cache"
	"storebot/internal/model"
	"storebot/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := store.NewDB(filepath.Join(t.TempDir(), "api-test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := store.Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func newTestHandler(t *testing.T, ttl time.Duration) (*Handler, *store.Queries) {
	t.Helper()
	db := testDB(t)
	c := cache.NewMemory(ttl, time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return NewHandler(db, c, ttl), store.New(db)
}

func get(t *testing.T, h *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q", got)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding body %q: %v", rec.Body.String(), err)
	}
}

func TestSettingsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t, time.Minute)
	ctx := context.Background()

	t.Run("empty store serves defaults", func(t *testing.T) {
		var settings map[string]any
		decode(t, get(t, h, "/settings"), &settings)

		if settings["phone"] != model.DefaultSettings["phone"] {
			t.Errorf("phone = %v", settings["phone"])
		}
		// JSON numbers decode as float64.
		if settings["free_delivery_threshold"] != float64(model.DefaultFreeDeliveryThreshold) {
			t.Errorf("free_delivery_threshold = %v, want %d",
				settings["free_delivery_threshold"], model.DefaultFreeDeliveryThreshold)
		}
	})

	t.Run("stored values win over defaults", func(t *testing.T) {
		h, queries := newTestHandler(t, time.Minute)
		if err := queries.UpsertSetting(ctx, "phone", "+998 90 000 00 00"); err != nil {
			t.Fatalf("UpsertSetting: %v", err)
		}
		if err := queries.UpsertSetting(ctx, "free_delivery_threshold", "500000"); err != nil {
			t.Fatalf("UpsertSetting: %v", err)
		}

		var settings map[string]any
		decode(t, get(t, h, "/settings"), &settings)
		if settings["phone"] != "+998 90 000 00 00" {
			t.Errorf("phone = %v", settings["phone"])
		}
		if settings["free_delivery_threshold"] != float64(500000) {
			t.Errorf("free_delivery_threshold = %v", settings["free_delivery_threshold"])
		}
	})

	t.Run("garbage threshold falls back to the default", func(t *testing.T) {
		h, queries := newTestHandler(t, time.Minute)
		if err := queries.UpsertSetting(ctx, "free_delivery_threshold", "lots"); err != nil {
			t.Fatalf("UpsertSetting: %v", err)
		}

		var settings map[string]any
		decode(t, get(t, h, "/settings"), &settings)
		if settings["free_delivery_threshold"] != float64(model.DefaultFreeDeliveryThreshold) {
			t.Errorf("free_delivery_threshold = %v", settings["free_delivery_threshold"])
		}
	})
}

func TestPageEndpoints(t *testing.T) {
	h, queries := newTestHandler(t, time.Minute)
	ctx := context.Background()

	t.Run("unedited page serves an empty object", func(t *testing.T) {
		var doc map[string]any
		decode(t, get(t, h, "/content/delivery"), &doc)
		if len(doc) != 0 {
			t.Errorf("doc = %v, want {}", doc)
		}
	})

	t.Run("stored page round-trips", func(t *testing.T) {
		content := model.AboutContent{
			HeroTitle: "Toys for everyone",
			Stats:     []model.Stat{{Number: "10000+", Label: "Happy customers"}},
		}
		raw, err := json.Marshal(content)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if err := queries.UpsertPageContent(ctx, model.PageAbout, raw); err != nil {
			t.Fatalf("UpsertPageContent: %v", err)
		}

		var got model.AboutContent
		decode(t, get(t, h, "/content/about"), &got)
		if got.HeroTitle != content.HeroTitle || len(got.Stats) != 1 {
			t.Errorf("got = %+v", got)
		}
	})
}

func TestBlogEndpoint(t *testing.T) {
	h, queries := newTestHandler(t, time.Minute)
	ctx := context.Background()

	t.Run("no posts serves an empty array", func(t *testing.T) {
		rec := get(t, h, "/blog")
		var entries []BlogEntry
		decode(t, rec, &entries)
		if entries == nil || len(entries) != 0 {
			t.Errorf("entries = %v, want []", entries)
		}
	})

	firstID, err := queries.InsertBlogPost(ctx, store.InsertBlogPostParams{
		Title: "First", Excerpt: "one", Author: "Team",
	})
	if err != nil {
		t.Fatalf("InsertBlogPost: %v", err)
	}
	if _, err := queries.InsertBlogPost(ctx, store.InsertBlogPostParams{
		Title: "Second", Excerpt: "two", Author: "Team",
	}); err != nil {
		t.Fatalf("InsertBlogPost: %v", err)
	}
	if err := queries.SetBlogPostPublished(ctx, firstID, false); err != nil {
		t.Fatalf("SetBlogPostPublished: %v", err)
	}

	t.Run("unpublished posts are hidden", func(t *testing.T) {
		h, _ := freshHandlerSharing(t, queries)
		var entries []BlogEntry
		decode(t, get(t, h, "/blog"), &entries)
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		entry := entries[0]
		if entry.Title != "Second" || entry.Author != "Team" {
			t.Errorf("entry = %+v", entry)
		}
		if entry.ID == "" || entry.Date == "" {
			t.Errorf("entry = %+v, want string id and date", entry)
		}
	})
}

// freshHandlerSharing builds a handler with an empty cache over the same
// queries, so tests can observe store changes made after a cached response.
func freshHandlerSharing(t *testing.T, queries *store.Queries) (*Handler, cache.Cache) {
	t.Helper()
	c := cache.NewMemory(time.Minute, time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return &Handler{queries: queries, cache: c, ttl: time.Minute}, c
}

func TestContentAggregate(t *testing.T) {
	h, queries := newTestHandler(t, time.Minute)
	ctx := context.Background()

	if _, err := queries.InsertBlogPost(ctx, store.InsertBlogPostParams{
		Title: "Hello", Author: "Team",
	}); err != nil {
		t.Fatalf("InsertBlogPost: %v", err)
	}

	var doc struct {
		Settings  map[string]any   `json:"settings"`
		About     map[string]any   `json:"about"`
		Delivery  map[string]any   `json:"delivery"`
		BlogPosts []map[string]any `json:"blog_posts"`
	}
	decode(t, get(t, h, "/content"), &doc)

	if doc.Settings == nil || doc.Settings["phone"] == nil {
		t.Errorf("settings = %v", doc.Settings)
	}
	if doc.About == nil || doc.Delivery == nil {
		t.Error("about and delivery must always be present, {} when unedited")
	}
	if len(doc.BlogPosts) != 1 {
		t.Errorf("blog_posts = %v", doc.BlogPosts)
	}
}

func TestResponsesAreCached(t *testing.T) {
	h, queries := newTestHandler(t, time.Minute)
	ctx := context.Background()

	first := get(t, h, "/settings")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d", first.Code)
	}

	// A store change within the TTL is not visible yet.
	if err := queries.UpsertSetting(ctx, "phone", "+1 234"); err != nil {
		t.Fatalf("UpsertSetting: %v", err)
	}
	second := get(t, h, "/settings")
	if second.Body.String() != first.Body.String() {
		t.Errorf("cached response changed:\nfirst  = %s\nsecond = %s",
			first.Body.String(), second.Body.String())
	}
}
