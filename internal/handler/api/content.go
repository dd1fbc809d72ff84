// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"storebot/internal/model"
)

// BlogEntry is the public shape of one blog post.
type BlogEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Date    string `json:"date"`
	Author  string `json:"author"`
}

// ContentResponse aggregates everything the storefront needs in one call.
type ContentResponse struct {
	Settings  map[string]any  `json:"settings"`
	About     json.RawMessage `json:"about"`
	Delivery  json.RawMessage `json:"delivery"`
	BlogPosts []BlogEntry     `json:"blog_posts"`
}

// Content serves the aggregate site content document.
func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "api:content", func(ctx context.Context) (any, error) {
		settings, err := h.buildSettings(ctx)
		if err != nil {
			return nil, err
		}
		about, err := h.pageDocument(ctx, model.PageAbout)
		if err != nil {
			return nil, err
		}
		delivery, err := h.pageDocument(ctx, model.PageDelivery)
		if err != nil {
			return nil, err
		}
		posts, err := h.publishedPosts(ctx)
		if err != nil {
			return nil, err
		}
		return ContentResponse{
			Settings:  settings,
			About:     about,
			Delivery:  delivery,
			BlogPosts: posts,
		}, nil
	})
}

// Settings serves the site settings, stored values over seeded defaults.
func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "api:settings", func(ctx context.Context) (any, error) {
		return h.buildSettings(ctx)
	})
}

// About serves the about page document, {} when never edited.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "api:about", func(ctx context.Context) (any, error) {
		return h.pageDocument(ctx, model.PageAbout)
	})
}

// Delivery serves the delivery page document, {} when never edited.
func (h *Handler) Delivery(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "api:delivery", func(ctx context.Context) (any, error) {
		return h.pageDocument(ctx, model.PageDelivery)
	})
}

// Blog serves the published blog posts, newest first.
func (h *Handler) Blog(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "api:blog", func(ctx context.Context) (any, error) {
		return h.publishedPosts(ctx)
	})
}

// buildSettings merges stored settings over the defaults and coerces the
// free delivery threshold to a number, so the frontend can compare prices
// without parsing.
func (h *Handler) buildSettings(ctx context.Context) (map[string]any, error) {
	stored, err := h.queries.ListSettings(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(model.SettingKeyOrder))
	for _, key := range model.SettingKeyOrder {
		value, ok := stored[key]
		if !ok {
			value = model.DefaultSettings[key]
		}
		if key == model.SettingFreeDeliveryThreshold {
			out[key] = thresholdValue(value)
			continue
		}
		out[key] = value
	}
	return out, nil
}

// thresholdValue parses the stored threshold, falling back to the default
// when the value is empty or not a number.
func thresholdValue(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return model.DefaultFreeDeliveryThreshold
	}
	return n
}

// pageDocument returns the stored page JSON, or {} for a page that has
// never been edited.
func (h *Handler) pageDocument(ctx context.Context, name string) (json.RawMessage, error) {
	raw, err := h.queries.GetPageContent(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return json.RawMessage(`{}`), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading page %s: %w", name, err)
	}
	return json.RawMessage(raw), nil
}

func (h *Handler) publishedPosts(ctx context.Context) ([]BlogEntry, error) {
	posts, err := h.queries.ListBlogPosts(ctx, true)
	if err != nil {
		return nil, err
	}

	entries := make([]BlogEntry, 0, len(posts))
	for _, post := range posts {
		entries = append(entries, blogEntry(post))
	}
	return entries, nil
}

func blogEntry(post model.BlogPost) BlogEntry {
	return BlogEntry{
		ID:      strconv.FormatInt(post.ID, 10),
		Title:   post.Title,
		Excerpt: post.Excerpt,
		Content: post.Content,
		Image:   post.Image,
		Date:    post.CreatedAt.Format("2006-01-02"),
		Author:  post.Author,
	}
}
