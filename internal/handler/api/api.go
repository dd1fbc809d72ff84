// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the public read-only REST API for the storefront.
package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"storebot/internal/cache"
	"storebot/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	queries *store.Queries
	cache   cache.Cache
	ttl     time.Duration
}

// NewHandler creates a new API handler. Responses are cached for ttl, so
// admin edits reach the storefront within that window.
func NewHandler(db *sql.DB, c cache.Cache, ttl time.Duration) *Handler {
	return &Handler{
		queries: store.New(db),
		cache:   c,
		ttl:     ttl,
	}
}

// Routes returns the public API router.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/content", h.Content)
	r.Get("/content/about", h.About)
	r.Get("/content/delivery", h.Delivery)
	r.Get("/settings", h.Settings)
	r.Get("/blog", h.Blog)
	return r
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: message},
	})
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message)
}

// serveCached answers from the response cache when possible, otherwise
// builds the document, stores it and serves it. Cache failures fall back to
// a direct build; the cache is an optimization, never a dependency.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, build func(ctx context.Context) (any, error)) {
	ctx := r.Context()

	if raw, err := h.cache.Get(ctx, key); err == nil {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(raw)
		return
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Error("reading response cache", "key", key, "error", err)
	}

	doc, err := build(ctx)
	if err != nil {
		slog.Error("building api response", "key", key, "error", err)
		WriteInternalError(w, "Failed to load content")
		return
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		WriteInternalError(w, "Failed to encode content")
		return
	}
	if err := h.cache.Set(ctx, key, raw, h.ttl); err != nil {
		slog.Error("writing response cache", "key", key, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(raw)
}
