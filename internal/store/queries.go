// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"storebot/internal/model"
)

// DBTX is the subset of *sql.DB / *sql.Tx the queries need.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries holds all database query methods.
type Queries struct {
	db DBTX
}

// New creates a Queries instance bound to the given database handle.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// ---- Admins ----------------------------------------------------------------

// UpsertAdminParams carries data for creating or reactivating an admin.
type UpsertAdminParams struct {
	TelegramID int64
	Username   string
	FullName   string
	AddedBy    int64
}

// UpsertAdmin creates an admin record or refreshes and reactivates an
// existing one. Idempotent by telegram_id.
func (q *Queries) UpsertAdmin(ctx context.Context, arg UpsertAdminParams) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO admins (telegram_id, username, full_name, added_by, added_at, is_active)
		VALUES (?, ?, ?, ?, ?, 1)
		ON CONFLICT (telegram_id) DO UPDATE SET
			username  = excluded.username,
			full_name = excluded.full_name,
			added_by  = excluded.added_by,
			is_active = 1`,
		arg.TelegramID, arg.Username, arg.FullName, arg.AddedBy, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting admin %d: %w", arg.TelegramID, err)
	}
	return nil
}

// IsActiveAdmin reports whether an active admin record exists for the ID.
func (q *Queries) IsActiveAdmin(ctx context.Context, telegramID int64) (bool, error) {
	var one int
	err := q.db.QueryRowContext(ctx,
		`SELECT 1 FROM admins WHERE telegram_id = ? AND is_active = 1`,
		telegramID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking admin %d: %w", telegramID, err)
	}
	return true, nil
}

// DeactivateAdmin soft-deletes an admin. A missing record is a no-op.
func (q *Queries) DeactivateAdmin(ctx context.Context, telegramID int64) error {
	_, err := q.db.ExecContext(ctx,
		`UPDATE admins SET is_active = 0 WHERE telegram_id = ?`, telegramID)
	if err != nil {
		return fmt.Errorf("deactivating admin %d: %w", telegramID, err)
	}
	return nil
}

// ListActiveAdmins returns all active admin records in insertion order.
func (q *Queries) ListActiveAdmins(ctx context.Context) ([]model.Admin, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT telegram_id, username, full_name, added_by, added_at
		FROM admins WHERE is_active = 1 ORDER BY added_at, telegram_id`)
	if err != nil {
		return nil, fmt.Errorf("listing admins: %w", err)
	}
	defer rows.Close()

	var admins []model.Admin
	for rows.Next() {
		a := model.Admin{IsActive: true}
		if err := rows.Scan(&a.TelegramID, &a.Username, &a.FullName, &a.AddedBy, &a.AddedAt); err != nil {
			return nil, fmt.Errorf("scanning admin: %w", err)
		}
		admins = append(admins, a)
	}
	return admins, rows.Err()
}

// ---- Site settings ---------------------------------------------------------

// GetSetting returns a setting value. sql.ErrNoRows when the key is absent.
func (q *Queries) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := q.db.QueryRowContext(ctx,
		`SELECT value FROM site_settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// ListSettings returns all stored settings as a key/value map.
func (q *Queries) ListSettings(ctx context.Context) (map[string]string, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT key, value FROM site_settings`)
	if err != nil {
		return nil, fmt.Errorf("listing settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		settings[k] = v
	}
	return settings, rows.Err()
}

// UpsertSetting overwrites a setting value unconditionally.
func (q *Queries) UpsertSetting(ctx context.Context, key, value string) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO site_settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("upserting setting %q: %w", key, err)
	}
	return nil
}

// ---- Page content ----------------------------------------------------------

// GetPageContent returns the raw JSON document for a page.
// sql.ErrNoRows when the page has never been edited.
func (q *Queries) GetPageContent(ctx context.Context, pageName string) ([]byte, error) {
	var content []byte
	err := q.db.QueryRowContext(ctx,
		`SELECT content_json FROM page_content WHERE page_name = ?`, pageName).Scan(&content)
	if err != nil {
		return nil, err
	}
	return content, nil
}

// UpsertPageContent replaces a page document wholesale. Last writer wins.
func (q *Queries) UpsertPageContent(ctx context.Context, pageName string, content []byte) error {
	_, err := q.db.ExecContext(ctx, `
		INSERT INTO page_content (page_name, content_json, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (page_name) DO UPDATE SET
			content_json = excluded.content_json,
			updated_at   = excluded.updated_at`,
		pageName, content, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting page %q: %w", pageName, err)
	}
	return nil
}

// ---- Blog posts ------------------------------------------------------------

// InsertBlogPostParams carries the fields of a new blog post.
type InsertBlogPostParams struct {
	Title   string
	Excerpt string
	Content string
	Image   string
	Author  string
}

// InsertBlogPost creates a published blog post and returns its ID.
func (q *Queries) InsertBlogPost(ctx context.Context, arg InsertBlogPostParams) (int64, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx, `
		INSERT INTO blog_posts (title, excerpt, content, image, author, is_published, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 1, ?, ?)`,
		arg.Title, arg.Excerpt, arg.Content, arg.Image, arg.Author, now, now)
	if err != nil {
		return 0, fmt.Errorf("inserting blog post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading blog post id: %w", err)
	}
	return id, nil
}

// UpdateBlogPostField updates one recognized text column of a blog post.
func (q *Queries) UpdateBlogPostField(ctx context.Context, id int64, field, value string) error {
	if !model.IsEditableBlogField(field) {
		return fmt.Errorf("unknown blog field %q", field)
	}
	// field is validated against the whitelist above, never caller text.
	query := fmt.Sprintf(
		`UPDATE blog_posts SET %s = ?, updated_at = ? WHERE id = ?`, field)
	_, err := q.db.ExecContext(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating blog post %d: %w", id, err)
	}
	return nil
}

// SetBlogPostPublished flips the published flag without touching other fields.
func (q *Queries) SetBlogPostPublished(ctx context.Context, id int64, published bool) error {
	val := 0
	if published {
		val = 1
	}
	_, err := q.db.ExecContext(ctx,
		`UPDATE blog_posts SET is_published = ?, updated_at = ? WHERE id = ?`,
		val, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("updating blog post %d: %w", id, err)
	}
	return nil
}

// DeleteBlogPost removes a post permanently.
func (q *Queries) DeleteBlogPost(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting blog post %d: %w", id, err)
	}
	return nil
}

// ListBlogPosts returns posts newest-first, optionally published only.
func (q *Queries) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]model.BlogPost, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, title, excerpt, content, image, author, is_published, created_at, updated_at
		FROM blog_posts`)
	if publishedOnly {
		sb.WriteString(` WHERE is_published = 1`)
	}
	sb.WriteString(` ORDER BY created_at DESC, id DESC`)

	rows, err := q.db.QueryContext(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("listing blog posts: %w", err)
	}
	defer rows.Close()

	var posts []model.BlogPost
	for rows.Next() {
		var p model.BlogPost
		var published int
		if err := rows.Scan(&p.ID, &p.Title, &p.Excerpt, &p.Content, &p.Image,
			&p.Author, &published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning blog post: %w", err)
		}
		p.IsPublished = published == 1
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
