// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Blog post fields that may be edited after creation.
const (
	BlogFieldTitle   = "title"
	BlogFieldExcerpt = "excerpt"
	BlogFieldContent = "content"
	BlogFieldImage   = "image"
	BlogFieldAuthor  = "author"
)

// EditableBlogFields lists the text columns /edit_blog accepts.
var EditableBlogFields = []string{
	BlogFieldTitle,
	BlogFieldExcerpt,
	BlogFieldContent,
	BlogFieldImage,
	BlogFieldAuthor,
}

// IsEditableBlogField reports whether name is a recognized blog text field.
func IsEditableBlogField(name string) bool {
	for _, f := range EditableBlogFields {
		if f == name {
			return true
		}
	}
	return false
}

// BlogPost represents a blog article. Posts are published by default and can
// be hidden with the IsPublished flag without losing the record.
type BlogPost struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Image       string    `json:"image"`
	Author      string    `json:"author"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
