// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package bot

import (
	"context"
	"strings"
	"testing"
	"time"
)

// ---- sessionTable ----------------------------------------------------------

func TestSessionTableAdvance(t *testing.T) {
	table := newSessionTable()
	table.start(1)

	inputs := []string{"Title", "Excerpt", "Content", "https://img", "Author"}
	for i, input := range inputs[:4] {
		outcome, ok := table.advance(1, input)
		if !ok {
			t.Fatalf("advance %d: session gone", i)
		}
		if outcome.done {
			t.Fatalf("advance %d: done too early", i)
		}
	}

	outcome, ok := table.advance(1, inputs[4])
	if !ok || !outcome.done {
		t.Fatalf("final advance = (%+v, %v), want done", outcome, ok)
	}
	if outcome.title != "Title" || outcome.excerpt != "Excerpt" ||
		outcome.content != "Content" || outcome.image != "https://img" ||
		outcome.author != "Author" {
		t.Errorf("collected fields = %+v", outcome)
	}
	if table.has(1) {
		t.Error("session must be cleared after the final stage")
	}
}

func TestSessionTableSkip(t *testing.T) {
	table := newSessionTable()
	table.start(1)

	// /skip is rejected on the title stage and the stage must not move.
	outcome, ok := table.advance(1, skipDirective)
	if !ok || !outcome.invalidSkip {
		t.Fatalf("skip on title = (%+v, %v), want invalidSkip", outcome, ok)
	}
	outcome, _ = table.advance(1, "Title")
	if outcome.next != stageExcerpt {
		t.Errorf("stage after rejected skip = %v, want excerpt", outcome.next)
	}

	// Content and image accept /skip and store empty strings.
	table.advance(1, "Excerpt")
	table.advance(1, skipDirective)
	table.advance(1, skipDirective)
	final, _ := table.advance(1, "Author")
	if !final.done || final.content != "" || final.image != "" {
		t.Errorf("final outcome = %+v, want done with empty content and image", final)
	}
}

func TestSessionTableCancelAndRestart(t *testing.T) {
	table := newSessionTable()

	if table.cancel(1) {
		t.Error("cancel without a session must report false")
	}

	table.start(1)
	table.advance(1, "Title")
	if !table.cancel(1) {
		t.Error("cancel with an open session must report true")
	}
	if _, ok := table.advance(1, "orphan"); ok {
		t.Error("advance after cancel must report no session")
	}

	// A second start replaces the previous draft from the title stage.
	table.start(1)
	table.advance(1, "First")
	table.start(1)
	outcome, _ := table.advance(1, "Second")
	if outcome.next != stageExcerpt {
		t.Errorf("stage after restart = %v, want excerpt", outcome.next)
	}
}

func TestSessionTableSweep(t *testing.T) {
	table := newSessionTable()
	table.start(1)
	table.start(2)
	table.drafts[1].touchedAt = time.Now().Add(-time.Hour)

	if n := table.sweep(30 * time.Minute); n != 1 {
		t.Fatalf("sweep removed %d, want 1", n)
	}
	if table.has(1) {
		t.Error("stale session must be swept")
	}
	if !table.has(2) {
		t.Error("fresh session must survive the sweep")
	}
}

// ---- Guided blog flow through the bot --------------------------------------

func TestGuidedBlogFlow(t *testing.T) {
	b, rec, queries := newTestBot(t, 111)
	ctx := context.Background()

	handle(b, command(111, "/add_blog"))
	if got := rec.last(t); !strings.Contains(got, "1️⃣") {
		t.Fatalf("start reply = %q, want the title prompt", got)
	}

	handle(b, message(111, "Sale"))
	handle(b, message(111, "Big sale"))
	handle(b, command(111, "/skip")) // content
	handle(b, command(111, "/skip")) // image
	handle(b, message(111, "Team"))

	if got := rec.last(t); !strings.Contains(got, "Blog post created") {
		t.Fatalf("final reply = %q, want confirmation", got)
	}

	posts, err := queries.ListBlogPosts(ctx, false)
	if err != nil {
		t.Fatalf("ListBlogPosts: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	post := posts[0]
	if post.Title != "Sale" || post.Excerpt != "Big sale" || post.Author != "Team" {
		t.Errorf("post = %+v", post)
	}
	if post.Content != "" || post.Image != "" {
		t.Errorf("skipped fields must be empty, got content=%q image=%q", post.Content, post.Image)
	}
	if !post.IsPublished {
		t.Error("a committed post must be published")
	}
}

func TestGuidedBlogInvalidSkip(t *testing.T) {
	b, rec, _ := newTestBot(t, 111)

	handle(b, command(111, "/add_blog"))
	handle(b, command(111, "/skip"))
	if got := rec.last(t); !strings.Contains(got, "cannot be skipped") {
		t.Fatalf("reply = %q, want the skip rejection", got)
	}

	// The session stays on the title stage: the next text is the title.
	handle(b, message(111, "Sale"))
	if got := rec.last(t); !strings.Contains(got, "2️⃣") {
		t.Errorf("reply = %q, want the excerpt prompt", got)
	}
}

func TestGuidedBlogCancel(t *testing.T) {
	b, rec, queries := newTestBot(t, 111)

	handle(b, command(111, "/add_blog"))
	handle(b, message(111, "Sale"))
	handle(b, command(111, "/cancel"))
	if got := rec.last(t); !strings.Contains(got, "cancelled") {
		t.Fatalf("reply = %q, want cancellation notice", got)
	}

	posts, err := queries.ListBlogPosts(context.Background(), false)
	if err != nil {
		t.Fatalf("ListBlogPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("cancelled session must commit nothing, got %d posts", len(posts))
	}

	// With the session gone, plain text falls back to the default hint.
	rec.reset()
	handle(b, message(111, "stray"))
	if got := rec.last(t); !strings.Contains(got, "/help") {
		t.Errorf("reply = %q, want the default hint", got)
	}
}

func TestGuidedBlogRestartReplacesDraft(t *testing.T) {
	b, _, queries := newTestBot(t, 111)

	handle(b, command(111, "/add_blog"))
	handle(b, message(111, "First title"))
	handle(b, command(111, "/add_blog")) // restart from scratch
	handle(b, message(111, "Second title"))
	handle(b, message(111, "Excerpt"))
	handle(b, command(111, "/skip"))
	handle(b, command(111, "/skip"))
	handle(b, message(111, "Author"))

	posts, err := queries.ListBlogPosts(context.Background(), false)
	if err != nil {
		t.Fatalf("ListBlogPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Title != "Second title" {
		t.Fatalf("posts = %+v, want one post from the restarted session", posts)
	}
}

func TestStrayTextWithoutSession(t *testing.T) {
	b, rec, _ := newTestBot(t, 111)

	handle(b, message(111, "hello there"))

	if got := rec.last(t); !strings.Contains(got, "/help") {
		t.Errorf("reply = %q, want the default hint", got)
	}
}
