// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package bot

import (
	"sync"
	"time"
)

// skipDirective marks a /skip on a skippable stage; the stored field
// becomes an empty string instead of the message text.
const skipDirective = "/skip"

// blogStage identifies the field the session is currently collecting.
type blogStage int

const (
	stageTitle blogStage = iota
	stageExcerpt
	stageContent
	stageImage
	stageAuthor
)

// skippable reports whether /skip is accepted at this stage.
func (s blogStage) skippable() bool {
	return s == stageContent || s == stageImage
}

// blogDraft is the transient state of one guided input session. Drafts live
// only in memory: nothing is persisted until the final commit, so a crash
// mid-session leaves the store untouched.
type blogDraft struct {
	stage     blogStage
	title     string
	excerpt   string
	content   string
	image     string
	touchedAt time.Time
}

// advanceOutcome reports what a stored input led to.
type advanceOutcome struct {
	// next is the stage to prompt for; meaningful only when !done.
	next blogStage
	// done is set once all five fields are collected.
	done bool
	// invalidSkip is set when /skip arrived on a non-skippable stage;
	// the session is unchanged.
	invalidSkip bool
	// Collected fields, populated when done.
	title, excerpt, content, image, author string
}

// sessionTable holds open guided-input sessions keyed by caller identity.
// Entries are independent; the lock only protects the map itself plus the
// entry mutation, since messages from one chat arrive sequentially.
type sessionTable struct {
	mu     sync.RWMutex
	drafts map[int64]*blogDraft
}

func newSessionTable() *sessionTable {
	return &sessionTable{drafts: make(map[int64]*blogDraft)}
}

// start opens a fresh session for the caller, replacing any open one.
func (t *sessionTable) start(id int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.drafts[id] = &blogDraft{stage: stageTitle, touchedAt: time.Now()}
}

// has reports whether the caller has an open session.
func (t *sessionTable) has(id int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.drafts[id]
	return ok
}

// cancel discards the caller's session. Returns false when none was open.
func (t *sessionTable) cancel(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.drafts[id]; !ok {
		return false
	}
	delete(t.drafts, id)
	return true
}

// advance stores input under the current stage's field and moves to the
// next stage. On the final stage the collected fields are returned and the
// session is cleared regardless of what the caller does with them.
// The second return is false when the caller has no open session.
func (t *sessionTable) advance(id int64, input string) (advanceOutcome, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	draft, ok := t.drafts[id]
	if !ok {
		return advanceOutcome{}, false
	}

	if input == skipDirective {
		if !draft.stage.skippable() {
			return advanceOutcome{invalidSkip: true}, true
		}
		input = ""
	}

	switch draft.stage {
	case stageTitle:
		draft.title = input
	case stageExcerpt:
		draft.excerpt = input
	case stageContent:
		draft.content = input
	case stageImage:
		draft.image = input
	case stageAuthor:
		outcome := advanceOutcome{
			done:    true,
			title:   draft.title,
			excerpt: draft.excerpt,
			content: draft.content,
			image:   draft.image,
			author:  input,
		}
		delete(t.drafts, id)
		return outcome, true
	}

	draft.stage++
	draft.touchedAt = time.Now()
	return advanceOutcome{next: draft.stage}, true
}

// sweep drops sessions idle longer than ttl and returns how many were removed.
func (t *sessionTable) sweep(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for id, draft := range t.drafts {
		if draft.touchedAt.Before(cutoff) {
			delete(t.drafts, id)
			removed++
		}
	}
	return removed
}
