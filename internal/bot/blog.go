// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"storebot/internal/model"
	"storebot/internal/store"
)

// handleListBlogs shows all posts, published or not.
func (b *Bot) handleListBlogs(ctx context.Context, msg *tgbotapi.Message) {
	posts, err := b.queries.ListBlogPosts(ctx, false)
	if err != nil {
		b.reply(msg, "❌ Failed to load the blog posts.")
		return
	}

	if len(posts) == 0 {
		b.reply(msg, "📝 There are no blog posts yet.\nAdd one with /add_blog")
		return
	}

	var sb strings.Builder
	sb.WriteString("📝 <b>Blog posts:</b>\n\n")
	for _, post := range posts {
		status := "✅"
		if !post.IsPublished {
			status = "📝"
		}
		author := orDash(post.Author)
		fmt.Fprintf(&sb, "%s <b>#%d</b> — %s\n   ✍️ %s | %s\n\n",
			status, post.ID, post.Title, author, post.CreatedAt.Format("2006-01-02 15:04"))
	}
	sb.WriteString("✏️ Edit: /edit_blog <id> <field> <value>\n" +
		"🗑 Delete: /delete_blog <id>\n" +
		"➕ New: /add_blog")

	b.replyHTML(msg, sb.String())
}

// ---- Guided blog input -----------------------------------------------------

// Prompts per stage, sent after each stored input.
var stagePrompts = map[blogStage]string{
	stageExcerpt: "2️⃣ Write a short summary (excerpt):",
	stageContent: "3️⃣ Write the full article text\n(or /skip):",
	stageImage:   "4️⃣ Send an image URL\n(or /skip):",
	stageAuthor:  "5️⃣ Write the author's name:",
}

// startBlogSession opens a guided input session, replacing any session the
// caller already has open.
func (b *Bot) startBlogSession(_ context.Context, msg *tgbotapi.Message) {
	b.sessions.start(msg.From.ID)
	b.replyHTML(msg, "📝 <b>New blog post</b>\n\n1️⃣ Write the article title:")
}

// advanceBlogSession feeds one input into the caller's session. A message
// with no open session is dropped silently: transports redeliver and
// reorder stray messages, which must not surface as errors.
func (b *Bot) advanceBlogSession(ctx context.Context, msg *tgbotapi.Message, input string) {
	outcome, ok := b.sessions.advance(msg.From.ID, input)
	if !ok {
		return
	}

	if outcome.invalidSkip {
		b.reply(msg, "This step cannot be skipped. Write a value or /cancel.")
		return
	}

	if !outcome.done {
		b.reply(msg, stagePrompts[outcome.next])
		return
	}

	// All five fields collected: commit exactly one post. The session is
	// already cleared, so the flow cannot resume whatever the store says.
	id, err := b.queries.InsertBlogPost(ctx, store.InsertBlogPostParams{
		Title:   outcome.title,
		Excerpt: outcome.excerpt,
		Content: outcome.content,
		Image:   outcome.image,
		Author:  outcome.author,
	})
	if err != nil {
		b.reply(msg, "❌ Failed to save the blog post.")
		return
	}

	b.audit(msg, fmt.Sprintf("added blog post #%d", id))
	b.replyHTML(msg, fmt.Sprintf(
		"✅ <b>Blog post created!</b>\n\n📌 ID: #%d\n📖 %s\n✍️ %s\n\n"+
			"It appears on the site within 5 minutes.",
		id, outcome.title, outcome.author))
}

// cancelBlogSession discards the caller's draft. Nothing was persisted, so
// there is nothing to roll back.
func (b *Bot) cancelBlogSession(msg *tgbotapi.Message) {
	if b.sessions.cancel(msg.From.ID) {
		b.reply(msg, "❌ Blog post creation cancelled.")
	}
}

// ---- Single-turn blog edits ------------------------------------------------

// handleEditBlog updates one field of a post, or flips its published flag.
// Usage: /edit_blog <id> <field> <value> | /edit_blog <id> publish|unpublish
func (b *Bot) handleEditBlog(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		b.reply(msg, "📋 Usage: /edit_blog <id> <field> <value>\n\n"+
			"Fields: title, excerpt, content, image, author\n"+
			"Hide: /edit_blog <id> unpublish\n"+
			"Show: /edit_blog <id> publish")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(msg, "❌ The ID must be a number.")
		return
	}

	field := strings.ToLower(args[1])

	switch {
	case field == "publish" || field == "unpublish":
		err = b.queries.SetBlogPostPublished(ctx, id, field == "publish")
	case model.IsEditableBlogField(field):
		if len(args) < 3 {
			b.reply(msg, "❌ No value given.")
			return
		}
		value := strings.Join(args[2:], " ")
		err = b.queries.UpdateBlogPostField(ctx, id, field, value)
	default:
		b.reply(msg, "❌ Unknown field. Fields: "+strings.Join(model.EditableBlogFields, ", "))
		return
	}

	if err != nil {
		b.reply(msg, "❌ Edit failed. Check the field and try again.")
		return
	}

	b.audit(msg, fmt.Sprintf("edited blog post #%d: %s", id, field))
	b.reply(msg, fmt.Sprintf("✅ Blog post #%d updated!", id))
}

// handleDeleteBlog removes a post permanently. Usage: /delete_blog <id>
func (b *Bot) handleDeleteBlog(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) == 0 {
		b.reply(msg, "Usage: /delete_blog <id>")
		return
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		b.reply(msg, "❌ The ID must be a number.")
		return
	}

	if err := b.queries.DeleteBlogPost(ctx, id); err != nil {
		b.reply(msg, "❌ Delete failed.")
		return
	}

	b.audit(msg, fmt.Sprintf("deleted blog post #%d", id))
	b.reply(msg, fmt.Sprintf("✅ Blog post #%d deleted!", id))
}
