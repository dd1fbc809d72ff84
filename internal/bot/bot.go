// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package bot implements the Telegram admin interface: command dispatch,
// the authorization gate, single-turn content edits and the guided
// blog-post input flow.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/robfig/cron/v3"

	"storebot/internal/auth"
	"storebot/internal/store"
)

// Sender delivers a message to a conversation. *tgbotapi.BotAPI satisfies
// it; tests substitute a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Options configures a Bot.
type Options struct {
	// SessionTTL is the idle lifetime of a guided-input session. Zero
	// disables expiry.
	SessionTTL time.Duration
}

// Bot routes inbound Telegram updates to command handlers.
type Bot struct {
	api      *tgbotapi.BotAPI
	sender   Sender
	queries  *store.Queries
	auth     *auth.Service
	sessions *sessionTable
	opts     Options
	cron     *cron.Cron
}

// New creates a Bot speaking through api.
func New(api *tgbotapi.BotAPI, queries *store.Queries, authSvc *auth.Service, opts Options) *Bot {
	b := newBot(api, queries, authSvc, opts)
	b.api = api
	return b
}

// newBot wires everything except the live API, so tests can inject a Sender.
func newBot(sender Sender, queries *store.Queries, authSvc *auth.Service, opts Options) *Bot {
	return &Bot{
		sender:   sender,
		queries:  queries,
		auth:     authSvc,
		sessions: newSessionTable(),
		opts:     opts,
	}
}

// Run consumes updates until ctx is cancelled. It also starts the
// stale-session sweeper when a session TTL is configured.
func (b *Bot) Run(ctx context.Context) error {
	if b.api == nil {
		return fmt.Errorf("bot has no API client")
	}

	if b.opts.SessionTTL > 0 {
		b.cron = cron.New()
		if _, err := b.cron.AddFunc("@every 1m", func() {
			if n := b.sessions.sweep(b.opts.SessionTTL); n > 0 {
				slog.Info("expired stale blog sessions", "count", n)
			}
		}); err != nil {
			return fmt.Errorf("scheduling session sweep: %w", err)
		}
		b.cron.Start()
		defer b.cron.Stop()
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{tgbotapi.UpdateTypeMessage}

	updates := b.api.GetUpdatesChan(u)
	slog.Info("telegram bot started", "account", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.HandleUpdate(ctx, update)
		}
	}
}

// HandleUpdate processes one inbound update. Updates within one chat arrive
// in order, so per-caller session handling needs no extra serialization.
func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Plain text advances an open guided-input session; stray text from a
	// caller without one gets the default hint.
	if b.sessions.has(msg.From.ID) {
		b.advanceBlogSession(ctx, msg, msg.Text)
		return
	}
	b.reply(msg, "Use /help to see the available commands.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	command := msg.Command()

	// Session directives take precedence over normal dispatch while a
	// guided input session is open for the caller.
	if b.sessions.has(msg.From.ID) {
		switch command {
		case "cancel":
			b.cancelBlogSession(msg)
			return
		case "skip":
			b.advanceBlogSession(ctx, msg, skipDirective)
			return
		}
	}

	switch command {
	case "start":
		b.handleStart(ctx, msg)
	case "help":
		b.handleHelp(ctx, msg)
	case "myid":
		b.handleMyID(ctx, msg)
	case "admin_help":
		b.guard(levelAdmin, b.handleAdminHelp)(ctx, msg)
	case "admins":
		b.guard(levelAdmin, b.handleListAdmins)(ctx, msg)
	case "add_admin":
		b.guard(levelSuperAdmin, b.handleAddAdmin)(ctx, msg)
	case "remove_admin":
		b.guard(levelSuperAdmin, b.handleRemoveAdmin)(ctx, msg)
	case "settings":
		b.guard(levelAdmin, b.handleViewSettings)(ctx, msg)
	case "edit_settings":
		b.guard(levelAdmin, b.handleEditSettings)(ctx, msg)
	case "edit_promo":
		b.guard(levelAdmin, b.handleEditPromo)(ctx, msg)
	case "view_about":
		b.guard(levelAdmin, b.handleViewAbout)(ctx, msg)
	case "edit_about":
		b.guard(levelAdmin, b.handleEditAbout)(ctx, msg)
	case "view_delivery":
		b.guard(levelAdmin, b.handleViewDelivery)(ctx, msg)
	case "edit_delivery":
		b.guard(levelAdmin, b.handleEditDelivery)(ctx, msg)
	case "blogs":
		b.guard(levelAdmin, b.handleListBlogs)(ctx, msg)
	case "add_blog":
		b.guard(levelAdmin, b.startBlogSession)(ctx, msg)
	case "edit_blog":
		b.guard(levelAdmin, b.handleEditBlog)(ctx, msg)
	case "delete_blog":
		b.guard(levelAdmin, b.handleDeleteBlog)(ctx, msg)
	}
}

// reply sends plain text back to the chat the message came from.
func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	b.send(tgbotapi.NewMessage(msg.Chat.ID, text))
}

// replyHTML sends HTML-formatted text back to the chat.
func (b *Bot) replyHTML(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ParseMode = tgbotapi.ModeHTML
	b.send(out)
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.sender.Send(c); err != nil {
		slog.Error("sending telegram message", "error", err)
	}
}
