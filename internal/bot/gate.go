// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package bot

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"storebot/internal/model"
)

const (
	levelAdmin      = model.LevelAdmin
	levelSuperAdmin = model.LevelSuperAdmin
)

// handlerFunc is a bot command handler.
type handlerFunc func(ctx context.Context, msg *tgbotapi.Message)

// Rejection notices, fixed per level.
const (
	deniedAdminText = "⛔ You are not allowed to use this command.\n" +
		"Only admins can perform this action."
	deniedSuperAdminText = "⛔ This command is reserved for the head admin.\n" +
		"You do not have permission to perform this action."
)

// guard wraps a handler with an authorization check. Messages without a
// sender are dropped silently (transport edge case, not an error). An
// unauthorized caller gets the fixed rejection notice and the wrapped
// handler never runs.
func (b *Bot) guard(level model.Level, fn handlerFunc) handlerFunc {
	return func(ctx context.Context, msg *tgbotapi.Message) {
		if msg.From == nil {
			return
		}

		if !b.auth.IsAuthorized(ctx, msg.From.ID, level) {
			if level == levelSuperAdmin {
				b.reply(msg, deniedSuperAdminText)
			} else {
				b.reply(msg, deniedAdminText)
			}
			return
		}

		fn(ctx, msg)
	}
}

// audit records a successful privileged mutation. Rejected and failed
// commands are never audited.
func (b *Bot) audit(msg *tgbotapi.Message, action string) {
	slog.Info("admin action",
		"telegram_id", msg.From.ID,
		"username", msg.From.UserName,
		"name", msg.From.FirstName+" "+msg.From.LastName,
		"action", action,
	)
}
