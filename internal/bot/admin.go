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

// adminStub synthesizes a list entry for a super-admin without a store record.
func adminStub(id int64) model.Admin {
	return model.Admin{
		TelegramID: id,
		FullName:   "Super Admin",
		IsActive:   true,
		IsSuper:    true,
	}
}

// handleMyID shows the caller their own Telegram ID. Open to everyone so
// future admins can report their ID to a super-admin.
func (b *Bot) handleMyID(_ context.Context, msg *tgbotapi.Message) {
	username := msg.From.UserName
	if username == "" {
		username = "none"
	}
	b.replyHTML(msg, fmt.Sprintf(
		"👤 Your Telegram ID: <code>%d</code>\nName: %s\nUsername: @%s",
		msg.From.ID, fullName(msg.From), username))
}

// handleAddAdmin grants admin rights. Super-admin only. The target is given
// either as arguments or by replying to one of the target's messages.
func (b *Bot) handleAddAdmin(ctx context.Context, msg *tgbotapi.Message) {
	var (
		targetID       int64
		targetUsername string
		targetName     string
	)

	switch {
	case msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil:
		target := msg.ReplyToMessage.From
		targetID = target.ID
		targetUsername = target.UserName
		targetName = fullName(target)
	default:
		args := strings.Fields(msg.CommandArguments())
		if len(args) == 0 {
			b.reply(msg, "📋 Adding an admin:\n\n"+
				"1️⃣ Reply to one of the user's messages with /add_admin\n"+
				"2️⃣ Or: /add_admin <telegram_id> [username] [name]\n\n"+
				"💡 A user can find their own ID with /myid.")
			return
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			b.reply(msg, "❌ Invalid format.\n"+
				"Usage: /add_admin <user_id> [username] [name]\n"+
				"Or reply to a message with /add_admin.")
			return
		}
		targetID = id
		if len(args) > 1 {
			targetUsername = args[1]
		}
		if len(args) > 2 {
			targetName = strings.Join(args[2:], " ")
		}
	}

	err := b.queries.UpsertAdmin(ctx, store.UpsertAdminParams{
		TelegramID: targetID,
		Username:   targetUsername,
		FullName:   targetName,
		AddedBy:    msg.From.ID,
	})
	if err != nil {
		b.reply(msg, "❌ Failed to add the admin.")
		return
	}

	b.audit(msg, fmt.Sprintf("added admin %d (%s)", targetID, targetName))
	displayName := targetName
	if displayName == "" {
		displayName = "unknown"
	}
	username := targetUsername
	if username == "" {
		username = "none"
	}
	b.replyHTML(msg, fmt.Sprintf(
		"✅ New admin added!\n\n👤 ID: <code>%d</code>\nName: %s\nUsername: @%s\n\n"+
			"This user can now manage the site through the bot.",
		targetID, displayName, username))
}

// handleRemoveAdmin revokes admin rights. Super-admin only; super-admins
// themselves can never be removed, checked before any store call.
func (b *Bot) handleRemoveAdmin(ctx context.Context, msg *tgbotapi.Message) {
	var targetID int64

	switch {
	case msg.ReplyToMessage != nil && msg.ReplyToMessage.From != nil:
		targetID = msg.ReplyToMessage.From.ID
	default:
		args := strings.Fields(msg.CommandArguments())
		if len(args) == 0 {
			b.reply(msg, "📋 Removing an admin:\n\n/remove_admin <telegram_id>\n"+
				"Or reply to a message with /remove_admin.")
			return
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			b.reply(msg, "❌ Invalid format. Usage: /remove_admin <user_id>")
			return
		}
		targetID = id
	}

	if b.auth.IsSuperAdmin(targetID) {
		b.reply(msg, "⛔ A super admin cannot be removed!")
		return
	}

	if err := b.queries.DeactivateAdmin(ctx, targetID); err != nil {
		b.reply(msg, "❌ Failed to remove the admin.")
		return
	}

	b.audit(msg, fmt.Sprintf("removed admin %d", targetID))
	b.replyHTML(msg, fmt.Sprintf("✅ Admin removed: <code>%d</code>", targetID))
}

// handleListAdmins shows active admins from the store, then super-admins
// that have no store record.
func (b *Bot) handleListAdmins(ctx context.Context, msg *tgbotapi.Message) {
	admins, err := b.queries.ListActiveAdmins(ctx)
	if err != nil {
		b.reply(msg, "❌ Failed to load the admin list.")
		return
	}

	seen := make(map[int64]bool, len(admins))
	for i := range admins {
		admins[i].IsSuper = b.auth.IsSuperAdmin(admins[i].TelegramID)
		seen[admins[i].TelegramID] = true
	}
	for _, id := range b.auth.SuperAdminIDs() {
		if !seen[id] {
			admins = append(admins, adminStub(id))
		}
	}

	if len(admins) == 0 {
		b.reply(msg, "There are no admins yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("👥 <b>Admins:</b>\n\n")
	for i, admin := range admins {
		badge := "🔧"
		if admin.IsSuper {
			badge = "👑"
		}
		name := admin.FullName
		if name == "" {
			name = "unknown"
		}
		fmt.Fprintf(&sb, "%d. %s <b>%s</b>", i+1, badge, name)
		if admin.Username != "" {
			fmt.Fprintf(&sb, " @%s", admin.Username)
		}
		fmt.Fprintf(&sb, "\n   ID: <code>%d</code>\n", admin.TelegramID)
	}
	fmt.Fprintf(&sb, "\nTotal: %d admins", len(admins))

	b.replyHTML(msg, sb.String())
}

func fullName(u *tgbotapi.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
