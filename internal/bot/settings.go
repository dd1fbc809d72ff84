// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"storebot/internal/model"
)

// handleViewSettings shows the current site settings.
func (b *Bot) handleViewSettings(ctx context.Context, msg *tgbotapi.Message) {
	settings, err := b.queries.ListSettings(ctx)
	if err != nil {
		b.reply(msg, "❌ Failed to load the site settings.")
		return
	}

	var sb strings.Builder
	sb.WriteString("⚙️ <b>Site settings:</b>\n\n")
	for _, key := range model.SettingKeyOrder {
		value, ok := settings[key]
		if !ok {
			value = "—"
		}
		fmt.Fprintf(&sb, "%s:\n<code>%s</code>\n\n", model.SettingLabels[key], value)
	}
	sb.WriteString("✏️ To change a value:\n<code>/edit_settings phone +998 99 888 77 66</code>")

	b.replyHTML(msg, sb.String())
}

// handleEditSettings updates one whitelisted setting.
// Usage: /edit_settings <key> <value>
func (b *Bot) handleEditSettings(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) < 2 {
		var keys strings.Builder
		for _, key := range model.SettingKeyOrder {
			fmt.Fprintf(&keys, "  • <code>%s</code> — %s\n", key, model.SettingLabels[key])
		}
		b.replyHTML(msg, "📋 <b>Usage:</b>\n<code>/edit_settings &lt;key&gt; &lt;value&gt;</code>\n\n"+
			"<b>Available keys:</b>\n"+keys.String()+"\n<b>Example:</b>\n"+
			"<code>/edit_settings phone +998 99 888 77 66</code>")
		return
	}

	key := strings.ToLower(args[0])
	value := strings.Join(args[1:], " ")

	if !model.IsSettingKey(key) {
		b.replyHTML(msg, fmt.Sprintf(
			"❌ Unknown key: <code>%s</code>\nAvailable keys: %s",
			key, strings.Join(model.SettingKeyOrder, ", ")))
		return
	}

	if err := b.queries.UpsertSetting(ctx, key, value); err != nil {
		b.reply(msg, "❌ Failed to save the setting.")
		return
	}

	b.audit(msg, fmt.Sprintf("updated setting %s = %s", key, value))
	b.replyHTML(msg, fmt.Sprintf(
		"✅ <b>%s</b> updated!\n\nNew value: <code>%s</code>\n\n"+
			"💡 The site picks it up within 5 minutes.",
		model.SettingLabels[key], value))
}

// handleEditPromo is a shortcut for the promo banner text.
// Usage: /edit_promo <text>
func (b *Bot) handleEditPromo(ctx context.Context, msg *tgbotapi.Message) {
	value := strings.TrimSpace(msg.CommandArguments())
	if value == "" {
		b.reply(msg, "📋 Usage: /edit_promo <new text>\n"+
			"Example: /edit_promo 50% off all toys! 🎉")
		return
	}

	if err := b.queries.UpsertSetting(ctx, model.SettingPromoBannerText, value); err != nil {
		b.reply(msg, "❌ Something went wrong.")
		return
	}

	b.audit(msg, fmt.Sprintf("updated promo banner: %s", value))
	b.replyHTML(msg, fmt.Sprintf("✅ Promo banner updated!\n\n🎯 <code>%s</code>", value))
}

// handleStart greets the caller, with the admin command overview for admins.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	if b.auth.IsAuthorized(ctx, msg.From.ID, levelAdmin) {
		b.replyHTML(msg, fmt.Sprintf(
			"👋 Hello, %s!\n\n🔧 You are signed in as an <b>admin</b>.\n"+
				"All commands: /admin_help\n\nSite settings: /settings\n"+
				"Blog management: /blogs\nAbout page: /view_about\nDelivery page: /view_delivery",
			msg.From.FirstName))
		return
	}
	b.reply(msg, fmt.Sprintf(
		"👋 Hello, %s!\n\n🧸 Welcome to the toy store bot!\n\n"+
			"📱 Your ID for admin access: /myid",
		msg.From.FirstName))
}

// handleHelp lists the public commands, plus a pointer to the admin help
// for admins.
func (b *Bot) handleHelp(ctx context.Context, msg *tgbotapi.Message) {
	var sb strings.Builder
	sb.WriteString("🧸 <b>Store bot</b>\n\n")
	sb.WriteString("/start — start the bot\n")
	sb.WriteString("/myid — show your Telegram ID\n")
	sb.WriteString("/help — this help\n")

	if b.auth.IsAuthorized(ctx, msg.From.ID, levelAdmin) {
		sb.WriteString("\n🔧 <b>Admin commands:</b>\n/admin_help — full admin help\n")
	}

	b.replyHTML(msg, sb.String())
}

// handleAdminHelp lists every admin command.
func (b *Bot) handleAdminHelp(_ context.Context, msg *tgbotapi.Message) {
	b.replyHTML(msg,
		"🔧 <b>Admin commands:</b>\n\n"+
			"<b>👥 Admin management:</b>\n"+
			"/admins — list admins\n"+
			"/add_admin — add an admin\n"+
			"/remove_admin — remove an admin\n"+
			"/myid — show your Telegram ID\n\n"+
			"<b>⚙️ Site settings:</b>\n"+
			"/settings — current settings\n"+
			"/edit_settings — change a setting\n"+
			"/edit_promo — promo banner text\n\n"+
			"<b>📄 About page:</b>\n"+
			"/view_about — current content\n"+
			"/edit_about — edit\n\n"+
			"<b>🚚 Delivery page:</b>\n"+
			"/view_delivery — current content\n"+
			"/edit_delivery — edit\n\n"+
			"<b>📝 Blog:</b>\n"+
			"/blogs — list posts\n"+
			"/add_blog — add a post\n"+
			"/edit_blog — edit a post\n"+
			"/delete_blog — delete a post\n\n"+
			"<b>ℹ️ Other:</b>\n"+
			"/admin_help — this help\n")
}
