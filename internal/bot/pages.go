// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package bot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"storebot/internal/model"
)

// Editable scalar fields of the about page.
var aboutFields = map[string]string{
	"hero_title":       "Title",
	"hero_description": "Description",
	"mission_text":     "Mission text",
}

// loadPage reads a page document into doc, leaving it zero when the page
// has never been edited.
func (b *Bot) loadPage(ctx context.Context, name string, doc any) error {
	raw, err := b.queries.GetPageContent(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, doc)
}

// savePage writes the whole document back. Last writer wins.
func (b *Bot) savePage(ctx context.Context, name string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return b.queries.UpsertPageContent(ctx, name, raw)
}

// splitParts splits a pipe-separated argument list, trimming each part.
func splitParts(value string) []string {
	parts := strings.Split(value, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ---- About page ------------------------------------------------------------

// handleViewAbout shows the current about page content.
func (b *Bot) handleViewAbout(ctx context.Context, msg *tgbotapi.Message) {
	raw, err := b.queries.GetPageContent(ctx, model.PageAbout)
	if errors.Is(err, sql.ErrNoRows) {
		b.reply(msg, "ℹ️ The about page has not been edited yet.\n"+
			"The site uses its default content.\n\n"+
			"Edit with: /edit_about hero_title <new title>")
		return
	}
	if err != nil {
		b.reply(msg, "❌ Failed to load the about page.")
		return
	}

	var content model.AboutContent
	if err := json.Unmarshal(raw, &content); err != nil {
		b.reply(msg, "❌ Failed to load the about page.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📄 <b>About page:</b>\n\n")
	fmt.Fprintf(&sb, "<b>Title:</b>\n%s\n\n", orDash(content.HeroTitle))
	fmt.Fprintf(&sb, "<b>Description:</b>\n%s\n\n", orDash(content.HeroDescription))
	fmt.Fprintf(&sb, "<b>Mission text:</b>\n%s\n\n", orDash(content.MissionText))

	if len(content.Stats) > 0 {
		sb.WriteString("<b>Stats:</b>\n")
		for _, s := range content.Stats {
			fmt.Fprintf(&sb, "  • %s — %s\n", s.Number, s.Label)
		}
		sb.WriteString("\n")
	}
	if len(content.TeamMembers) > 0 {
		sb.WriteString("<b>Team:</b>\n")
		for _, m := range content.TeamMembers {
			fmt.Fprintf(&sb, "  • %s — %s\n", m.Name, m.Role)
		}
	}

	b.replyHTML(msg, sb.String())
}

// handleEditAbout edits the about page: scalar fields, or append/clear on
// the stats, team and values lists.
func (b *Bot) handleEditAbout(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) == 0 {
		var fields strings.Builder
		for key, label := range aboutFields {
			fmt.Fprintf(&fields, "  • <code>%s</code> — %s\n", key, label)
		}
		b.replyHTML(msg, "📋 <b>Editing the about page:</b>\n\n"+
			"<b>Change a text field:</b>\n<code>/edit_about &lt;field&gt; &lt;value&gt;</code>\n"+
			fields.String()+"\n"+
			"<b>Add a stat:</b>\n<code>/edit_about stat 10000+ Happy customers</code>\n\n"+
			"<b>Clear stats:</b>\n<code>/edit_about clear_stats</code>\n\n"+
			"<b>Add a team member:</b>\n<code>/edit_about team Name | Role | image_url</code>\n\n"+
			"<b>Clear the team:</b>\n<code>/edit_about clear_team</code>\n\n"+
			"<b>Add a value:</b>\n<code>/edit_about value Title | Description | icon</code>\n\n"+
			"<b>Clear values:</b>\n<code>/edit_about clear_values</code>")
		return
	}

	field := strings.ToLower(args[0])
	value := strings.TrimSpace(strings.TrimPrefix(msg.CommandArguments(), args[0]))

	var content model.AboutContent
	if err := b.loadPage(ctx, model.PageAbout, &content); err != nil {
		b.reply(msg, "❌ Failed to load the about page.")
		return
	}

	if label, ok := aboutFields[field]; ok {
		switch field {
		case "hero_title":
			content.HeroTitle = value
		case "hero_description":
			content.HeroDescription = value
		case "mission_text":
			content.MissionText = value
		}
		if err := b.savePage(ctx, model.PageAbout, &content); err != nil {
			b.reply(msg, "❌ Failed to save the about page.")
			return
		}
		b.audit(msg, fmt.Sprintf("updated about %s", field))
		b.replyHTML(msg, fmt.Sprintf("✅ <b>%s</b> updated!\n\n%s", label, value))
		return
	}

	switch field {
	case "stat":
		parts := strings.Fields(value)
		if len(parts) < 2 {
			b.reply(msg, "Usage: /edit_about stat <number> <label>")
			return
		}
		content.Stats = append(content.Stats, model.Stat{
			Number: parts[0],
			Label:  strings.Join(parts[1:], " "),
		})
		if err := b.savePage(ctx, model.PageAbout, &content); err != nil {
			b.reply(msg, "❌ Failed to save the about page.")
			return
		}
		b.audit(msg, "added about stat")
		b.replyHTML(msg, fmt.Sprintf("✅ Stat added: <b>%s</b> — %s",
			parts[0], strings.Join(parts[1:], " ")))

	case "clear_stats":
		content.Stats = []model.Stat{}
		if err := b.savePage(ctx, model.PageAbout, &content); err != nil {
			b.reply(msg, "❌ Failed to save the about page.")
			return
		}
		b.audit(msg, "cleared about stats")
		b.reply(msg, "✅ All stats cleared.")

	case "team":
		parts := splitParts(value)
		if len(parts) < 2 {
			b.reply(msg, "Usage: /edit_about team Name | Role | image_url")
			return
		}
		member := model.TeamMember{Name: parts[0], Role: parts[1]}
		if len(parts) > 2 {
			member.Image = parts[2]
		}
		content.TeamMembers = append(content.TeamMembers, member)
		if err := b.savePage(ctx, model.PageAbout, &content); err != nil {
			b.reply(msg, "❌ Failed to save the about page.")
			return
		}
		b.audit(msg, fmt.Sprintf("added team member %s", member.Name))
		b.replyHTML(msg, fmt.Sprintf("✅ Team member added: <b>%s</b> — %s", member.Name, member.Role))

	case "clear_team":
		content.TeamMembers = []model.TeamMember{}
		if err := b.savePage(ctx, model.PageAbout, &content); err != nil {
			b.reply(msg, "❌ Failed to save the about page.")
			return
		}
		b.audit(msg, "cleared about team")
		b.reply(msg, "✅ Team list cleared.")

	case "value":
		parts := splitParts(value)
		if len(parts) < 2 {
			b.reply(msg, "Usage: /edit_about value Title | Description | icon\n"+
				"Icons: shield, heart, users, star, award, zap")
			return
		}
		item := model.ValueItem{Title: parts[0], Description: parts[1], IconName: "shield"}
		if len(parts) > 2 {
			item.IconName = parts[2]
		}
		content.Values = append(content.Values, item)
		if err := b.savePage(ctx, model.PageAbout, &content); err != nil {
			b.reply(msg, "❌ Failed to save the about page.")
			return
		}
		b.audit(msg, fmt.Sprintf("added company value %s", item.Title))
		b.replyHTML(msg, fmt.Sprintf("✅ Value added: <b>%s</b>", item.Title))

	case "clear_values":
		content.Values = []model.ValueItem{}
		if err := b.savePage(ctx, model.PageAbout, &content); err != nil {
			b.reply(msg, "❌ Failed to save the about page.")
			return
		}
		b.audit(msg, "cleared about values")
		b.reply(msg, "✅ Values cleared.")

	default:
		b.reply(msg, fmt.Sprintf("❌ Unknown field: %s", field))
	}
}

// ---- Delivery page ---------------------------------------------------------

// handleViewDelivery shows the current delivery page content.
func (b *Bot) handleViewDelivery(ctx context.Context, msg *tgbotapi.Message) {
	raw, err := b.queries.GetPageContent(ctx, model.PageDelivery)
	if errors.Is(err, sql.ErrNoRows) {
		b.reply(msg, "ℹ️ The delivery page has not been edited yet.\n"+
			"The site uses its default content.")
		return
	}
	if err != nil {
		b.reply(msg, "❌ Failed to load the delivery page.")
		return
	}

	var content model.DeliveryContent
	if err := json.Unmarshal(raw, &content); err != nil {
		b.reply(msg, "❌ Failed to load the delivery page.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🚚 <b>Delivery page:</b>\n\n")
	fmt.Fprintf(&sb, "<b>Title:</b> %s\n", orDash(content.HeroTitle))
	fmt.Fprintf(&sb, "<b>Description:</b> %s\n\n", orDash(content.HeroDescription))

	if len(content.DeliveryOptions) > 0 {
		sb.WriteString("<b>Delivery options:</b>\n")
		for _, opt := range content.DeliveryOptions {
			fmt.Fprintf(&sb, "  📦 %s\n", opt.Title)
			for _, item := range opt.Items {
				fmt.Fprintf(&sb, "    • %s\n", item)
			}
		}
		sb.WriteString("\n")
	}
	if len(content.FAQ) > 0 {
		sb.WriteString("<b>FAQ:</b>\n")
		for _, f := range content.FAQ {
			fmt.Fprintf(&sb, "  ❓ %s\n", f.Question)
		}
	}

	b.replyHTML(msg, sb.String())
}

// handleEditDelivery edits the delivery page: scalar fields, or
// append/clear on the faq, steps and payment method lists.
func (b *Bot) handleEditDelivery(ctx context.Context, msg *tgbotapi.Message) {
	args := strings.Fields(msg.CommandArguments())
	if len(args) == 0 {
		b.replyHTML(msg, "📋 <b>Editing the delivery page:</b>\n\n"+
			"<code>/edit_delivery hero_title &lt;title&gt;</code>\n"+
			"<code>/edit_delivery hero_description &lt;description&gt;</code>\n"+
			"<code>/edit_delivery faq Question | Answer</code>\n"+
			"<code>/edit_delivery clear_faq</code>\n"+
			"<code>/edit_delivery step &lt;n&gt; &lt;title&gt; | &lt;description&gt;</code>\n"+
			"<code>/edit_delivery clear_steps</code>\n"+
			"<code>/edit_delivery payment &lt;title&gt; | &lt;description&gt; | &lt;icon&gt;</code>\n"+
			"<code>/edit_delivery clear_payments</code>")
		return
	}

	field := strings.ToLower(args[0])
	value := strings.TrimSpace(strings.TrimPrefix(msg.CommandArguments(), args[0]))

	var content model.DeliveryContent
	if err := b.loadPage(ctx, model.PageDelivery, &content); err != nil {
		b.reply(msg, "❌ Failed to load the delivery page.")
		return
	}

	switch field {
	case "hero_title", "hero_description":
		if field == "hero_title" {
			content.HeroTitle = value
		} else {
			content.HeroDescription = value
		}
		if err := b.savePage(ctx, model.PageDelivery, &content); err != nil {
			b.reply(msg, "❌ Failed to save the delivery page.")
			return
		}
		b.audit(msg, fmt.Sprintf("updated delivery %s", field))
		b.reply(msg, fmt.Sprintf("✅ %s updated!\n\n%s", field, value))

	case "faq":
		parts := splitParts(value)
		if len(parts) < 2 {
			b.reply(msg, "Usage: /edit_delivery faq Question | Answer")
			return
		}
		content.FAQ = append(content.FAQ, model.FAQEntry{Question: parts[0], Answer: parts[1]})
		if err := b.savePage(ctx, model.PageDelivery, &content); err != nil {
			b.reply(msg, "❌ Failed to save the delivery page.")
			return
		}
		b.audit(msg, "added delivery faq entry")
		b.reply(msg, fmt.Sprintf("✅ FAQ entry added: %s", parts[0]))

	case "clear_faq":
		content.FAQ = []model.FAQEntry{}
		if err := b.savePage(ctx, model.PageDelivery, &content); err != nil {
			b.reply(msg, "❌ Failed to save the delivery page.")
			return
		}
		b.audit(msg, "cleared delivery faq")
		b.reply(msg, "✅ FAQ cleared.")

	case "step":
		parts := splitParts(value)
		if len(parts) < 2 {
			b.reply(msg, "Usage: /edit_delivery step 1 Choose | Pick a toy from the catalog")
			return
		}
		head := strings.SplitN(parts[0], " ", 2)
		step := model.DeliveryStep{Step: head[0], Description: parts[1]}
		if len(head) > 1 {
			step.Title = head[1]
		}
		content.Steps = append(content.Steps, step)
		if err := b.savePage(ctx, model.PageDelivery, &content); err != nil {
			b.reply(msg, "❌ Failed to save the delivery page.")
			return
		}
		b.audit(msg, "added delivery step")
		b.reply(msg, fmt.Sprintf("✅ Step added: %s. %s", step.Step, step.Title))

	case "clear_steps":
		content.Steps = []model.DeliveryStep{}
		if err := b.savePage(ctx, model.PageDelivery, &content); err != nil {
			b.reply(msg, "❌ Failed to save the delivery page.")
			return
		}
		b.audit(msg, "cleared delivery steps")
		b.reply(msg, "✅ Steps cleared.")

	case "payment":
		parts := splitParts(value)
		if len(parts) < 2 {
			b.reply(msg, "Usage: /edit_delivery payment Cash | On delivery | cash\n"+
				"Icons: cash, card, phone")
			return
		}
		method := model.PaymentMethod{Title: parts[0], Description: parts[1], IconName: "cash"}
		if len(parts) > 2 {
			method.IconName = parts[2]
		}
		content.PaymentMethods = append(content.PaymentMethods, method)
		if err := b.savePage(ctx, model.PageDelivery, &content); err != nil {
			b.reply(msg, "❌ Failed to save the delivery page.")
			return
		}
		b.audit(msg, fmt.Sprintf("added payment method %s", method.Title))
		b.reply(msg, fmt.Sprintf("✅ Payment method added: %s", method.Title))

	case "clear_payments":
		content.PaymentMethods = []model.PaymentMethod{}
		if err := b.savePage(ctx, model.PageDelivery, &content); err != nil {
			b.reply(msg, "❌ Failed to save the delivery page.")
			return
		}
		b.audit(msg, "cleared delivery payment methods")
		b.reply(msg, "✅ Payment methods cleared.")

	default:
		b.reply(msg, fmt.Sprintf("❌ Unknown field: %s", field))
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
