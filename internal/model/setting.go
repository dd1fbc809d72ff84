// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Setting keys editable through the bot. Anything outside this set is
// rejected before it reaches the store.
const (
	SettingPhone                 = "phone"
	SettingEmail                 = "email"
	SettingAddress               = "address"
	SettingWorkingHours          = "working_hours"
	SettingInstagramURL          = "instagram_url"
	SettingTelegramURL           = "telegram_url"
	SettingWhatsAppURL           = "whatsapp_url"
	SettingPromoBannerText       = "promo_banner_text"
	SettingFreeDeliveryThreshold = "free_delivery_threshold"
	SettingSiteDescription       = "site_description"
)

// SettingKeyOrder fixes the display order of settings in the bot.
var SettingKeyOrder = []string{
	SettingPhone,
	SettingEmail,
	SettingAddress,
	SettingWorkingHours,
	SettingInstagramURL,
	SettingTelegramURL,
	SettingWhatsAppURL,
	SettingPromoBannerText,
	SettingFreeDeliveryThreshold,
	SettingSiteDescription,
}

// SettingLabels maps keys to the labels shown in the bot.
var SettingLabels = map[string]string{
	SettingPhone:                 "📞 Phone",
	SettingEmail:                 "📧 Email",
	SettingAddress:               "📍 Address",
	SettingWorkingHours:          "🕐 Working hours",
	SettingInstagramURL:          "📸 Instagram link",
	SettingTelegramURL:           "✈️ Telegram link",
	SettingWhatsAppURL:           "💬 WhatsApp link",
	SettingPromoBannerText:       "🎯 Promo banner text",
	SettingFreeDeliveryThreshold: "🚚 Free delivery threshold",
	SettingSiteDescription:       "📝 Site description",
}

// IsSettingKey reports whether key belongs to the editable whitelist.
func IsSettingKey(key string) bool {
	_, ok := SettingLabels[key]
	return ok
}

// DefaultFreeDeliveryThreshold is used when the stored threshold is not a
// valid number.
const DefaultFreeDeliveryThreshold = 300000

// DefaultSettings seeds a fresh database so the frontend always has values
// to render.
var DefaultSettings = map[string]string{
	SettingPhone:                 "+998 90 123 45 67",
	SettingEmail:                 "info@example.com",
	SettingAddress:               "Tashkent, Chilonzor district",
	SettingWorkingHours:          "Daily 9:00 - 21:00",
	SettingInstagramURL:          "https://instagram.com/example",
	SettingTelegramURL:           "https://t.me/example",
	SettingWhatsAppURL:           "https://wa.me/998901234567",
	SettingPromoBannerText:       "Free delivery on orders over 300,000! 🚚",
	SettingFreeDeliveryThreshold: "300000",
	SettingSiteDescription:       "The best online toy store for kids.",
}
