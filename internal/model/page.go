// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Page names recognized by the store. Each page is a single JSON document;
// absence of a row means the frontend falls back to its built-in defaults.
const (
	PageAbout    = "about"
	PageDelivery = "delivery"
)

// Stat is a headline figure on the about page ("10000+ happy customers").
type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// TeamMember is an entry in the about page team section.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

// ValueItem is a company value card on the about page.
type ValueItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
}

// AboutContent is the about page document.
type AboutContent struct {
	HeroTitle       string       `json:"hero_title,omitempty"`
	HeroDescription string       `json:"hero_description,omitempty"`
	MissionText     string       `json:"mission_text,omitempty"`
	Stats           []Stat       `json:"stats,omitempty"`
	TeamMembers     []TeamMember `json:"team_members,omitempty"`
	Values          []ValueItem  `json:"values,omitempty"`
}

// DeliveryStep is one step of the how-to-order sequence.
type DeliveryStep struct {
	Step        string `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FAQEntry is a question/answer pair on the delivery page.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PaymentMethod is an accepted payment option.
type PaymentMethod struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IconName    string `json:"icon_name"`
}

// DeliveryOption groups delivery terms under a heading with bullet items.
// Only readable through the API; the bot has no edit command for it yet.
type DeliveryOption struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// DeliveryContent is the delivery page document.
type DeliveryContent struct {
	HeroTitle       string           `json:"hero_title,omitempty"`
	HeroDescription string           `json:"hero_description,omitempty"`
	DeliveryOptions []DeliveryOption `json:"delivery_options,omitempty"`
	Steps           []DeliveryStep   `json:"steps,omitempty"`
	FAQ             []FAQEntry       `json:"faq,omitempty"`
	PaymentMethods  []PaymentMethod  `json:"payment_methods,omitempty"`
}
