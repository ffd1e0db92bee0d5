package util

// Short link status constants
const (
	StatusActive = "active"
	StatusPaused = "paused"
)

// Lead sources
var LeadSources = []string{"nfc", "qr", "share", "direct"}

// Lead interaction types
var InteractionTypes = []string{"view", "click", "download", "share"}

// Subscription plans
const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Subscription statuses
const (
	SubStatusActive   = "active"
	SubStatusCanceled = "canceled"
	SubStatusPastDue  = "past_due"
)

// Card layouts
var CardLayouts = []string{"modern", "classic", "minimal"}

// AllowedFontFamilies is the fixed set of fonts the card editor offers
var AllowedFontFamilies = []string{"Inter", "Roboto", "Playfair Display", "Montserrat", "Lora"}

// Default theme applied when a card is created without one
const (
	DefaultPrimaryColor   = "#0ea5e9"
	DefaultSecondaryColor = "#e0f2fe"
	DefaultFontFamily     = "Inter"
	DefaultLayout         = "modern"
)

// ReservedPaths are paths that should not be treated as link slugs
var ReservedPaths = []string{"api", "auth", "webhooks", "c", "health", "favicon.ico", "robots.txt"}

// IsReservedPath reports whether a slug would shadow a fixed route
func IsReservedPath(slug string) bool {
	for _, p := range ReservedPaths {
		if slug == p {
			return true
		}
	}
	return false
}
