package models

import (
	"time"

	uuid "github.com/google/uuid"
)

// Card DTOs
type ThemeInput struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	Layout         string `json:"layout"`
}

type PrivacyInput struct {
	ShowEmail     *bool `json:"show_email"`
	ShowPhone     *bool `json:"show_phone"`
	AllowIndexing *bool `json:"allow_indexing"`
}

type CardInput struct {
	Name         string        `json:"name" binding:"required"`
	Title        string        `json:"title" binding:"required"`
	Company      string        `json:"company"`
	Email        string        `json:"email" binding:"required"`
	Phone        string        `json:"phone"`
	Website      string        `json:"website"`
	Bio          string        `json:"bio"`
	ProfileImage string        `json:"profile_image"`
	SocialLinks  []string      `json:"social_links"`
	Badges       []string      `json:"badges"`
	Theme        *ThemeInput   `json:"theme"`
	Privacy      *PrivacyInput `json:"privacy"`
	TeamID       *uuid.UUID    `json:"team_id"`
}

type UpdateCardRequest struct {
	CardInput
	// Version the client last read; update fails with a conflict when stale.
	Version int `json:"version" binding:"required,min=1"`
}

// Link DTOs
type CreateLinkRequest struct {
	OriginalURL string `json:"original_url" binding:"required"`
	Title       string `json:"title" binding:"required"`
	CustomSlug  string `json:"custom_slug"`
	Password    string `json:"password"`
	ExpiresAt   string `json:"expires_at"` // RFC3339, optional
}

type LinkResponse struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	Title       string     `json:"title"`
	Clicks      int        `json:"clicks"`
	Status      string     `json:"status"`
	Protected   bool       `json:"protected"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LinkStatsResponse struct {
	Slug      string     `json:"slug"`
	Title     string     `json:"title"`
	Clicks    int        `json:"clicks"`
	LastVisit *time.Time `json:"last_visit,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Status    string     `json:"status"`
}

// Lead DTOs
type CaptureLeadRequest struct {
	Name           string    `json:"name" binding:"required"`
	Email          string    `json:"email" binding:"required,email"`
	Source         string    `json:"source" binding:"required,oneof=nfc qr share direct"`
	BusinessCardID uuid.UUID `json:"business_card_id" binding:"required"`
	Notes          string    `json:"notes"`
}

type RecordInteractionRequest struct {
	Type    string `json:"type" binding:"required,oneof=view click download share"`
	Details string `json:"details"`
}

type SyncLeadRequest struct {
	Providers []CRMProviderConfig `json:"providers" binding:"required,min=1,dive"`
}

type CRMProviderConfig struct {
	Provider   string `json:"provider" binding:"required,oneof=hubspot salesforce zapier"`
	APIKey     string `json:"api_key"`
	WebhookURL string `json:"webhook_url"`
}

// Team DTOs
type CreateTeamRequest struct {
	Name     string        `json:"name" binding:"required"`
	Settings *TeamSettings `json:"settings"`
}

type UpdateTeamSettingsRequest struct {
	Settings TeamSettings `json:"settings" binding:"required"`
}

// Billing DTOs
type CheckoutSessionRequest struct {
	PriceID string    `json:"price_id" binding:"required"`
	TeamID  uuid.UUID `json:"team_id" binding:"required"`
}

type PortalSessionRequest struct {
	TeamID uuid.UUID `json:"team_id" binding:"required"`
}

type SessionResponse struct {
	URL string `json:"url"`
}

// BillingEvent is the webhook payload posted by the payment processor.
type BillingEvent struct {
	Type string `json:"type" binding:"required"`
	Data struct {
		TeamID            uuid.UUID `json:"team_id"`
		Plan              string    `json:"plan"`
		Status            string    `json:"status"`
		CurrentPeriodEnd  time.Time `json:"current_period_end"`
		CancelAtPeriodEnd bool      `json:"cancel_at_period_end"`
		Customer          string    `json:"customer"`
	} `json:"data"`
}

// NFC DTOs
type RegisterNFCRequest struct {
	CardID   uuid.UUID `json:"card_id" binding:"required"`
	DeviceID string    `json:"device_id" binding:"required"`
}

// Authentication Request DTOs
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Authentication Response DTOs
type AuthResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    *AuthData  `json:"data,omitempty"`
	Error   *AuthError `json:"error,omitempty"`
}

type AuthData struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type AuthError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
