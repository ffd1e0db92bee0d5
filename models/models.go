package models

import (
	"time"

	uuid "github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string     `gorm:"unique;not null" json:"email"`
	PasswordHash string     `json:"-"`
	Name         string     `gorm:"size:100" json:"name"`
	Role         string     `gorm:"size:10;default:'user';not null" json:"role"` // "admin" or "user"
	TeamID       *uuid.UUID `gorm:"type:uuid;index" json:"team_id,omitempty"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type Team struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Plan      string         `gorm:"size:20;default:'free';not null" json:"plan"` // free, pro, enterprise
	Settings  datatypes.JSON `gorm:"type:jsonb" json:"settings"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TeamSettings is the shape stored in Team.Settings.
type TeamSettings struct {
	AllowNFC         bool `json:"allow_nfc"`
	MaxCards         int  `json:"max_cards"`
	CustomBranding   bool `json:"custom_branding"`
	AnalyticsEnabled bool `json:"analytics_enabled"`
}

// CardTheme is embedded into BusinessCard (theme_* columns).
// A persisted card always has every theme field populated.
type CardTheme struct {
	PrimaryColor   string `gorm:"size:7" json:"primary_color"`
	SecondaryColor string `gorm:"size:7" json:"secondary_color"`
	FontFamily     string `gorm:"size:50" json:"font_family"`
	Layout         string `gorm:"size:10" json:"layout"` // modern, classic, minimal
}

// CardPrivacy is embedded into BusinessCard (privacy_* columns).
type CardPrivacy struct {
	ShowEmail     bool `gorm:"default:true" json:"show_email"`
	ShowPhone     bool `gorm:"default:true" json:"show_phone"`
	AllowIndexing bool `gorm:"default:true" json:"allow_indexing"`
}

type BusinessCard struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User         User           `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	TeamID       *uuid.UUID     `gorm:"type:uuid;index" json:"team_id,omitempty"`
	Name         string         `gorm:"size:100;not null" json:"name"`
	Title        string         `gorm:"size:100;not null" json:"title"`
	Company      string         `gorm:"size:100" json:"company,omitempty"`
	Email        string         `gorm:"not null" json:"email"`
	Phone        string         `gorm:"size:30" json:"phone,omitempty"`
	Website      string         `json:"website,omitempty"`
	Bio          string         `json:"bio,omitempty"`
	ProfileImage string         `json:"profile_image,omitempty"`
	SocialLinks  pq.StringArray `gorm:"type:text[]" json:"social_links"`
	Badges       pq.StringArray `gorm:"type:text[]" json:"badges"`
	NfcID        *string        `gorm:"uniqueIndex;size:100" json:"nfc_id,omitempty"`
	Theme        CardTheme      `gorm:"embedded;embeddedPrefix:theme_" json:"theme"`
	Privacy      CardPrivacy    `gorm:"embedded;embeddedPrefix:privacy_" json:"privacy"`
	Version      int            `gorm:"default:1;not null" json:"version"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type ShortLink struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	User         User       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Slug         string     `gorm:"size:64;unique;not null" json:"slug"`
	OriginalURL  string     `gorm:"not null" json:"original_url"`
	Title        string     `gorm:"size:150;not null" json:"title"`
	Clicks       int        `gorm:"default:0;not null" json:"clicks"`
	Status       string     `gorm:"size:10;default:'active';not null" json:"status"` // active or paused
	PasswordHash *string    `json:"-"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

type LinkVisit struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ShortLinkID uuid.UUID `gorm:"type:uuid;not null;index" json:"short_link_id"`
	ShortLink   ShortLink `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Lead struct {
	ID             uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BusinessCardID uuid.UUID    `gorm:"type:uuid;not null;index" json:"business_card_id"`
	BusinessCard   BusinessCard `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Name           string       `gorm:"size:100;not null" json:"name"`
	Email          string       `gorm:"not null" json:"email"`
	Source         string       `gorm:"size:10;not null" json:"source"` // nfc, qr, share, direct
	Score          *int         `json:"score"`                          // nil until scored, else 0-100
	Notes          string       `json:"notes,omitempty"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

type LeadInteraction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LeadID    uuid.UUID `gorm:"type:uuid;not null;index" json:"lead_id"`
	Lead      Lead      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Type      string    `gorm:"size:10;not null" json:"type"` // view, click, download, share
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Subscription struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeamID            uuid.UUID `gorm:"type:uuid;unique;not null" json:"team_id"`
	Team              Team      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Plan              string    `gorm:"size:20;not null" json:"plan"`   // free, pro, enterprise
	Status            string    `gorm:"size:20;not null" json:"status"` // active, canceled, past_due
	CurrentPeriodEnd  time.Time `gorm:"not null" json:"current_period_end"`
	CancelAtPeriodEnd bool      `gorm:"default:false;not null" json:"cancel_at_period_end"`
	ProcessorCustomer string    `gorm:"size:100" json:"-"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
