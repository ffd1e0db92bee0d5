package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LinkController struct {
	DB *gorm.DB
}

// NewLinkController creates a new link controller instance
func NewLinkController(db *gorm.DB) *LinkController {
	return &LinkController{DB: db}
}

// PickSlug decides the slug for a new link. A custom slug is used verbatim
// and fails with ErrSlugTaken when it already exists; otherwise a random
// 8-character slug is generated, regenerating on the (rare) collision.
func PickSlug(customSlug string, taken func(string) (bool, error)) (string, error) {
	if customSlug != "" {
		if !util.IsValidCustomSlug(customSlug) {
			return "", ErrInvalidSlug
		}
		exists, err := taken(customSlug)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrSlugTaken
		}
		return customSlug, nil
	}

	for {
		slug := util.GenerateSlug()
		exists, err := taken(slug)
		if err != nil {
			return "", err
		}
		if !exists {
			return slug, nil
		}
		// Slug exists, generate a new one
	}
}

func (c *LinkController) slugTaken(slug string) (bool, error) {
	var existing models.ShortLink
	if err := c.DB.Where("slug = ?", slug).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CreateLink validates the request and persists a new short link with a
// zero click count. The optional password is stored as a bcrypt hash.
func (c *LinkController) CreateLink(req *models.CreateLinkRequest, userID uuid.UUID) (*models.ShortLink, error) {
	originalURL := strings.TrimSpace(req.OriginalURL)
	if !isAbsoluteURL(originalURL) {
		return nil, FieldErrors{"original_url": "must be an absolute URL"}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, FieldErrors{"title": "is required"}
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, FieldErrors{"expires_at": "must be an RFC3339 timestamp"}
		}
		if !parsed.After(time.Now()) {
			return nil, FieldErrors{"expires_at": "must be in the future"}
		}
		expiresAt = &parsed
	}

	slug, err := PickSlug(strings.TrimSpace(req.CustomSlug), c.slugTaken)
	if err != nil {
		return nil, err
	}

	link := models.ShortLink{
		UserID:      userID,
		Slug:        slug,
		OriginalURL: originalURL,
		Title:       title,
		Clicks:      0,
		Status:      util.StatusActive,
		ExpiresAt:   expiresAt,
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return nil, err
		}
		hashStr := string(hash)
		link.PasswordHash = &hashStr
	}

	if err := c.DB.Create(&link).Error; err != nil {
		return nil, err
	}

	return &link, nil
}

func (c *LinkController) GetLink(slug string) (*models.ShortLink, error) {
	var link models.ShortLink
	if err := c.DB.Where("slug = ?", slug).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (c *LinkController) ListLinks(userID uuid.UUID) ([]models.ShortLink, error) {
	var links []models.ShortLink
	if err := c.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (c *LinkController) GetLinkStats(slug string, userID uuid.UUID) (*models.LinkStatsResponse, error) {
	link, err := c.GetLink(slug)
	if err != nil {
		return nil, err
	}
	if link.UserID != userID {
		return nil, ErrPermissionDenied
	}

	stats := &models.LinkStatsResponse{
		Slug:      link.Slug,
		Title:     link.Title,
		Clicks:    link.Clicks,
		CreatedAt: link.CreatedAt,
		ExpiresAt: link.ExpiresAt,
		Status:    link.Status,
	}

	var lastVisit models.LinkVisit
	if err := c.DB.Where("short_link_id = ?", link.ID).Order("created_at DESC").First(&lastVisit).Error; err == nil {
		stats.LastVisit = &lastVisit.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return stats, nil
}

func (c *LinkController) UpdateLinkStatus(slug, status string, userID uuid.UUID) (*models.ShortLink, error) {
	if status != util.StatusActive && status != util.StatusPaused {
		return nil, ErrInvalidStatus
	}

	link, err := c.GetLink(slug)
	if err != nil {
		return nil, err
	}
	if link.UserID != userID {
		return nil, ErrPermissionDenied
	}

	if err := c.DB.Model(link).Update("status", status).Error; err != nil {
		return nil, err
	}
	link.Status = status
	return link, nil
}

func (c *LinkController) DeleteLink(slug string, userID uuid.UUID) error {
	link, err := c.GetLink(slug)
	if err != nil {
		return err
	}
	if link.UserID != userID {
		return ErrPermissionDenied
	}
	return c.DB.Delete(link).Error
}

// CheckRedirect decides whether a link may be served right now. It makes
// the redirect decision without touching the database so the
// expiry/pause/password rules stay testable in isolation.
func CheckRedirect(link *models.ShortLink, now time.Time, password string) error {
	if link.Status == util.StatusPaused {
		return ErrLinkPaused
	}
	if link.ExpiresAt != nil && now.After(*link.ExpiresAt) {
		return ErrLinkExpired
	}
	if link.PasswordHash != nil {
		if password == "" {
			return ErrLinkPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*link.PasswordHash), []byte(password)); err != nil {
			return ErrLinkPassword
		}
	}
	return nil
}

// Resolve serves the public redirect path: it validates the link state,
// increments the click counter atomically and records the visit.
func (c *LinkController) Resolve(slug, password, ip, userAgent string) (string, error) {
	link, err := c.GetLink(slug)
	if err != nil {
		return "", err
	}

	if err := CheckRedirect(link, time.Now(), password); err != nil {
		return "", err
	}

	// DB-side increment keeps the counter monotonic under concurrent visits
	if err := c.DB.Model(link).UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error; err != nil {
		return "", err
	}

	visit := models.LinkVisit{
		ShortLinkID: link.ID,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}
	if err := c.DB.Create(&visit).Error; err != nil {
		// A lost visit row is not worth failing the redirect
		return link.OriginalURL, nil
	}

	return link.OriginalURL, nil
}
