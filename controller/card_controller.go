package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FieldErrors maps an input field name to the reason it was rejected.
// It is returned by ValidateCard so handlers can render errors inline.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid card: " + strings.Join(parts, "; ")
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validate is shared across card checks; gin's binding tags cover the DTO
// shape, this instance covers values assembled outside of request binding
var validate = validator.New()

type CardController struct {
	DB *gorm.DB
}

func NewCardController(db *gorm.DB) *CardController {
	return &CardController{DB: db}
}

// ValidateCard checks a card input and returns the validated card with theme
// defaults applied. A card never persists without a fully populated theme.
func ValidateCard(input *models.CardInput) (*models.BusinessCard, FieldErrors) {
	fieldErrs := FieldErrors{}

	name := strings.TrimSpace(input.Name)
	if len([]rune(name)) < 2 {
		fieldErrs["name"] = "must be at least 2 characters"
	}

	title := strings.TrimSpace(input.Title)
	if len([]rune(title)) < 2 {
		fieldErrs["title"] = "must be at least 2 characters"
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := validate.Var(email, "required,email"); err != nil {
		fieldErrs["email"] = "must be a valid email address"
	}

	website := strings.TrimSpace(input.Website)
	if website != "" && !isAbsoluteURL(website) {
		fieldErrs["website"] = "must be a valid URL"
	}

	theme := buildTheme(input.Theme, fieldErrs)

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	card := &models.BusinessCard{
		Name:         name,
		Title:        title,
		Company:      strings.TrimSpace(input.Company),
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		Website:      website,
		Bio:          input.Bio,
		ProfileImage: input.ProfileImage,
		SocialLinks:  input.SocialLinks,
		Badges:       input.Badges,
		Theme:        theme,
		Privacy: models.CardPrivacy{
			ShowEmail:     true,
			ShowPhone:     true,
			AllowIndexing: true,
		},
		TeamID: input.TeamID,
	}

	if input.Privacy != nil {
		if input.Privacy.ShowEmail != nil {
			card.Privacy.ShowEmail = *input.Privacy.ShowEmail
		}
		if input.Privacy.ShowPhone != nil {
			card.Privacy.ShowPhone = *input.Privacy.ShowPhone
		}
		if input.Privacy.AllowIndexing != nil {
			card.Privacy.AllowIndexing = *input.Privacy.AllowIndexing
		}
	}

	return card, nil
}

// buildTheme fills missing theme fields with the editor defaults and
// validates whatever the client did supply.
func buildTheme(input *models.ThemeInput, fieldErrs FieldErrors) models.CardTheme {
	theme := models.CardTheme{
		PrimaryColor:   util.DefaultPrimaryColor,
		SecondaryColor: util.DefaultSecondaryColor,
		FontFamily:     util.DefaultFontFamily,
		Layout:         util.DefaultLayout,
	}

	if input == nil {
		return theme
	}

	if input.PrimaryColor != "" {
		if !hexColorPattern.MatchString(input.PrimaryColor) {
			fieldErrs["theme.primary_color"] = "must be a hex color like #0ea5e9"
		} else {
			theme.PrimaryColor = strings.ToLower(input.PrimaryColor)
		}
	}

	if input.SecondaryColor != "" {
		if !hexColorPattern.MatchString(input.SecondaryColor) {
			fieldErrs["theme.secondary_color"] = "must be a hex color like #e0f2fe"
		} else {
			theme.SecondaryColor = strings.ToLower(input.SecondaryColor)
		}
	}

	if input.FontFamily != "" {
		if !contains(util.AllowedFontFamilies, input.FontFamily) {
			fieldErrs["theme.font_family"] = "unsupported font family"
		} else {
			theme.FontFamily = input.FontFamily
		}
	}

	if input.Layout != "" {
		if !contains(util.CardLayouts, input.Layout) {
			fieldErrs["theme.layout"] = "must be one of: modern, classic, minimal"
		} else {
			theme.Layout = input.Layout
		}
	}

	return theme
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

// CreateCard validates and persists a new card for the given owner.
// When the card belongs to a team, the team's card limit is enforced.
func (c *CardController) CreateCard(input *models.CardInput, userID uuid.UUID) (*models.BusinessCard, error) {
	card, fieldErrs := ValidateCard(input)
	if fieldErrs != nil {
		return nil, fieldErrs
	}
	card.UserID = userID

	if card.TeamID != nil {
		if err := c.checkTeamCardLimit(*card.TeamID); err != nil {
			return nil, err
		}
	}

	if err := c.DB.Create(card).Error; err != nil {
		return nil, err
	}

	return card, nil
}

// checkTeamCardLimit rejects creation when the team already has max_cards cards.
// A zero or missing limit means unlimited.
func (c *CardController) checkTeamCardLimit(teamID uuid.UUID) error {
	var team models.Team
	if err := c.DB.First(&team, "id = ?", teamID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeamNotFound
		}
		return err
	}

	var settings models.TeamSettings
	if len(team.Settings) > 0 {
		if err := json.Unmarshal(team.Settings, &settings); err != nil {
			return fmt.Errorf("invalid team settings: %w", err)
		}
	}
	if settings.MaxCards <= 0 {
		return nil
	}

	var count int64
	if err := c.DB.Model(&models.BusinessCard{}).Where("team_id = ?", teamID).Count(&count).Error; err != nil {
		return err
	}
	if count >= int64(settings.MaxCards) {
		return ErrCardLimitReached
	}
	return nil
}

func (c *CardController) GetCard(id uuid.UUID) (*models.BusinessCard, error) {
	var card models.BusinessCard
	if err := c.DB.First(&card, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}
	return &card, nil
}

func (c *CardController) ListCards(userID uuid.UUID) ([]models.BusinessCard, error) {
	var cards []models.BusinessCard
	if err := c.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (c *CardController) ListTeamCards(teamID uuid.UUID) ([]models.BusinessCard, error) {
	var cards []models.BusinessCard
	if err := c.DB.Where("team_id = ?", teamID).Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// UpdateCard replaces the editable fields of a card. The caller supplies the
// version it last read; a stale version fails with ErrCardConflict so the
// editor can reload instead of silently clobbering a concurrent save.
func (c *CardController) UpdateCard(id uuid.UUID, req *models.UpdateCardRequest, userID uuid.UUID) (*models.BusinessCard, error) {
	existing, err := c.GetCard(id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, ErrPermissionDenied
	}

	card, fieldErrs := ValidateCard(&req.CardInput)
	if fieldErrs != nil {
		return nil, fieldErrs
	}

	updates := map[string]interface{}{
		"name":                   card.Name,
		"title":                  card.Title,
		"company":                card.Company,
		"email":                  card.Email,
		"phone":                  card.Phone,
		"website":                card.Website,
		"bio":                    card.Bio,
		"profile_image":          card.ProfileImage,
		"social_links":           card.SocialLinks,
		"badges":                 card.Badges,
		"theme_primary_color":    card.Theme.PrimaryColor,
		"theme_secondary_color":  card.Theme.SecondaryColor,
		"theme_font_family":      card.Theme.FontFamily,
		"theme_layout":           card.Theme.Layout,
		"privacy_show_email":     card.Privacy.ShowEmail,
		"privacy_show_phone":     card.Privacy.ShowPhone,
		"privacy_allow_indexing": card.Privacy.AllowIndexing,
		"version":                gorm.Expr("version + 1"),
	}

	result := c.DB.Model(&models.BusinessCard{}).
		Where("id = ? AND version = ?", id, req.Version).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// Row exists (we just loaded it), so the version is stale
		return nil, ErrCardConflict
	}

	return c.GetCard(id)
}

func (c *CardController) DeleteCard(id uuid.UUID, userID uuid.UUID) error {
	card, err := c.GetCard(id)
	if err != nil {
		return err
	}
	if card.UserID != userID {
		return ErrPermissionDenied
	}
	return c.DB.Delete(&models.BusinessCard{}, "id = ?", id).Error
}

// RegisterNFCDevice binds an NFC device ID to a card. Each device can point
// at exactly one card.
func (c *CardController) RegisterNFCDevice(cardID uuid.UUID, deviceID string, userID uuid.UUID) (*models.BusinessCard, error) {
	card, err := c.GetCard(cardID)
	if err != nil {
		return nil, err
	}
	if card.UserID != userID {
		return nil, ErrPermissionDenied
	}

	var existing models.BusinessCard
	err = c.DB.Where("nfc_id = ? AND id <> ?", deviceID, cardID).First(&existing).Error
	if err == nil {
		return nil, ErrNfcIDTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := c.DB.Model(&models.BusinessCard{}).Where("id = ?", cardID).Update("nfc_id", deviceID).Error; err != nil {
		return nil, err
	}
	return c.GetCard(cardID)
}
