package controller

import (
	"errors"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadController struct {
	DB *gorm.DB
}

func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{DB: db}
}

// CaptureLead stores a contact captured from a card view. The lead starts
// unscored; scoring happens asynchronously afterwards.
// The source check duplicates the binding tag on purpose: leads can be
// created by callers other than the public capture endpoint.
func (c *LeadController) CaptureLead(req *models.CaptureLeadRequest) (*models.Lead, error) {
	if !contains(util.LeadSources, req.Source) {
		return nil, FieldErrors{"source": "must be one of: nfc, qr, share, direct"}
	}

	var card models.BusinessCard
	if err := c.DB.First(&card, "id = ?", req.BusinessCardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, err
	}

	lead := models.Lead{
		BusinessCardID: req.BusinessCardID,
		Name:           req.Name,
		Email:          req.Email,
		Source:         req.Source,
		Notes:          req.Notes,
		Score:          nil,
	}

	if err := c.DB.Create(&lead).Error; err != nil {
		return nil, err
	}

	return &lead, nil
}

func (c *LeadController) GetLead(id uuid.UUID) (*models.Lead, error) {
	var lead models.Lead
	if err := c.DB.First(&lead, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (c *LeadController) ListLeadsByCard(cardID uuid.UUID) ([]models.Lead, error) {
	var leads []models.Lead
	if err := c.DB.Where("business_card_id = ?", cardID).Order("created_at DESC").Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// RecordInteraction appends an engagement event to a lead's history.
// Interactions feed the scoring context.
func (c *LeadController) RecordInteraction(leadID uuid.UUID, req *models.RecordInteractionRequest) (*models.LeadInteraction, error) {
	if !contains(util.InteractionTypes, req.Type) {
		return nil, FieldErrors{"type": "must be one of: view, click, download, share"}
	}

	if _, err := c.GetLead(leadID); err != nil {
		return nil, err
	}

	interaction := models.LeadInteraction{
		LeadID:  leadID,
		Type:    req.Type,
		Details: req.Details,
	}
	if err := c.DB.Create(&interaction).Error; err != nil {
		return nil, err
	}
	return &interaction, nil
}

func (c *LeadController) ListInteractions(leadID uuid.UUID) ([]models.LeadInteraction, error) {
	var interactions []models.LeadInteraction
	if err := c.DB.Where("lead_id = ?", leadID).Order("created_at ASC").Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

// SetScore persists a score for a lead. Scores arrive clamped from the
// scorer, but the range is re-checked here so a bad caller can never
// write an out-of-range value.
func (c *LeadController) SetScore(leadID uuid.UUID, score int) (*models.Lead, error) {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	lead, err := c.GetLead(leadID)
	if err != nil {
		return nil, err
	}

	if err := c.DB.Model(lead).Update("score", score).Error; err != nil {
		return nil, err
	}
	lead.Score = &score
	return lead, nil
}
