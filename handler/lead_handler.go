package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CaptureLead is the public endpoint behind shared cards. Scoring and the
// owner notification run in the background so the visitor never waits on
// the scoring API.
func (h *Handler) CaptureLead(c *gin.Context) {
	var req models.CaptureLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leads.CaptureLead(&req)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to capture lead"})
		return
	}

	go h.scoreAndNotify(lead.ID)

	c.JSON(http.StatusCreated, gin.H{"lead": lead})
}

// scoreAndNotify runs after lead capture. Any failure here must not
// surface to the visitor; the fallback score covers scoring errors and a
// lost notification is only logged.
func (h *Handler) scoreAndNotify(leadID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lead, err := h.leads.GetLead(leadID)
	if err != nil {
		log.Printf("❌ Scoring skipped, lead %s not found: %v", leadID, err)
		return
	}

	interactions, err := h.leads.ListInteractions(leadID)
	if err != nil {
		interactions = nil
	}

	score := service.ScoreLead(ctx, h.scorer, lead, service.BuildLeadContext(lead, interactions))
	if _, err := h.leads.SetScore(leadID, score); err != nil {
		log.Printf("❌ Failed to store score for lead %s: %v", leadID, err)
	}

	card, err := h.cards.GetCard(lead.BusinessCardID)
	if err != nil {
		return
	}

	var owner models.User
	if err := h.db.First(&owner, "id = ?", card.UserID).Error; err != nil {
		return
	}

	h.email.SendLeadNotificationAsync(owner.Email, lead, card.Name)
}

func (h *Handler) GetLead(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leads.GetLead(id)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lead"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": lead})
}

func (h *Handler) ListLeadsByCard(c *gin.Context) {
	cardID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	leads, err := h.leads.ListLeadsByCard(cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list leads"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": leads, "count": len(leads)})
}

func (h *Handler) RecordInteraction(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.RecordInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	interaction, err := h.leads.RecordInteraction(leadID, &req)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record interaction"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"interaction": interaction})
}

func (h *Handler) ListInteractions(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	interactions, err := h.leads.ListInteractions(leadID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list interactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"interactions": interactions, "count": len(interactions)})
}

// ScoreLead re-scores a lead on demand, e.g. after new interactions.
func (h *Handler) ScoreLead(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	lead, err := h.leads.GetLead(leadID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lead"})
		return
	}

	interactions, err := h.leads.ListInteractions(leadID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interactions"})
		return
	}

	score := service.ScoreLead(c.Request.Context(), h.scorer, lead, service.BuildLeadContext(lead, interactions))

	updated, err := h.leads.SetScore(leadID, score)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store score"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lead": updated})
}

// SyncLead pushes a lead to the configured CRM providers. Partial failure
// is reported per provider, never as a request error.
func (h *Handler) SyncLead(c *gin.Context) {
	leadID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.SyncLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leads.GetLead(leadID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch lead"})
		return
	}

	card, err := h.cards.GetCard(lead.BusinessCardID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card"})
		return
	}

	results := h.crm.SyncContact(c.Request.Context(), service.ContactFromLead(lead, card), req.Providers)

	synced := 0
	for _, r := range results {
		if r.Success {
			synced++
		}
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "synced": synced, "total": len(results)})
}
