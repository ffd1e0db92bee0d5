package handler

import (
	"net/http"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *Handler) CreateTeam(c *gin.Context) {
	var req models.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	team, err := h.teams.CreateTeam(&req, userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}

func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teams.GetTeam(id)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

func (h *Handler) UpdateTeamSettings(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTeamSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	team, err := h.teams.UpdateSettings(id, &req, userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

func (h *Handler) JoinTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	if err := h.teams.JoinTeam(id, userID); err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Joined team successfully"})
}

func (h *Handler) LeaveTeam(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	if err := h.teams.LeaveTeam(userID); err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to leave team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left team successfully"})
}

func (h *Handler) ListTeamCards(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	cards, err := h.cards.ListTeamCards(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list team cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards, "count": len(cards)})
}

func (h *Handler) GetTeamSubscription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := h.subscriptions.GetByTeam(id)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscription": sub})
}
