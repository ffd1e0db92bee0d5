package handler

import (
	"net/http"
	"os"
	"strconv"

	"github.com/Adiru352/luxmeet3.0/controller"
	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseQRSize reads the optional ?size= query, responding 400 when it is
// not one of the allowed sizes
func parseQRSize(c *gin.Context) (int, bool) {
	size := util.DefaultQRCodeSize
	if sizeParam := c.Query("size"); sizeParam != "" {
		parsed, err := strconv.Atoi(sizeParam)
		if err != nil || util.ValidateQRCodeSize(parsed) != nil {
			handleControllerError(c, controller.ErrInvalidQRSize)
			return 0, false
		}
		size = parsed
	}
	return size, true
}

// parseIDParam parses a UUID path parameter, responding 400 on failure
func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) CreateCard(c *gin.Context) {
	var input models.CardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	card, err := h.cards.CreateCard(&input, userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card"})
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *Handler) GetCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cards.GetCard(id)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card"})
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handler) ListCards(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	cards, err := h.cards.ListCards(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cards"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards, "count": len(cards)})
}

func (h *Handler) UpdateCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	card, err := h.cards.UpdateCard(id, &req, userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handler) DeleteCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	if err := h.cards.DeleteCard(id, userID); err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}

// GetCardQRCode renders a QR code pointing at the public card page
func (h *Handler) GetCardQRCode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cards.GetCard(id)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card"})
		return
	}

	size, ok := parseQRSize(c)
	if !ok {
		return
	}

	cardURL := publicBaseURL() + "/c/" + card.ID.String()
	png, err := util.GenerateQRCode(cardURL, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// GetPublicCard serves the card behind the QR target /c/:id. Privacy
// settings hide contact fields before anything leaves the server.
func (h *Handler) GetPublicCard(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	card, err := h.cards.GetCard(id)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch card"})
		return
	}

	if !card.Privacy.ShowEmail {
		card.Email = ""
	}
	if !card.Privacy.ShowPhone {
		card.Phone = ""
	}
	if !card.Privacy.AllowIndexing {
		c.Header("X-Robots-Tag", "noindex")
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handler) RegisterNFC(c *gin.Context) {
	var req models.RegisterNFCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	card, err := h.cards.RegisterNFCDevice(req.CardID, req.DeviceID, userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register NFC device"})
		return
	}

	c.JSON(http.StatusOK, card)
}

// publicBaseURL is the externally visible origin used in QR codes and short URLs
func publicBaseURL() string {
	if base := os.Getenv("PUBLIC_BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080"
}
