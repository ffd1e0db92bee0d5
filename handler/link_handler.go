package handler

import (
	"net/http"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func linkResponse(link *models.ShortLink) models.LinkResponse {
	return models.LinkResponse{
		ID:          link.ID,
		Slug:        link.Slug,
		ShortURL:    publicBaseURL() + "/" + link.Slug,
		OriginalURL: link.OriginalURL,
		Title:       link.Title,
		Clicks:      link.Clicks,
		Status:      link.Status,
		Protected:   link.PasswordHash != nil,
		ExpiresAt:   link.ExpiresAt,
		CreatedAt:   link.CreatedAt,
	}
}

func (h *Handler) CreateLink(c *gin.Context) {
	var req models.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	link, err := h.links.CreateLink(&req, userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create link"})
		return
	}

	c.JSON(http.StatusCreated, linkResponse(link))
}

func (h *Handler) ListLinks(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	links, err := h.links.ListLinks(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list links"})
		return
	}

	responses := make([]models.LinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, linkResponse(&links[i]))
	}

	c.JSON(http.StatusOK, gin.H{"links": responses, "count": len(responses)})
}

func (h *Handler) GetLinkStats(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	stats, err := h.links.GetLinkStats(c.Param("slug"), userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch link stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) UpdateLinkStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	link, err := h.links.UpdateLinkStatus(c.Param("slug"), req.Status, userID)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update link status"})
		return
	}

	c.JSON(http.StatusOK, linkResponse(link))
}

func (h *Handler) DeleteLink(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	if err := h.links.DeleteLink(c.Param("slug"), userID); err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Link deleted successfully"})
}

// GetLinkQRCode renders a QR code for the short URL
func (h *Handler) GetLinkQRCode(c *gin.Context) {
	userID := c.MustGet("userID").(uuid.UUID)

	link, err := h.links.GetLink(c.Param("slug"))
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch link"})
		return
	}
	if link.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		return
	}

	size, ok := parseQRSize(c)
	if !ok {
		return
	}

	png, err := util.GenerateQRCode(publicBaseURL()+"/"+link.Slug, size)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// RedirectLink serves the public short URL. Expiry, pause and password
// checks happen in the controller; the click counter only moves on a
// successful redirect.
func (h *Handler) RedirectLink(c *gin.Context) {
	slug := c.Param("slug")

	if util.IsReservedPath(slug) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	target, err := h.links.Resolve(slug, c.Query("pw"), c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve link"})
		return
	}

	setNoCacheHeaders(c)
	c.Redirect(http.StatusFound, target)
}
