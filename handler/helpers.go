package handler

import (
	"errors"
	"net/http"

	"github.com/Adiru352/luxmeet3.0/controller"
	"github.com/gin-gonic/gin"
)

// setNoCacheHeaders sets cache-control headers to prevent caching
// Used for redirect responses and error responses that need to be fresh
func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

// handleControllerError handles controller errors and returns appropriate HTTP responses
// Returns true if the error was handled, false otherwise
func handleControllerError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	// Field-level validation errors render as a field->message map
	var fieldErrs controller.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "fields": fieldErrs})
		return true
	}

	switch {
	case errors.Is(err, controller.ErrCardNotFound),
		errors.Is(err, controller.ErrLinkNotFound),
		errors.Is(err, controller.ErrLeadNotFound),
		errors.Is(err, controller.ErrTeamNotFound),
		errors.Is(err, controller.ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return true

	case errors.Is(err, controller.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		return true

	case errors.Is(err, controller.ErrSlugTaken), errors.Is(err, controller.ErrNfcIDTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return true

	case errors.Is(err, controller.ErrCardConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Card was modified by another request. Reload and try again."})
		return true

	case errors.Is(err, controller.ErrInvalidSlug),
		errors.Is(err, controller.ErrInvalidStatus),
		errors.Is(err, controller.ErrInvalidQRSize):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return true

	case errors.Is(err, controller.ErrCardLimitReached):
		c.JSON(http.StatusForbidden, gin.H{"error": "Your team has reached its card limit. Upgrade the plan to add more cards."})
		return true

	case errors.Is(err, controller.ErrLinkExpired):
		setNoCacheHeaders(c)
		c.JSON(http.StatusGone, gin.H{"error": "This link has expired"})
		return true

	case errors.Is(err, controller.ErrLinkPaused):
		setNoCacheHeaders(c)
		c.JSON(http.StatusNotFound, gin.H{"error": "This link is not available"})
		return true

	case errors.Is(err, controller.ErrLinkPassword):
		setNoCacheHeaders(c)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This link is password protected"})
		return true
	}

	// Error not handled by this function
	return false
}
