package handler

import (
	"log"
	"net/http"

	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateCheckoutSession(c *gin.Context) {
	var req models.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.billing.CreateCheckoutSession(c.Request.Context(), req.PriceID, req.TeamID)
	if err != nil {
		log.Printf("❌ Checkout session failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create checkout session"})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{URL: url})
}

func (h *Handler) CreatePortalSession(c *gin.Context) {
	var req models.PortalSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	url, err := h.billing.CreatePortalSession(c.Request.Context(), req.TeamID)
	if err != nil {
		log.Printf("❌ Portal session failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to create portal session"})
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{URL: url})
}

// BillingWebhook ingests subscription lifecycle events from the payment
// processor. Unknown event types are acknowledged and ignored so the
// processor does not retry them forever.
func (h *Handler) BillingWebhook(c *gin.Context) {
	var event models.BillingEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch event.Type {
	case "checkout.session.completed",
		"customer.subscription.created",
		"customer.subscription.updated",
		"customer.subscription.deleted":
	default:
		c.JSON(http.StatusOK, gin.H{"received": true, "ignored": true})
		return
	}

	sub, err := h.subscriptions.ApplyBillingEvent(&event)
	if err != nil {
		if handleControllerError(c, err) {
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply billing event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "subscription_id": sub.ID})
}
