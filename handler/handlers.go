package handler

import (
	"net/http"

	"github.com/Adiru352/luxmeet3.0/controller"
	"github.com/Adiru352/luxmeet3.0/models"
	"github.com/Adiru352/luxmeet3.0/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler wires the controllers and external-service facades behind the
// HTTP surface.
type Handler struct {
	cards         *controller.CardController
	links         *controller.LinkController
	leads         *controller.LeadController
	teams         *controller.TeamController
	subscriptions *controller.SubscriptionController

	scorer  service.LeadScorer
	crm     *service.CRMService
	billing *service.BillingService
	email   *service.EmailService

	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		cards:         controller.NewCardController(db),
		links:         controller.NewLinkController(db),
		leads:         controller.NewLeadController(db),
		teams:         controller.NewTeamController(db),
		subscriptions: controller.NewSubscriptionController(db),
		scorer:        service.NewChatScorer(),
		crm:           service.NewCRMService(),
		billing:       service.NewBillingService(),
		email:         service.GetEmailService(),
		db:            db,
	}
}

// HealthHandler reports DB connectivity for load balancer checks
func (h *Handler) HealthHandler(c *gin.Context) {
	var count int

	query := `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public';
	`

	if err := h.db.Raw(query).Scan(&count).Error; err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"tables": count,
	})
}

// AdminStats returns platform-wide row counts for the admin dashboard
func (h *Handler) AdminStats(c *gin.Context) {
	stats := gin.H{}
	for name, model := range map[string]interface{}{
		"users": &models.User{},
		"teams": &models.Team{},
		"cards": &models.BusinessCard{},
		"links": &models.ShortLink{},
		"leads": &models.Lead{},
	} {
		var count int64
		if err := h.db.Model(model).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to collect stats"})
			return
		}
		stats[name] = count
	}

	c.JSON(http.StatusOK, stats)
}
