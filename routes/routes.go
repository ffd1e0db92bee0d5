package routes

import (
	"time"

	"github.com/Adiru352/luxmeet3.0/config"
	"github.com/Adiru352/luxmeet3.0/handler"
	"github.com/Adiru352/luxmeet3.0/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	h := handler.NewHandler(config.DB)
	auth := handler.NewAuthHandler(config.DB)

	router.GET("/health", h.HealthHandler)

	api := router.Group("/api")
	{
		// Cards
		api.POST("/cards", middleware.AuthRequired(), h.CreateCard)
		api.GET("/cards", middleware.AuthRequired(), h.ListCards)
		api.GET("/cards/:id/qr", middleware.AuthRequired(), h.GetCardQRCode) // must be before /cards/:id
		api.GET("/cards/:id/leads", middleware.AuthRequired(), h.ListLeadsByCard)
		api.GET("/cards/:id", middleware.AuthRequired(), h.GetCard)
		api.PATCH("/cards/:id", middleware.AuthRequired(), h.UpdateCard)
		api.DELETE("/cards/:id", middleware.AuthRequired(), h.DeleteCard)
		api.POST("/nfc/register", middleware.AuthRequired(), h.RegisterNFC)

		// Short links
		api.POST("/links", middleware.AuthRequired(), h.CreateLink)
		api.GET("/links", middleware.AuthRequired(), h.ListLinks)
		api.GET("/links/:slug/stats", middleware.AuthRequired(), h.GetLinkStats)
		api.GET("/links/:slug/qr", middleware.AuthRequired(), h.GetLinkQRCode)
		api.PATCH("/links/:slug/status", middleware.AuthRequired(), h.UpdateLinkStatus)
		api.DELETE("/links/:slug", middleware.AuthRequired(), h.DeleteLink)

		// Leads: capture is public (embedded in shared card pages), rate limited
		api.POST("/leads", middleware.RateLimit(), middleware.RequestTimeout(30*time.Second), h.CaptureLead)
		api.GET("/leads/:id", middleware.AuthRequired(), h.GetLead)
		api.POST("/leads/:id/interactions", middleware.RateLimit(), h.RecordInteraction)
		api.GET("/leads/:id/interactions", middleware.AuthRequired(), h.ListInteractions)
		api.POST("/leads/:id/score", middleware.AuthRequired(), middleware.RequestTimeout(30*time.Second), h.ScoreLead)
		api.POST("/leads/:id/sync", middleware.AuthRequired(), middleware.RequestTimeout(30*time.Second), h.SyncLead)

		// Teams
		api.POST("/teams", middleware.AuthRequired(), h.CreateTeam)
		api.GET("/teams/:id/cards", middleware.AuthRequired(), h.ListTeamCards)
		api.GET("/teams/:id/subscription", middleware.AuthRequired(), h.GetTeamSubscription)
		api.GET("/teams/:id", middleware.AuthRequired(), h.GetTeam)
		api.PATCH("/teams/:id/settings", middleware.AuthRequired(), h.UpdateTeamSettings)
		api.POST("/teams/:id/join", middleware.AuthRequired(), h.JoinTeam)
		api.POST("/teams/leave", middleware.AuthRequired(), h.LeaveTeam)

		// Admin
		api.GET("/admin/stats", middleware.AuthRequired(), middleware.AdminRequired(), h.AdminStats)

		// Billing
		api.POST("/checkout/session", middleware.AuthRequired(), middleware.RequestTimeout(30*time.Second), h.CreateCheckoutSession)
		api.POST("/portal/session", middleware.AuthRequired(), middleware.RequestTimeout(30*time.Second), h.CreatePortalSession)
	}

	authGroup := router.Group("/auth", middleware.RequestTimeout(1*time.Minute))
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout)
		authGroup.GET("/me", middleware.AuthRequired(), auth.Me)
	}

	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/billing", h.BillingWebhook)
	}

	// Public card page, the QR code target
	router.GET("/c/:id", h.GetPublicCard)

	// Public redirect route (MUST be last to avoid catching /api, /auth, /webhooks)
	// Support both GET and HEAD methods
	router.GET("/:slug", h.RedirectLink)
	router.HEAD("/:slug", h.RedirectLink)
}
