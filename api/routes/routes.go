package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linyuchen/phone-lottery-backend/internal/config"
	"github.com/linyuchen/phone-lottery-backend/internal/handlers"
	"github.com/linyuchen/phone-lottery-backend/internal/middleware"
)

// HandlerDependencies groups the handlers wired into the router
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	CampaignHandler *handlers.CampaignHandler
	DrawHandler     *handlers.DrawHandler
	AdminHandler    *handlers.AdminHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		// Campaign metadata
		public.GET("/title", deps.CampaignHandler.GetTitle)
		public.GET("/deadline", deps.CampaignHandler.GetDeadline)
		public.GET("/prizes", deps.CampaignHandler.GetPrizes)
		public.GET("/activity-description", deps.CampaignHandler.GetDescription)

		// Draw flow
		public.POST("/check-draw-on-deadline", deps.DrawHandler.CheckDrawOnDeadline)
		public.POST("/record-draw", deps.DrawHandler.RecordDraw)
		public.POST("/draw", deps.DrawHandler.Draw)
		public.POST("/query-history", deps.DrawHandler.QueryHistory)

		// Auth
		public.POST("/auth/login", deps.AuthHandler.Login)
	}

	// Operator routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.JWTAuthMiddleware(cfg))
	{
		admin.GET("/settings", deps.AdminHandler.GetSettings)
		admin.PUT("/settings", deps.AdminHandler.UpsertSetting)
		admin.POST("/prizes", deps.AdminHandler.CreatePrize)
		admin.DELETE("/prizes/:name", deps.AdminHandler.DeletePrize)
		admin.GET("/records", deps.AdminHandler.GetRecords)
	}

	return router
}
