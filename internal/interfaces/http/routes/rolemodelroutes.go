package routes

import (
	"github.com/gin-gonic/gin"

	"rolehub/internal/interfaces/http/handlers"
	"rolehub/internal/interfaces/http/middleware"
)

// RoleModelRouteConfig holds dependencies for role model routes.
type RoleModelRouteConfig struct {
	RoleModelHandler  *handlers.RoleModelHandler
	AssignmentHandler *handlers.AssignmentHandler
	StatsHandler      *handlers.StatsHandler
	RateLimiter       *middleware.RateLimiter
}

// SetupRoleModelRoutes configures role model, profile, matching and stats
// routes.
func SetupRoleModelRoutes(engine *gin.Engine, cfg *RoleModelRouteConfig) {
	roleModels := engine.Group("/role-models")
	{
		roleModels.POST("", cfg.RoleModelHandler.Create)
		roleModels.GET("", cfg.RoleModelHandler.List)
		roleModels.GET("/:id", cfg.RoleModelHandler.Get)
		roleModels.PUT("/:id", cfg.RoleModelHandler.Update)
		roleModels.DELETE("/:id", cfg.RoleModelHandler.Delete)

		roleModels.POST("/:id/profiles", cfg.RoleModelHandler.CreateProfile)
		roleModels.GET("/:id/profiles", cfg.RoleModelHandler.ListProfiles)
		roleModels.GET("/:id/stats", cfg.StatsHandler.ModelStats)
	}

	profiles := engine.Group("/role-profiles")
	{
		profiles.GET("/:id", cfg.RoleModelHandler.GetProfile)
		profiles.PUT("/:id", cfg.RoleModelHandler.UpdateProfile)
		profiles.DELETE("/:id", cfg.RoleModelHandler.DeleteProfile)

		profiles.POST("/:id/accesses", cfg.RoleModelHandler.LinkAccess)
		profiles.GET("/:id/accesses", cfg.RoleModelHandler.ListAccesses)
		profiles.DELETE("/:id/accesses/:accessId", cfg.RoleModelHandler.UnlinkAccess)

		profiles.GET("/:id/matching", cfg.RoleModelHandler.ListMatching)
		profiles.GET("/:id/matching/count", cfg.RoleModelHandler.CountMatching)
		profiles.GET("/:id/summary", cfg.StatsHandler.ProfileSummary)

		profiles.POST("/:id/assign", cfg.RateLimiter.Limit(), cfg.AssignmentHandler.AssignFromProfile)
	}

	stats := engine.Group("/stats")
	{
		stats.GET("/accesses", cfg.StatsHandler.AccessStats)
	}
}
