package routes

import (
	"github.com/gin-gonic/gin"

	"rolehub/internal/interfaces/http/handlers"
	"rolehub/internal/interfaces/http/middleware"
)

// AccessRouteConfig holds dependencies for access catalog and grant routes.
type AccessRouteConfig struct {
	SystemHandler     *handlers.SystemHandler
	AccessHandler     *handlers.AccessHandler
	AssignmentHandler *handlers.AssignmentHandler
	RateLimiter       *middleware.RateLimiter
}

// SetupAccessRoutes configures application system, access and assignment
// routes. Bulk operations carry the rate limiter since a single request
// can fan out into a large write.
func SetupAccessRoutes(engine *gin.Engine, cfg *AccessRouteConfig) {
	systems := engine.Group("/systems")
	{
		systems.POST("", cfg.SystemHandler.Create)
		systems.GET("", cfg.SystemHandler.List)
		systems.GET("/:id", cfg.SystemHandler.Get)
		systems.PUT("/:id", cfg.SystemHandler.Update)
		systems.DELETE("/:id", cfg.SystemHandler.Delete)
	}

	accesses := engine.Group("/accesses")
	{
		accesses.POST("", cfg.AccessHandler.Create)
		accesses.GET("", cfg.AccessHandler.List)
		accesses.GET("/:id", cfg.AccessHandler.Get)
		accesses.PUT("/:id", cfg.AccessHandler.Update)
		accesses.DELETE("/:id", cfg.AccessHandler.Delete)
	}

	assignments := engine.Group("/assignments")
	{
		assignments.GET("", cfg.AssignmentHandler.List)
		assignments.POST("", cfg.AssignmentHandler.Assign)
		assignments.POST("/bulk", cfg.RateLimiter.Limit(), cfg.AssignmentHandler.BulkAssign)
		assignments.POST("/bulk-revoke", cfg.RateLimiter.Limit(), cfg.AssignmentHandler.BulkRevoke)
		assignments.DELETE("/:id", cfg.AssignmentHandler.RevokeSingle)
	}
}
