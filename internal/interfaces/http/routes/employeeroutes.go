package routes

import (
	"github.com/gin-gonic/gin"

	"rolehub/internal/interfaces/http/handlers"
)

// EmployeeRouteConfig holds dependencies for employee routes.
type EmployeeRouteConfig struct {
	EmployeeHandler *handlers.EmployeeHandler
}

// SetupEmployeeRoutes configures employee routes.
func SetupEmployeeRoutes(engine *gin.Engine, cfg *EmployeeRouteConfig) {
	employees := engine.Group("/employees")
	{
		employees.POST("", cfg.EmployeeHandler.Create)
		employees.GET("", cfg.EmployeeHandler.List)
		employees.GET("/stats", cfg.EmployeeHandler.Stats)
		employees.GET("/:id", cfg.EmployeeHandler.Get)
		employees.PUT("/:id", cfg.EmployeeHandler.Update)
		employees.PATCH("/:id/status", cfg.EmployeeHandler.ChangeStatus)
		employees.DELETE("/:id", cfg.EmployeeHandler.Delete)
	}
}
