package routes

import (
	"github.com/gin-gonic/gin"

	"rolehub/internal/interfaces/http/handlers"
)

// OrganizationRouteConfig holds dependencies for organization routes.
type OrganizationRouteConfig struct {
	OrgUnitHandler         *handlers.OrgUnitHandler
	PositionHandler        *handlers.PositionHandler
	ProfileCatalogHandler  *handlers.ReferenceHandler
	TypeCatalogHandler     *handlers.ReferenceHandler
	TeamRoleCatalogHandler *handlers.ReferenceHandler
	AgileHandler           *handlers.AgileHandler
}

// SetupOrganizationRoutes configures org structure and catalog routes.
func SetupOrganizationRoutes(engine *gin.Engine, cfg *OrganizationRouteConfig) {
	orgUnits := engine.Group("/org-units")
	{
		orgUnits.POST("", cfg.OrgUnitHandler.Create)
		orgUnits.GET("", cfg.OrgUnitHandler.List)
		orgUnits.GET("/:id", cfg.OrgUnitHandler.Get)
		orgUnits.PUT("/:id", cfg.OrgUnitHandler.Update)
		orgUnits.DELETE("/:id", cfg.OrgUnitHandler.Delete)
	}

	positions := engine.Group("/positions")
	{
		positions.POST("", cfg.PositionHandler.Create)
		positions.GET("", cfg.PositionHandler.List)
		positions.GET("/:id", cfg.PositionHandler.Get)
		positions.PUT("/:id", cfg.PositionHandler.Update)
	}

	setupCatalogRoutes(engine.Group("/employee-profiles"), cfg.ProfileCatalogHandler)
	setupCatalogRoutes(engine.Group("/employee-types"), cfg.TypeCatalogHandler)
	setupCatalogRoutes(engine.Group("/team-roles"), cfg.TeamRoleCatalogHandler)

	tribes := engine.Group("/tribes")
	{
		tribes.POST("", cfg.AgileHandler.CreateTribe)
		tribes.GET("", cfg.AgileHandler.ListTribes)
	}

	products := engine.Group("/products")
	{
		products.POST("", cfg.AgileHandler.CreateProduct)
		products.GET("", cfg.AgileHandler.ListProducts)
	}

	agileTeams := engine.Group("/agile-teams")
	{
		agileTeams.POST("", cfg.AgileHandler.CreateAgileTeam)
		agileTeams.GET("", cfg.AgileHandler.ListAgileTeams)
	}
}

func setupCatalogRoutes(group *gin.RouterGroup, handler *handlers.ReferenceHandler) {
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
}
