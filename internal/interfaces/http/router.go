// Package http wires the HTTP surface: repositories, services, handlers
// and routes.
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	accessServices "rolehub/internal/application/access/services"
	employeeServices "rolehub/internal/application/employee/services"
	orgServices "rolehub/internal/application/organization/services"
	rolemodelServices "rolehub/internal/application/rolemodel/services"
	"rolehub/internal/domain/organization"
	"rolehub/internal/infrastructure/config"
	"rolehub/internal/infrastructure/ratelimit"
	"rolehub/internal/infrastructure/repository"
	"rolehub/internal/interfaces/http/handlers"
	"rolehub/internal/interfaces/http/middleware"
	"rolehub/internal/interfaces/http/routes"
	"rolehub/internal/shared/db"
	"rolehub/internal/shared/logger"

	_ "rolehub/docs"
)

// Router holds the configured Gin engine and route dependencies.
type Router struct {
	engine       *gin.Engine
	cfg          *config.Config
	organization *routes.OrganizationRouteConfig
	employee     *routes.EmployeeRouteConfig
	access       *routes.AccessRouteConfig
	rolemodel    *routes.RoleModelRouteConfig
	health       *handlers.HealthHandler
	logger       logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies wired. The
// redis client may be nil; rate limiting is then disabled.
func NewRouter(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	orgUnitRepo := repository.NewOrgUnitRepository(database, log)
	positionRepo := repository.NewPositionRepository(database, log)
	referenceRepo := repository.NewReferenceRepository(database, log)
	agileRepo := repository.NewAgileRepository(database, log)
	employeeRepo := repository.NewEmployeeRepository(database, log)
	systemRepo := repository.NewApplicationSystemRepository(database, log)
	accessRepo := repository.NewAccessRepository(database, log)
	assignmentRepo := repository.NewAssignmentRepository(database, log)
	roleModelRepo := repository.NewRoleModelRepository(database, log)
	profileRepo := repository.NewRoleProfileRepository(database, log)
	profileAccessRepo := repository.NewProfileAccessRepository(database, log)
	matcher := repository.NewEmployeeMatcher(database, log)

	txManager := db.NewTransactionManager(database)

	orgUnitService := orgServices.NewOrgUnitService(orgUnitRepo, log)
	positionService := orgServices.NewPositionService(positionRepo, log)
	referenceService := orgServices.NewReferenceService(referenceRepo, log)
	agileService := orgServices.NewAgileService(agileRepo, log)
	employeeService := employeeServices.NewEmployeeService(
		employeeRepo, orgUnitRepo, positionRepo, referenceRepo, agileRepo, log)
	systemService := accessServices.NewSystemService(systemRepo, log)
	accessService := accessServices.NewAccessService(accessRepo, log)
	reconcilerService := accessServices.NewReconcilerService(
		assignmentRepo, employeeRepo, accessRepo, profileRepo, profileAccessRepo, matcher, txManager, log)
	roleModelService := rolemodelServices.NewRoleModelService(
		roleModelRepo, profileRepo, profileAccessRepo, accessRepo, log)
	matchingService := rolemodelServices.NewMatchingService(profileRepo, matcher, log)
	statsService := rolemodelServices.NewStatsService(
		roleModelRepo, profileRepo, profileAccessRepo, matcher, assignmentRepo, cfg.Stats, log)

	var limiter ratelimit.RateLimiter
	if redisClient != nil {
		limiter = ratelimit.NewRedisRateLimiter(redisClient)
	}
	rateLimiter := middleware.NewRateLimiter(limiter, cfg.RateLimit, log)

	assignmentHandler := handlers.NewAssignmentHandler(reconcilerService)
	statsHandler := handlers.NewStatsHandler(statsService)

	return &Router{
		engine: engine,
		cfg:    cfg,
		organization: &routes.OrganizationRouteConfig{
			OrgUnitHandler:         handlers.NewOrgUnitHandler(orgUnitService),
			PositionHandler:        handlers.NewPositionHandler(positionService),
			ProfileCatalogHandler:  handlers.NewReferenceHandler(referenceService, organization.RefEmployeeProfile),
			TypeCatalogHandler:     handlers.NewReferenceHandler(referenceService, organization.RefEmployeeType),
			TeamRoleCatalogHandler: handlers.NewReferenceHandler(referenceService, organization.RefTeamRole),
			AgileHandler:           handlers.NewAgileHandler(agileService),
		},
		employee: &routes.EmployeeRouteConfig{
			EmployeeHandler: handlers.NewEmployeeHandler(employeeService),
		},
		access: &routes.AccessRouteConfig{
			SystemHandler:     handlers.NewSystemHandler(systemService),
			AccessHandler:     handlers.NewAccessHandler(accessService),
			AssignmentHandler: assignmentHandler,
			RateLimiter:       rateLimiter,
		},
		rolemodel: &routes.RoleModelRouteConfig{
			RoleModelHandler:  handlers.NewRoleModelHandler(roleModelService, matchingService),
			AssignmentHandler: assignmentHandler,
			StatsHandler:      statsHandler,
			RateLimiter:       rateLimiter,
		},
		health: handlers.NewHealthHandler(database),
		logger: log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.health.Check)

	routes.SetupOrganizationRoutes(r.engine, r.organization)
	routes.SetupEmployeeRoutes(r.engine, r.employee)
	routes.SetupAccessRoutes(r.engine, r.access)
	routes.SetupRoleModelRoutes(r.engine, r.rolemodel)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
