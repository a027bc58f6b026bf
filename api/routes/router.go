package routes

import (
	"net/http"
	"time"

	"standplanner/docs"
	"standplanner/internal/applications"
	"standplanner/internal/editor"
	"standplanner/internal/notifications"
	"standplanner/internal/plans"
	"standplanner/internal/shared/config"
	"standplanner/internal/shared/database"
	"standplanner/pkg/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB

	applicationService applications.Service
	planService        plans.Service
	sessions           *editor.Manager
}

// NewRouter wires the services behind the API. publisher may be nil, in
// which case plan events are dropped.
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher) *Router {
	cacheService := cache.NewService(db.GetRedis())

	applicationService := applications.NewService(
		applications.NewRepository(db.GetPostgreSQL()),
		cacheService,
		applications.WithCacheTTL(cfg.Redis.ApplicationTTL),
	)

	defaults := plans.DefaultsFromConfig(cfg.Layout)
	defaults.CacheTTL = cfg.Redis.PlanTTL
	planService := plans.NewService(
		plans.NewRepository(db.GetPostgreSQL()),
		cacheService,
		publisher,
		applicationService,
		defaults,
	)

	return &Router{
		config:             cfg,
		db:                 db,
		applicationService: applicationService,
		planService:        planService,
		sessions:           editor.NewManager(planService, applicationService),
	}
}

// Sessions exposes the editing sessions so main can prune idle ones.
func (r *Router) Sessions() *editor.Manager {
	return r.sessions
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)
	if !r.config.IsProduction() {
		r.setupDocsRoutes(engine)
	}

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupApplicationRoutes(api)
		r.setupEditorRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "standplanner",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "standplanner",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "operational",
			"api_version":   r.config.APIVersion,
			"redis_cache":   r.db.GetRedis() != nil,
			"open_sessions": r.sessions.Len(),
			"timestamp":     time.Now(),
		})
	})
}

// setupDocsRoutes serves the OpenAPI description and its UI under /swagger
func (r *Router) setupDocsRoutes(engine *gin.Engine) {
	docs.SwaggerInfo.BasePath = r.config.GetAPIBasePath()
	docs.SwaggerInfo.Version = r.config.APIVersion
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupApplicationRoutes configures the exhibitor application registry
func (r *Router) setupApplicationRoutes(rg *gin.RouterGroup) {
	controller := applications.NewController(r.applicationService)
	applications.SetupApplicationRoutes(rg, controller)
}

// setupEditorRoutes configures the floor-plan editor
func (r *Router) setupEditorRoutes(rg *gin.RouterGroup) {
	controller := editor.NewController(r.sessions)
	editor.SetupEditorRoutes(rg, controller)
}
