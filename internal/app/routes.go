package app

import (
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/auth"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/cache"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/config"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/handlers"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/repo"
	"github.com/RickSantiago/budget-pantry-pal-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, cfg.Redis.SessionTTL.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)

	listRepo := repo.NewPGListRepo(db)
	pantryRepo := repo.NewPGPantryRepo(db)
	listCache := cache.NewListCache(rdb, cfg.Redis.CacheTTL.Duration())

	listSvc := service.NewListService(listRepo, userRepo, listCache)
	pantrySvc := service.NewPantryService(pantryRepo, listSvc, listCache)
	analyticsSvc := service.NewAnalyticsService(listRepo)

	listHandler := handlers.NewListHandler(listSvc)
	itemHandler := handlers.NewItemHandler(listSvc, pantrySvc)
	pantryHandler := handlers.NewPantryHandler(pantrySvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc, listSvc)

	registerAuthRoutes(api, authHandler)

	// Public lists are readable by token without a session.
	api.GET("/public/lists/:token", listHandler.GetPublic)

	protected := api.Group("", auth.RequireSession(sessionStore))
	protected.GET("/auth/me", authHandler.Me)
	registerListRoutes(protected, listHandler, itemHandler)
	registerPantryRoutes(protected, pantryHandler)
	registerAnalyticsRoutes(protected, analyticsHandler)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Budget Pantry Pal API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}

func registerListRoutes(api *gin.RouterGroup, lists *handlers.ListHandler, items *handlers.ItemHandler) {
	api.POST("/lists", lists.Create)
	api.GET("/lists", lists.List)
	api.GET("/lists/trash", lists.Trash)
	api.GET("/lists/:id", lists.GetByID)
	api.PATCH("/lists/:id", lists.Update)
	api.DELETE("/lists/:id", lists.Delete)
	api.POST("/lists/:id/restore", lists.Restore)
	api.DELETE("/lists/:id/purge", lists.Purge)
	api.GET("/lists/:id/summary", lists.Summary)
	api.POST("/lists/:id/share", lists.Share)
	api.POST("/lists/:id/unshare", lists.Unshare)
	api.POST("/lists/:id/visibility", lists.SetVisibility)

	api.POST("/lists/:id/items", items.Add)
	api.PATCH("/lists/:id/items/:itemID", items.Update)
	api.DELETE("/lists/:id/items/:itemID", items.Remove)
	api.POST("/lists/:id/items/:itemID/toggle", items.Toggle)
	api.POST("/lists/:id/items/:itemID/acquire", items.Acquire)
}

func registerPantryRoutes(api *gin.RouterGroup, h *handlers.PantryHandler) {
	api.GET("/pantry", h.List)
	api.POST("/pantry", h.Create)
	api.GET("/pantry/expiring", h.Expiring)
	api.PATCH("/pantry/:id", h.Update)
	api.DELETE("/pantry/:id", h.Delete)
}

func registerAnalyticsRoutes(api *gin.RouterGroup, h *handlers.AnalyticsHandler) {
	api.GET("/analytics/breakdown", h.Breakdown)
	api.GET("/analytics/top", h.Top)
	api.GET("/analytics/suggestions", h.Suggestions)
	api.GET("/analytics/overview", h.Overview)
}
