package controller

import (
	"context"
	"net/http"

	"kotseai-backend/dal"
	"kotseai-backend/middelware"
	"kotseai-backend/models"
	"kotseai-backend/repository"
	"kotseai-backend/services"
	"kotseai-backend/utils/logger"
	"kotseai-backend/utils/swagger"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	User        *UserController
	Maintenance *MaintenanceController
	Cost        *CostController
	Video       *VideoController

	jwtManager *middelware.JWTManager
	limiter    *middelware.RateLimiter
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	repos := repository.NewRepository(dbclient, cfg, log)
	jwtManager := middelware.NewJWTManager(cfg, log)

	generator, err := services.NewGeminiGenerator(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize generation client: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.CostCacheEnable && cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CostCacheTTL, log)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warnf("Redis unreachable, cost cache disabled: %v", err)
		} else {
			cache = redisCache
		}
	}

	maintenanceService := services.NewMaintenanceService(generator, repos.Checklist, log)
	costService := services.NewCostService(generator, cache, cfg, log)
	videoService := services.NewVideoService(cfg, log)

	return &Controller{
		User:        NewUserController(ctx, cfg, repos.User, jwtManager, log),
		Maintenance: NewMaintenanceController(ctx, maintenanceService, log),
		Cost:        NewCostController(ctx, costService, log),
		Video:       NewVideoController(ctx, videoService, log),
		jwtManager:  jwtManager,
		limiter:     middelware.NewRateLimiterFromConfig(cfg),
	}
}

func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	swaggerConfig := swagger.Config{
		Title:         "KotseAI Backend API",
		SwaggerDocURL: "/swagger/doc.json",
	}
	r.GET("/swagger", swagger.ServeUI(swaggerConfig))
	r.GET("/swagger/index.html", swagger.ServeUI(swaggerConfig))
	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.File("./docs/swagger.json")
	})

	auth := v1.Group("/auth")
	auth.POST("/register", c.User.Register)
	auth.POST("/login", c.User.Login)

	// Generation endpoints are rate limited per client IP; the checklist
	// endpoint works for anonymous callers but persists only for
	// authenticated ones.
	maintenance := v1.Group("/maintenance")
	maintenance.Use(middelware.RateLimit(c.limiter))
	maintenance.POST("", c.jwtManager.OptionalAuthMiddleware(), c.Maintenance.Generate)
	maintenance.POST("/cost", c.jwtManager.OptionalAuthMiddleware(), c.Cost.Estimate)
	maintenance.GET("/checklists", c.jwtManager.AuthMiddleware(), c.Maintenance.ListChecklists)

	v1.GET("/videos", c.Video.Search)

	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
