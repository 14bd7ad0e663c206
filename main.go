package main

import (
	"context"
	"log"

	"kotseai-backend/controller"
	"kotseai-backend/middelware"
	"kotseai-backend/models"
	"kotseai-backend/utils"
	"kotseai-backend/utils/logger"
	"kotseai-backend/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var config *models.Config

func Init() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var err error
	config, err = utils.GetConfig()
	if err != nil {
		log.Fatal(err)
	}
}

// @title KotseAI Backend API
// @version 1.0
// @description Personalized vehicle maintenance checklists and cost estimates for car owners in the Philippines.
// @description
// @description ## Authentication
// @description Register with **POST /auth/register**, then exchange credentials for a JWT with **POST /auth/login**.
// @description Checklist generation works anonymously; checklists are saved to your dashboard only when you send a Bearer token.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Enter 'Bearer' [space] and then your token.
func main() {
	Init()

	ctx := context.Background()
	appLogger := logger.NewLogger(config.LogLevel, config.LogFormat)
	appLogger.Infof("Starting %s %s (%s)", config.AppName, config.AppVersion, config.AppEnv)

	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	logging := middelware.NewLoggingMiddleware(appLogger)
	r.Use(logging.Recovery())
	r.Use(logging.RequestLogger())
	r.Use(middelware.NewCORSMiddleware(config).CORS())

	c := controller.NewController(ctx, config, appLogger)

	// Start server (this is blocking)
	go func() {
		if err := c.RegisterRoutes(ctx, config, r, config.BasePath); err != nil {
			appLogger.Fatalf("Server failed: %v", err)
		}
	}()

	bootstrapWorker, err := worker.NewService(ctx, config, appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to create table bootstrap worker: %v", err)
	}
	bootstrapWorker.StartInBackground(ctx)

	// Keep main goroutine alive
	select {}
}
