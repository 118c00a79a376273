package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/pickup-api/api/swagger"
	"github.com/noah-isme/pickup-api/internal/handler"
	"github.com/noah-isme/pickup-api/internal/middleware"
	"github.com/noah-isme/pickup-api/internal/repository"
	"github.com/noah-isme/pickup-api/internal/service"
	"github.com/noah-isme/pickup-api/pkg/cache"
	"github.com/noah-isme/pickup-api/pkg/config"
	"github.com/noah-isme/pickup-api/pkg/database"
	"github.com/noah-isme/pickup-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/pickup-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/pickup-api/pkg/middleware/requestid"
)

// @title Pickup Records API
// @version 1.0.0
// @description School pickup tracking: front-desk confirmations and the admin record log
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, stats caching disabled", "error", err)
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()

	studentRepo := repository.NewStudentRepository(db)
	pickupRepo := repository.NewPickupRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	studentSvc := service.NewStudentService(studentRepo, logr)
	recordSvc := service.NewRecordService(pickupRepo, studentRepo, cacheRepo, cfg.Stats.CacheTTL, metricsSvc, nil, logr)
	authSvc := service.NewAuthService(cfg.Admin.Password, logr)

	studentHandler := handler.NewStudentHandler(studentSvc)
	recordHandler := handler.NewRecordHandler(recordSvc)
	adminHandler := handler.NewAdminRecordHandler(recordSvc)
	authHandler := handler.NewAuthHandler(authSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/students/:id", studentHandler.Get)
		api.POST("/records", recordHandler.Create)
		api.GET("/records", recordHandler.List)
		api.GET("/stats", recordHandler.Stats)

		admin := api.Group("/admin")
		{
			admin.POST("/verify-password", authHandler.VerifyPassword)
			admin.GET("/classes", studentHandler.Classes)
			admin.GET("/students", studentHandler.Roster)
			admin.GET("/records", adminHandler.List)
			admin.GET("/records/export", adminHandler.Export)
			admin.POST("/records", adminHandler.Create)
			admin.PUT("/records/:id", adminHandler.Update)
			admin.DELETE("/records", adminHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
