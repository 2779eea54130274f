// Package main starts the marketplace admin API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"motoradmin/internal/config"
	"motoradmin/internal/handlers"
	"motoradmin/internal/logger"
	"motoradmin/internal/repositories"
	"motoradmin/internal/repositories/cache"
	"motoradmin/internal/routes"
	"motoradmin/internal/services/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	log := logger.Init(cfg.Env, cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	db, err := repositories.OpenDB(repositories.DBConfig{
		DSN:             cfg.DatabaseURL,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		ConnMaxIdleTime: cfg.DBConnIdleTime,
	}, log)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	log.Info("connected to database")
	defer func() {
		if err := repositories.CloseDB(db); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	redisClient := cache.NewRedisClient(&cache.RedisConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	cacheService := cache.NewCacheService(redisClient)
	if err := cacheService.HealthCheck(context.Background()); err != nil {
		log.Fatal("redis unavailable", zap.Error(err))
	}
	log.Info("connected to redis")
	defer func() {
		if err := cacheService.Close(); err != nil {
			log.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	creds, err := auth.NewCredentials(cfg.AdminEmail, cfg.AdminPassword, bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to prepare admin credentials", zap.Error(err))
	}

	gateway := repositories.NewGateway(db)

	app := fiber.New(fiber.Config{
		AppName:               "motoradmin",
		DisableStartupMessage: cfg.IsProduction(),
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Gateway:        gateway,
		Snapshots:      cache.NewSnapshotStore(cacheService, cfg.SnapshotTTL),
		Sessions:       cache.NewSessionStore(cacheService, cfg.SessionTTL),
		Credentials:    creds,
		JWTSecret:      cfg.JWTSecret,
		SessionTTL:     cfg.SessionTTL,
		LoginRateLimit: cfg.LoginRateLimit,
		HealthChecks: map[string]handlers.Pinger{
			"database": gateway.Ping,
			"redis":    cacheService.HealthCheck,
		},
		Log: log,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
		}
	}()
	log.Info("admin api listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
