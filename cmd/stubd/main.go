package main

import (
	"go.uber.org/zap"

	"github.com/rentora/backoffice/config"
	"github.com/rentora/backoffice/database"
	"github.com/rentora/backoffice/internal/stub"
	"github.com/rentora/backoffice/jwtutil"
	"github.com/rentora/backoffice/logger"
	"github.com/rentora/backoffice/metrics"
)

func main() {
	// Load configuration from .env file and environment variables
	cfg, err := config.Load("backoffice-stub")
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger with config
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.Server.Env,
		ServiceName: cfg.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	log.Info("Starting back-office stub...", cfg.LogConfig()...)

	// Initialize JWT utilities
	jwtUtil := jwtutil.NewJWTUtil(&jwtutil.JWTConfig{
		SigningKey:      cfg.JWT.SigningKey,
		ExpirationHours: cfg.JWT.ExpirationHours,
	})
	log.Info("JWT utilities initialized")

	// Initialize HTTP metrics
	httpMetrics := metrics.NewHTTPMetrics(cfg.ServiceName)
	log.Info("HTTP metrics initialized")

	// Initialize database and run migrations
	db, err := database.InitDB(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(stub.Models()...); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database connection established and migrations completed",
		zap.String("db_driver", cfg.DB.Driver),
		zap.String("db_name", cfg.DB.DBName),
	)

	e := stub.New(db, jwtUtil, httpMetrics)

	port := cfg.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
