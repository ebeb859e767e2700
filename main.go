package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devnaspi/ThelittlelemonApi/configs"
	"github.com/devnaspi/ThelittlelemonApi/middlewares"
	"github.com/devnaspi/ThelittlelemonApi/routes"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	if err := configs.SeedManager(); err != nil {
		logger.Fatal().Err(err).Msg("seed manager failed")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middlewares.RequestLogger(logger))

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
