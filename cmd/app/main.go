package main

import (
	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Front Desk API
// @version 1.0
// @description Hotel front-desk administration: rooms, halls, restaurant, bar, stock, guests and billing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
