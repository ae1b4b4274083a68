package main

import (
	"playcourt/config"
	"playcourt/di"
	"playcourt/shared/logger"
	"playcourt/shared/timezone"

	"github.com/rs/zerolog/log"
)

// @title Playcourt API
// @version 1.0
// @description Court booking service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()

	cfg := config.Get()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid service configuration")
	}

	logger.UseJSONOutput(cfg)
	logger.SetLogLevel(cfg)
	timezone.Init(cfg.App.Timezone)

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
