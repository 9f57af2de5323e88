package main

import (
	"github.com/yigit/riskwatch/internal/pkg/logger"
	"github.com/yigit/riskwatch/internal/server"
)

// @title RiskWatch API
// @version 1.0
// @description Student dropout risk tracking for academic advisors

// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Error details are logged within the setup functions
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	// Blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server execution failed or shutdown encountered errors")
	}

	logger.Info().Msg("Application finished gracefully.")
}
