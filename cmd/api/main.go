package main

import (
	"context"
	"os"

	"github.com/yigit/courseportfolio/internal/pkg/logger"
	"github.com/yigit/courseportfolio/internal/server"
)

// @title Course Portfolio API
// @version 1.0
// @description Course lookup and maintenance API for the course portfolio service
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		// Setup failures are logged by the default logger from the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
