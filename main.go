// @title Literacy DAPAT API
// @version 1.0
// @description Backend server for the literacy assessment platform.

// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"literacy_dapat_backend/internal/app"
	"literacy_dapat_backend/internal/config"
	"literacy_dapat_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
