package main

import (
	"log"

	"github.com/roybobrovich/meal-prep-app/config"
	"github.com/roybobrovich/meal-prep-app/logger"
	"github.com/roybobrovich/meal-prep-app/routes"
	"github.com/roybobrovich/meal-prep-app/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger.Init(cfg.Log)

	config.InitDB(cfg.DB)
	services.InitCache(cfg.RedisAddr)

	logger.Info("starting meal prep backend",
		"port", cfg.Port,
		"usda_api_url", cfg.USDAAPIURL,
	)

	r := routes.SetupRouter()
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
