package main

import (
	"log"

	"github.com/telemark-pro/pov-backend-go/internal/api"
	"github.com/telemark-pro/pov-backend-go/internal/config"
	"github.com/telemark-pro/pov-backend-go/internal/database"
	"github.com/telemark-pro/pov-backend-go/internal/handler"
	"github.com/telemark-pro/pov-backend-go/internal/pistes"
	"github.com/telemark-pro/pov-backend-go/internal/repository"
	"github.com/telemark-pro/pov-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	secrets, err := config.LoadSecrets(cfg.SecretsPath)
	if err != nil {
		log.Fatal("Failed to load secrets:", err)
	}

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	pisteRepo := repository.NewPisteRepository(database.GetDB())
	overpass := pistes.NewClient(cfg.OverpassURL)

	pisteService := service.NewPisteService(pisteRepo, overpass)
	povService := service.NewPOVService(pisteService, secrets.TokenSource())

	pisteHandler := handler.NewPisteHandler(pisteService)
	povHandler := handler.NewPOVHandler(povService)

	router := api.SetupRouter(cfg, pisteHandler, povHandler)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
