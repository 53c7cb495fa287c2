package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/careerbridge/job-portal-api/internal/auth"
	"github.com/careerbridge/job-portal-api/internal/config"
	"github.com/careerbridge/job-portal-api/internal/database"
	"github.com/careerbridge/job-portal-api/internal/handlers"
	"github.com/careerbridge/job-portal-api/internal/storage"
)

func main() {
	// 1. Environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Database
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Database connection established")

	// 3. Upload store
	store, err := storage.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL)
	if err != nil {
		log.Fatal("Failed to initialize upload store: ", err)
	}

	// 4. Router
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	r := handlers.NewRouter(handlers.RouterConfig{
		DB:         db,
		Tokens:     tokens,
		Store:      store,
		BcryptCost: cfg.BcryptCost,
	})
	r.Static(cfg.UploadBaseURL, cfg.UploadDir)

	log.Println("Server starting on port " + cfg.Port + "...")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
