package main

import (
	"log"
	"os"

	"geosolar-backoffice/internal/cache"
	"geosolar-backoffice/internal/config"
	"geosolar-backoffice/internal/database"
	"geosolar-backoffice/internal/server"
)

func main() {
	cfg := config.Load()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal("Failed to create upload directory:", err)
	}

	database.Connect(cfg)
	cache.Init(cfg.Redis)

	r := server.NewRouter(cfg)

	log.Println("🚀 Server starting on " + cfg.BaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
