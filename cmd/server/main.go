package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/jengzang/rdtr-backend-go/internal/api"
	"github.com/jengzang/rdtr-backend-go/internal/config"
	"github.com/jengzang/rdtr-backend-go/internal/database"
)

func main() {
	cfg := config.Load()

	// The query store is optional: without it every request is served
	// from the JSON datasets. It only exists once ingestion has run.
	var db *sql.DB
	if cfg.DBPath != "" {
		if _, err := os.Stat(cfg.DBPath); err == nil {
			if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
				log.Fatal("Failed to initialize database:", err)
			}
			defer database.Close()
			db = database.GetDB()
		} else {
			log.Printf("Query store %s not found, serving from JSON datasets", cfg.DBPath)
		}
	}

	router := api.SetupRouter(cfg, db)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
