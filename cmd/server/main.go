package main

import (
	"log"

	httpapi "grand-banquet/internal/api/http"
	"grand-banquet/internal/api/ws"
	"grand-banquet/internal/config"
	"grand-banquet/internal/registry"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment defaults")
	}
	cfg := config.Load()
	reg := registry.New(cfg)
	hub := ws.NewHub(reg)
	r := httpapi.NewRouter(reg, hub, cfg)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
