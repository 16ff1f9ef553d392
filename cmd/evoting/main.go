package main

import (
	"log"

	"github.com/akhhatar/e-voting-project/internal/app"
	"github.com/akhhatar/e-voting-project/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
