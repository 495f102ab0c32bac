package main

import (
	"log"

	"github.com/joho/godotenv"

	"deskflow/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load .env (optional) and process config.
// 2) Build app wiring (ports + adapters + webhook notifier).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("deskflow api bootstrap failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("deskflow api shutdown: %v", err)
		}
	}()

	log.Println("deskflow api starting")
	if err := app.Run(); err != nil {
		log.Fatalf("deskflow api stopped: %v", err)
	}
}
