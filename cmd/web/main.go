package main

import (
	"log"

	"placement_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment and config file")
	}

	app.Run()
}
