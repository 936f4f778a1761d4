package main

import (
	"log"

	"github.com/MrSnakeDoc/mafl/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ mafl failed to start: %v", err)
	}
}
