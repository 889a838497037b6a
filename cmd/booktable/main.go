package main

import (
	"log"

	"github.com/Praful-John2409/BookTable/internal/app"
	"github.com/Praful-John2409/BookTable/internal/config"
)

func main() {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
