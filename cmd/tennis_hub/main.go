package main

import (
	"fmt"
	"log"

	"github.com/stpnv0/TennisHub/internal/app"
	"github.com/stpnv0/TennisHub/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("tennis hub: %v", err)
	}
}

func run() error {
	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = application.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	return nil
}
