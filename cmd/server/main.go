package main

import (
	"log"

	"github.com/Gabrielduah055/menHealthBackend/internal/app"
	"github.com/Gabrielduah055/menHealthBackend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if err := app.New(cfg).Run(); err != nil {
		log.Fatal(err)
	}
}
