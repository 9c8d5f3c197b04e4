package main

import (
	"log"

	"github.com/parcelam/rag-gateway/internal/builder"
)

func main() {
	app, err := builder.BuildSearch()
	if err != nil {
		log.Fatal("Failed to build application:", err)
	}

	if err := app.Run(); err != nil {
		log.Fatal("Application error:", err)
	}
}
