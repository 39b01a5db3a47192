// Package main implements the entry point for the Leitner API server,
// which manages users' flashcards and schedules reviews with the
// Leitner box system.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	err = app.startHTTPServer(context.Background(), router)
	app.cleanup()
	if err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
