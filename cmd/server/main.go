// The development server. It backs the client with an in-memory store and a
// seeded demo account; it is not a production backend.
package main

import (
	"net/http"
	"os"

	"medtracker/internal/app/server/api"
	"medtracker/internal/app/server/config"
	"medtracker/internal/app/server/storage"
	"medtracker/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	store := storage.NewMemory(log)
	demo := store.SeedUser(cfg.DemoEmail, cfg.DemoPass, "Demo User")
	log.Info("demo user seeded", "email", demo.Email, "user_id", demo.ID)

	mux := api.New(store, log)

	log.Info("server listening", "address", cfg.RunAddress)
	if err := http.ListenAndServe(cfg.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
