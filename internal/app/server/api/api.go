// Package api wires the development server's HTTP surface.
//
// The surface mirrors what the client consumes:
//
//	POST /auth/login     exchange credentials for tokens (public)
//	POST /auth/refresh   rotate the token pair (public)
//	POST /auth/logout    revoke the session (auth)
//	GET  /auth/profile   current user (auth)
//	GET  /meditations    practice catalog (public)
//	POST /records        store a record (auth)
//	GET  /records        list the user's records (auth)
//	GET  /health         liveness (public)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	authAPI "medtracker/internal/app/server/api/http/auth"
	healthAPI "medtracker/internal/app/server/api/http/health"
	meditationAPI "medtracker/internal/app/server/api/http/meditation"
	"medtracker/internal/app/server/api/http/middleware"
	authMW "medtracker/internal/app/server/api/http/middleware/auth"
	loggerMW "medtracker/internal/app/server/api/http/middleware/logger"
	recordAPI "medtracker/internal/app/server/api/http/record"
	"medtracker/internal/app/server/storage"
)

type Handlers struct {
	Health     *healthAPI.Handler
	Auth       *authAPI.Handler
	Meditation *meditationAPI.Handler
	Record     *recordAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(store *storage.Memory, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Medtracker API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(store, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Meditation.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	return mux
}

func handlers(store *storage.Memory, log *slog.Logger) *Handlers {
	authMiddleware := authMW.New(store, log)
	logMiddleware := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logMiddleware.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(logMiddleware.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(authMiddleware.Middleware())
	middlewares.Add(logMiddleware.Middleware())
	authHandler := authAPI.NewHandler(store, log, public, middlewares.GetAllAndClear())

	middlewares.Add(logMiddleware.Middleware())
	meditationHandler := meditationAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	middlewares.Add(authMiddleware.Middleware())
	middlewares.Add(logMiddleware.Middleware())
	recordHandler := recordAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		Auth:       authHandler,
		Meditation: meditationHandler,
		Record:     recordHandler,
	}
}
