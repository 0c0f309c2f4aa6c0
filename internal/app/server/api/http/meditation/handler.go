// Package meditation serves the practice catalog endpoint of the
// development server.
package meditation

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"medtracker/internal/app/server/storage"
)

type Handler struct {
	store      *storage.Memory
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store *storage.Memory, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	return &listOutput{Body: meditationListBody{Data: h.store.Meditations(ctx)}}, nil
}
