// Package record serves the record endpoints of the development server.
package record

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "medtracker/internal/app/server/api/http/middleware/auth"
	"medtracker/internal/app/server/storage"
	"medtracker/internal/domain/meditation"
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
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	catalog := h.store.Meditations(ctx)
	if _, err := meditation.Find(catalog, input.Body.MeditationID); err != nil {
		return nil, huma.Error400BadRequest("unknown meditation " + input.Body.MeditationID)
	}

	id, err := h.store.CreateRecord(ctx, userID, input.Body.MeditationID, input.Body.Value)
	if err != nil {
		return nil, huma.Error500InternalServerError("store record")
	}
	return &createOutput{Body: createBody{Data: createdRecord{ID: id}}}, nil
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}
	return &listOutput{Body: recordListBody{Data: h.store.Records(ctx, userID)}}, nil
}
