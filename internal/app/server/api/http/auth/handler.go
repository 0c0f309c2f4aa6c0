// Package auth serves the session endpoints of the development server.
package auth

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	authMW "medtracker/internal/app/server/api/http/middleware/auth"
	"medtracker/internal/app/server/storage"
)

type Handler struct {
	store      *storage.Memory
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

func NewHandler(store *storage.Memory, log *slog.Logger, middleware, protected huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: middleware,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.refreshOp(), h.refresh)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.profileOp(), h.profile)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*tokensOutput, error) {
	tokens, err := h.store.Login(ctx, input.Body)
	if err != nil {
		h.log.Debug("login rejected", "email", input.Body.Email)
		return nil, huma.Error401Unauthorized("invalid credentials")
	}
	return &tokensOutput{Body: tokensBody{Data: tokens}}, nil
}

func (h *Handler) refresh(ctx context.Context, input *refreshInput) (*tokensOutput, error) {
	tokens, err := h.store.Refresh(ctx, input.Body.RefreshToken)
	if err != nil {
		return nil, huma.Error401Unauthorized("invalid refresh token")
	}
	return &tokensOutput{Body: tokensBody{Data: tokens}}, nil
}

func (h *Handler) logout(ctx context.Context, _ *logoutInput) (*logoutOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}
	h.store.Revoke(ctx, userID)
	return &logoutOutput{Body: statusBody{Data: "ok"}}, nil
}

func (h *Handler) profile(ctx context.Context, _ *profileInput) (*profileOutput, error) {
	userID, ok := authMW.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	u, err := h.store.UserByID(ctx, userID)
	if err != nil {
		return nil, huma.Error401Unauthorized("unknown user")
	}
	return &profileOutput{Body: profileBody{Data: u}}, nil
}
