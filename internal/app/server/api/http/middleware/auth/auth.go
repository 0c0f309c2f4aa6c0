// Package auth is the bearer token middleware of the development server.
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Validator resolves an access token to a user id.
type Validator interface {
	Validate(ctx context.Context, accessToken string) (string, error)
}

type Auth struct {
	validator Validator
	log       *slog.Logger
}

func New(validator Validator, log *slog.Logger) *Auth {
	return &Auth{
		validator: validator,
		log:       log.With("component", "auth_middleware"),
	}
}

type contextKey string

const UserIDKey contextKey = "userID"

func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.reject(ctx)
			return
		}

		userID, err := a.validator.Validate(ctx.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.log.Debug("token rejected", "error", err)
			a.reject(ctx)
			return
		}

		next(huma.WithContext(ctx, context.WithValue(ctx.Context(), UserIDKey, userID)))
	}
}

func (a *Auth) reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

// GetUserID extracts the authenticated user id placed by the middleware.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
