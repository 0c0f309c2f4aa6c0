package auth

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	authMW "medtracker/internal/app/server/api/http/middleware/auth"
	"medtracker/internal/app/server/storage"
	"medtracker/internal/domain/user"
)

func newTestHandler(t *testing.T) (*Handler, *storage.Memory, user.User) {
	t.Helper()
	store := storage.NewMemory(slog.Default())
	demo := store.SeedUser("demo@example.com", "demo1234", "Demo")
	handler := NewHandler(store, slog.Default(), huma.Middlewares{}, huma.Middlewares{})
	return handler, store, demo
}

func TestHandler_login(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	output, err := handler.login(context.Background(), &loginInput{
		Body: user.Credentials{Email: "demo@example.com", Password: "demo1234"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Body.Data.AccessToken)
	assert.NotEmpty(t, output.Body.Data.RefreshToken)
}

func TestHandler_loginBadPassword(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	_, err := handler.login(context.Background(), &loginInput{
		Body: user.Credentials{Email: "demo@example.com", Password: "wrong"},
	})

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}

func TestHandler_refresh(t *testing.T) {
	handler, _, _ := newTestHandler(t)
	ctx := context.Background()

	loginOut, err := handler.login(ctx, &loginInput{
		Body: user.Credentials{Email: "demo@example.com", Password: "demo1234"},
	})
	require.NoError(t, err)

	refreshOut, err := handler.refresh(ctx, &refreshInput{
		Body: refreshRequest{RefreshToken: loginOut.Body.Data.RefreshToken},
	})

	require.NoError(t, err)
	assert.NotEqual(t, loginOut.Body.Data.AccessToken, refreshOut.Body.Data.AccessToken)
}

func TestHandler_refreshInvalidToken(t *testing.T) {
	handler, _, _ := newTestHandler(t)

	_, err := handler.refresh(context.Background(), &refreshInput{
		Body: refreshRequest{RefreshToken: "bogus"},
	})

	require.Error(t, err)
}

func TestHandler_profile(t *testing.T) {
	handler, _, demo := newTestHandler(t)

	ctx := context.WithValue(context.Background(), authMW.UserIDKey, demo.ID)
	output, err := handler.profile(ctx, &profileInput{})

	require.NoError(t, err)
	assert.Equal(t, demo.Email, output.Body.Data.Email)
	assert.Equal(t, demo.ID, output.Body.Data.ID)
}

func TestHandler_logoutRevokesSession(t *testing.T) {
	handler, store, demo := newTestHandler(t)
	ctx := context.Background()

	loginOut, err := handler.login(ctx, &loginInput{
		Body: user.Credentials{Email: "demo@example.com", Password: "demo1234"},
	})
	require.NoError(t, err)

	authedCtx := context.WithValue(ctx, authMW.UserIDKey, demo.ID)
	_, err = handler.logout(authedCtx, &logoutInput{})
	require.NoError(t, err)

	_, err = store.Validate(ctx, loginOut.Body.Data.AccessToken)
	assert.ErrorIs(t, err, storage.ErrInvalidToken)
}
