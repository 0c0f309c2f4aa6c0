package record

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	authMW "medtracker/internal/app/server/api/http/middleware/auth"
	"medtracker/internal/app/server/storage"
)

func newTestHandler(t *testing.T) (*Handler, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory(slog.Default())
	return NewHandler(store, slog.Default(), huma.Middlewares{}), store
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), authMW.UserIDKey, userID)
}

func TestHandler_create(t *testing.T) {
	handler, store := newTestHandler(t)

	output, err := handler.create(authedCtx("u1"), &createInput{
		Body: createRequest{MeditationID: "mandala", Value: 21},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Body.Data.ID)

	records := store.Records(context.Background(), "u1")
	require.Len(t, records, 1)
	assert.Equal(t, "mandala", records[0].MeditationID)
	assert.Equal(t, 21, records[0].Value)
}

func TestHandler_createUnknownMeditation(t *testing.T) {
	handler, _ := newTestHandler(t)

	_, err := handler.create(authedCtx("u1"), &createInput{
		Body: createRequest{MeditationID: "levitation", Value: 21},
	})

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.GetStatus())
}

func TestHandler_createWithoutUser(t *testing.T) {
	handler, _ := newTestHandler(t)

	_, err := handler.create(context.Background(), &createInput{
		Body: createRequest{MeditationID: "mandala", Value: 21},
	})

	require.Error(t, err)
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.GetStatus())
}

func TestHandler_list(t *testing.T) {
	handler, store := newTestHandler(t)
	ctx := context.Background()

	_, err := store.CreateRecord(ctx, "u1", "mandala", 1)
	require.NoError(t, err)
	_, err = store.CreateRecord(ctx, "u2", "mandala", 2)
	require.NoError(t, err)

	output, err := handler.list(authedCtx("u1"), &listInput{})

	require.NoError(t, err)
	require.Len(t, output.Body.Data, 1)
	assert.Equal(t, "u1", output.Body.Data[0].UserID)
}
