package functions

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) service.EntityMutator {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	mutator, err := NewClient(&config.Config{
		Functions: config.FunctionsConfig{BaseURL: server.URL + "/functions/v1"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return mutator
}

func TestClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.Error(t, err)
}

func TestClient_CreateOperator_Success(t *testing.T) {
	created := &entity.Operator{ID: uuid.New(), FirstName: "Ana", LastName: "Gomes"}

	mutator := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/functions/v1/create-operator", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload service.CreateOperatorPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "ana@example.com", payload.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message":  "Operator created successfully",
			"operator": created,
		})
	})

	operator, err := mutator.CreateOperator(context.Background(), "admin-token", &service.CreateOperatorPayload{
		Email:          "ana@example.com",
		Password:       "secret",
		OperatorFields: service.OperatorFields{FirstName: "Ana", LastName: "Gomes"},
	})

	require.NoError(t, err)
	assert.Equal(t, created.ID, operator.ID)
	assert.Equal(t, "Ana", operator.FirstName)
}

func TestClient_CreateOperator_ConflictMapsToIdentityConflict(t *testing.T) {
	mutator := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error": "email is already registered"}`))
	})

	_, err := mutator.CreateOperator(context.Background(), "admin-token", &service.CreateOperatorPayload{
		Email:    "dup@example.com",
		Password: "secret",
	})

	require.ErrorIs(t, err, domainerrors.ErrIdentityConflict)
	// The function's own message travels through unchanged.
	assert.Contains(t, err.Error(), "email is already registered")
}

func TestClient_DeleteStore_NotFound(t *testing.T) {
	mutator := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "store not found"}`))
	})

	err := mutator.DeleteStore(context.Background(), "admin-token", uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClient_ForbiddenResponse(t *testing.T) {
	mutator := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "Permission denied: require 'admin' role"}`))
	})

	err := mutator.DeleteOperator(context.Background(), "operator-token", uuid.New())

	require.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestClient_NonEnvelopeErrorBody(t *testing.T) {
	mutator := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	})

	err := mutator.DeleteOperator(context.Background(), "admin-token", uuid.New())

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "upstream exploded", appErr.Message())
}

func TestClient_UnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	mutator, err := NewClient(&config.Config{
		Functions: config.FunctionsConfig{BaseURL: server.URL + "/functions/v1"},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	_, err = mutator.CreateStore(context.Background(), "admin-token", &service.CreateStorePayload{})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
}
