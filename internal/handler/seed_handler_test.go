package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/finadvisor/backend/internal/model"
)

// MockSeeder implements SeederInterface for testing
type MockSeeder struct {
	mock.Mock
}

func (m *MockSeeder) SeedDemoUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func TestSeedHandler_SeedUsers(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := new(MockSeeder)
		svc.On("SeedDemoUsers", mock.Anything).Return([]model.User{
			{ID: uuid.New(), Email: "user@example.com", FullName: "Test User"},
			{ID: uuid.New(), Email: "admin@example.com", FullName: "Admin User"},
		}, nil)
		h := NewSeedHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/seed/users", nil)
		w := httptest.NewRecorder()

		h.SeedUsers(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		out := decodeResponse(t, w.Body)
		assert.Equal(t, true, out["success"])
		creds := out["credentials"].([]interface{})
		require.Len(t, creds, 2)
		first := creds[0].(map[string]interface{})
		assert.Equal(t, "user@example.com", first["email"])
		assert.Equal(t, "password123", first["password"])
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc := new(MockSeeder)
		svc.On("SeedDemoUsers", mock.Anything).Return(nil, errors.New("db error"))
		h := NewSeedHandler(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/seed/users", nil)
		w := httptest.NewRecorder()

		h.SeedUsers(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		out := decodeResponse(t, w.Body)
		assert.Equal(t, "Server error", out["message"])
	})
}
