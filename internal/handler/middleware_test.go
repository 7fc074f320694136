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

	"github.com/finadvisor/backend/internal/config"
	"github.com/finadvisor/backend/internal/model"
	"github.com/finadvisor/backend/internal/repository"
	"github.com/finadvisor/backend/internal/service"
)

// MockUserLookup implements UserLookupInterface for testing
type MockUserLookup struct {
	mock.Mock
}

func (m *MockUserLookup) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func demoCfg() *config.Config {
	return &config.Config{Env: "development", DemoMode: true}
}

func prodCfg() *config.Config {
	return &config.Config{Env: "production", DemoMode: false}
}

func TestAuthMiddleware_RejectsBadHeaders(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing authorization header", authHeader: ""},
		{name: "no bearer prefix", authHeader: "invalid-token"},
		{name: "wrong prefix", authHeader: "Basic abc123"},
		{name: "invalid token", authHeader: "Bearer invalid-jwt-token"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			mw := NewAuthMiddleware(new(MockUserLookup), demoCfg())
			req := httptest.NewRequest(http.MethodGet, "/api/incomes", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			mw(next).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, nextCalled)
			assert.Contains(t, w.Body.String(), "Not authorized")
		})
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := service.GenerateTokenForTest(userID)
	require.NoError(t, err)

	users := new(MockUserLookup)
	users.On("GetByID", mock.Anything, userID).Return(&model.User{
		ID:       userID,
		Email:    "jane@example.com",
		FullName: "Jane",
	}, nil)

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		assert.Equal(t, userID, GetUserID(r.Context()))
		user := GetAuthUser(r.Context())
		require.NotNil(t, user)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.False(t, user.IsMock)
		w.WriteHeader(http.StatusOK)
	})

	mw := NewAuthMiddleware(users, demoCfg())
	req := httptest.NewRequest(http.MethodGet, "/api/incomes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	mw(next).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, nextCalled)
}

func TestAuthMiddleware_UserGone(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := service.GenerateTokenForTest(userID)
	require.NoError(t, err)

	users := new(MockUserLookup)
	users.On("GetByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	mw := NewAuthMiddleware(users, demoCfg())
	req := httptest.NewRequest(http.MethodGet, "/api/incomes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next should not be called")
	})).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestAuthMiddleware_MockIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := service.GenerateTokenForTest(service.MockUserID)
	require.NoError(t, err)

	tests := []struct {
		name     string
		cfg      *config.Config
		wantCode int
	}{
		{name: "demo mode attaches mock identity without store", cfg: demoCfg(), wantCode: http.StatusOK},
		{name: "production rejects the mock identity", cfg: prodCfg(), wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserLookup)
			// production path consults the store; the mock id has no row
			users.On("GetByID", mock.Anything, service.MockUserID).
				Return(nil, repository.ErrUserNotFound).Maybe()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user := GetAuthUser(r.Context())
				require.NotNil(t, user)
				assert.True(t, user.IsMock)
				w.WriteHeader(http.StatusOK)
			})

			mw := NewAuthMiddleware(users, tt.cfg)
			req := httptest.NewRequest(http.MethodGet, "/api/incomes", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			mw(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestAuthMiddleware_DegradedFallback(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := service.GenerateTokenForTest(userID)
	require.NoError(t, err)

	tests := []struct {
		name     string
		cfg      *config.Config
		wantCode int
		wantMock bool
	}{
		{name: "demo mode degrades to token identity", cfg: demoCfg(), wantCode: http.StatusOK, wantMock: true},
		{name: "production fails closed", cfg: prodCfg(), wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserLookup)
			users.On("GetByID", mock.Anything, userID).
				Return(nil, errors.New("connection refused"))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user := GetAuthUser(r.Context())
				require.NotNil(t, user)
				assert.Equal(t, tt.wantMock, user.IsMock)
				assert.Equal(t, userID, user.ID)
				w.WriteHeader(http.StatusOK)
			})

			mw := NewAuthMiddleware(users, tt.cfg)
			req := httptest.NewRequest(http.MethodGet, "/api/incomes", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			mw(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uuid.Nil, GetUserID(context.Background()))
	assert.Nil(t, GetAuthUser(context.Background()))
}
