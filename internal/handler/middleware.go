package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/finadvisor/backend/internal/config"
	"github.com/finadvisor/backend/internal/logger"
	"github.com/finadvisor/backend/internal/model"
	"github.com/finadvisor/backend/internal/repository"
	"github.com/finadvisor/backend/internal/service"
)

type contextKey string

const (
	// UserIDKey carries the authenticated user's ID in the request context.
	UserIDKey contextKey = "user_id"
	// AuthUserKey carries the resolved AuthUser in the request context.
	AuthUserKey contextKey = "auth_user"
)

// AuthUser is the identity a request runs as. IsMock marks sessions backed by
// the demo identity rather than a stored user.
type AuthUser struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	IsMock   bool      `json:"isMock,omitempty"`
}

// UserLookupInterface is the subset of the user store the middleware needs.
type UserLookupInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// GetUserID extracts the user ID from the request context.
// Returns uuid.Nil when no user is attached.
func GetUserID(ctx context.Context) uuid.UUID {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// GetAuthUser extracts the resolved identity from the request context.
func GetAuthUser(ctx context.Context) *AuthUser {
	user, ok := ctx.Value(AuthUserKey).(*AuthUser)
	if !ok {
		return nil
	}
	return user
}

// NewAuthMiddleware returns middleware that authenticates requests with a
// bearer token. The token's subject is resolved against the user store; in
// demo mode the well-known mock identity skips the store entirely, and a
// store outage degrades to an identity rebuilt from the token claims so demo
// sessions survive a database failure.
func NewAuthMiddleware(users UserLookupInterface, cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")
				return
			}

			claims, err := service.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				return
			}

			authUser, err := resolveUser(r.Context(), users, cfg, claims)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					respondMessage(w, http.StatusUnauthorized, "User not found")
				} else {
					respondMessage(w, http.StatusUnauthorized, "Not authorized, token failed")
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, authUser.ID)
			ctx = context.WithValue(ctx, AuthUserKey, authUser)
			ctx = logger.WithUserID(ctx, authUser.ID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveUser(ctx context.Context, users UserLookupInterface, cfg *config.Config, claims *service.TokenClaims) (*AuthUser, error) {
	if cfg.DemoMode && claims.UserID == service.MockUserID {
		return &AuthUser{
			ID:       claims.UserID,
			Email:    claims.Email,
			FullName: claims.FullName,
			IsMock:   true,
		}, nil
	}

	user, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		// Store unreachable. In demo mode, fall back to the identity carried
		// in the token so the session keeps working.
		if cfg.DemoMode && claims.Email != "" {
			logger.FromContext(ctx).Warn("user store unreachable, using degraded identity", "error", err)
			return &AuthUser{
				ID:       claims.UserID,
				Email:    claims.Email,
				FullName: claims.FullName,
				IsMock:   true,
			}, nil
		}
		return nil, err
	}

	return &AuthUser{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}, nil
}
