package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	t.Parallel()

	appErr := &AppError{Message: "something went wrong"}
	assert.Equal(t, "something went wrong", appErr.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	originalErr := errors.New("original error")
	appErr := &AppError{
		Err:     originalErr,
		Message: "wrapped error",
	}

	assert.Equal(t, originalErr, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, originalErr))
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		appErr      *AppError
		wantStatus  int
		wantMessage string
		wantErr     error
	}{
		{
			name:        "not found",
			appErr:      NotFound("Income"),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Income not found",
			wantErr:     ErrNotFound,
		},
		{
			name:        "bad request",
			appErr:      BadRequest("amount must not be negative"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "amount must not be negative",
			wantErr:     ErrBadRequest,
		},
		{
			name:        "unauthorized default message",
			appErr:      Unauthorized(""),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized",
			wantErr:     ErrUnauthorized,
		},
		{
			name:        "unauthorized custom message",
			appErr:      Unauthorized("token expired"),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token expired",
			wantErr:     ErrUnauthorized,
		},
		{
			name:        "forbidden",
			appErr:      Forbidden(""),
			wantStatus:  http.StatusForbidden,
			wantMessage: "forbidden",
			wantErr:     ErrForbidden,
		},
		{
			name:        "conflict",
			appErr:      Conflict("email already in use"),
			wantStatus:  http.StatusConflict,
			wantMessage: "email already in use",
			wantErr:     ErrConflict,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.wantStatus, tt.appErr.StatusCode)
			assert.Equal(t, tt.wantMessage, tt.appErr.Message)
			assert.True(t, errors.Is(tt.appErr, tt.wantErr))
		})
	}
}

func TestInternal(t *testing.T) {
	t.Parallel()

	cause := errors.New("pq: connection refused")
	appErr := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, "Server error", appErr.Message)
	assert.True(t, errors.Is(appErr, cause))
}

func TestGetStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "app error", err: NotFound("Goal"), want: http.StatusNotFound},
		{name: "wrapped app error", err: errors.Join(errors.New("ctx"), BadRequest("nope")), want: http.StatusBadRequest},
		{name: "sentinel not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "sentinel unauthorized", err: ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "invalid credentials map to 401", err: ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "sentinel forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "sentinel conflict", err: ErrConflict, want: http.StatusConflict},
		{name: "unknown error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetStatusCode(tt.err))
		})
	}
}

func TestGetMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Income not found", GetMessage(NotFound("Income")))
	assert.Equal(t, "boom", GetMessage(errors.New("boom")))
}
