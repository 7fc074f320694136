package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finadvisor/backend/internal/apperror"
	"github.com/finadvisor/backend/internal/repository"
	"github.com/finadvisor/backend/internal/service"
)

func TestRespondData(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondData(w, http.StatusOK, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	out := decodeResponse(t, w.Body)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "value", out["data"].(map[string]interface{})["key"])
}

func TestRespondFailure(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondFailure(w, http.StatusNotFound, "Income not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	out := decodeResponse(t, w.Body)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Income not found", out["message"])
}

func TestRespondMessageOmitsEnvelope(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondMessage(w, http.StatusUnauthorized, "Not authorized, no token")

	out := decodeResponse(t, w.Body)
	assert.Equal(t, "Not authorized, no token", out["message"])
	assert.NotContains(t, out, "success")
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		kind        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "generic record miss",
			err:         repository.ErrRecordNotFound,
			kind:        "Expense",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Expense not found",
		},
		{
			name:        "goal miss",
			err:         repository.ErrGoalNotFound,
			kind:        "Goal",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Goal not found",
		},
		{
			name:        "foreign record",
			err:         service.ErrNotOwned,
			kind:        "Asset",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Not authorized",
		},
		{
			name:        "validation failure keeps its message",
			err:         apperror.BadRequest("amount must not be negative"),
			kind:        "Income",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "amount must not be negative",
		},
		{
			name:        "unknown errors never leak details",
			err:         errors.New("pq: connection reset by peer"),
			kind:        "Income",
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Server error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/test", nil)

			handleError(w, r, tt.err, tt.kind)

			assert.Equal(t, tt.wantStatus, w.Code)
			out := decodeResponse(t, w.Body)
			assert.Equal(t, false, out["success"])
			assert.Equal(t, tt.wantMessage, out["message"])
		})
	}
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	HealthCheck(w, httptest.NewRequest(http.MethodGet, "/api/health-check", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	out := decodeResponse(t, w.Body)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "API is running", out["message"])
	assert.NotEmpty(t, out["timestamp"])
}
