//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Message
}

func TestAbortWithUsecaseError(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"unauthorized", errs.Mark(cause, errs.ErrUnauthorized), http.StatusForbidden, "Not allowed for this business"},
		{"invalid range", errs.Mark(cause, errs.ErrInvalidRange), http.StatusBadRequest, "Invalid date range"},
		{"invalid window", errs.Mark(cause, errs.ErrInvalidWindow), http.StatusBadRequest, "Invalid time window"},
		{"invalid input", errs.Mark(cause, errs.ErrInvalidInput), http.StatusBadRequest, "Invalid request"},
		{"not found", errs.Mark(cause, errs.ErrNotFound), http.StatusNotFound, "Not found"},
		{"conflict", errs.Mark(cause, errs.ErrConflict), http.StatusConflict, "slot no longer available, choose another"},
		{"invalid transition", errs.Mark(cause, errs.ErrInvalidTransition), http.StatusConflict, "Invalid status transition"},
		{"duplicate block", errs.Mark(cause, errs.ErrDuplicateBlock), http.StatusConflict, "Availability block already exists"},
		{"idempotency in progress", errs.Mark(cause, errs.ErrIdempotencyInProgress), http.StatusConflict, "Request is currently being processed"},
		{"duplicate request", errs.Mark(cause, errs.ErrDuplicateRequest), http.StatusConflict, "Idempotency key reused with different parameters"},
		{"idempotency check failed", errs.Mark(cause, errs.ErrIdempotencyCheckFailed), http.StatusInternalServerError, "Internal server error"},
		{"database failure", errs.Mark(cause, errs.ErrDatabaseOperationFailed), http.StatusInternalServerError, "Internal server error"},
		{"unmarked", cause, http.StatusInternalServerError, "Internal server error"},
		{"wrapped sentinel", errs.Wrap(errs.Mark(cause, errs.ErrConflict), "creating booking"), http.StatusConflict, "slot no longer available, choose another"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			httperr.AbortWithUsecaseError(c, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeMessage(t, rec))
			assert.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)
			assert.True(t, c.Errors[0].IsType(gin.ErrorTypePublic))
			assert.ErrorIs(t, c.Errors[0].Err, cause)
		})
	}
}

func TestAbortWithError(t *testing.T) {
	t.Run("nil error falls back to the message", func(t *testing.T) {
		c, rec := newContext()

		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Len(t, c.Errors, 1)
		assert.EqualError(t, c.Errors[0].Err, "Access token required")
		meta, ok := c.Errors[0].Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, meta.Status)
	})

	t.Run("detail is rendered when present", func(t *testing.T) {
		c, rec := newContext()

		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("bad"), "Invalid request format", gin.H{"field": "date"})

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, map[string]any{"field": "date"}, body["detail"])
		assert.NotContains(t, body, "Status")
	})
}
