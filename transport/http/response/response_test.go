package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"failure keeps its message", failure.NotFound("room not found"), http.StatusNotFound, "room not found"},
		{"wrapped failure", fmt.Errorf("failed to check in: %w", failure.Conflict("room is occupied")), http.StatusConflict, "room is occupied"},
		{"plain error is hidden", errors.New("pq: relation rooms does not exist"), http.StatusInternalServerError, constant.ResponseErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
			assert.Equal(t, tt.wantMsg, decode(t, rec)["error"])
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "r-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, map[string]any{"id": "r-1"}, decode(t, rec)["data"])
}

func TestWithBody(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithBody(rec, http.StatusOK, map[string]int{"open_orders": 2})

	assert.Equal(t, float64(2), decode(t, rec)["open_orders"])
}

func TestWithStateLoading(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithStateLoading(rec)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, constant.ResponseErrorStateLoading, decode(t, rec)["message"])
}

func TestCannedResponsesAreNotCached(t *testing.T) {
	for _, write := range []func(http.ResponseWriter){
		response.WithRequestLimitExceeded,
		response.WithPreparingShutdown,
		response.WithUnhealthy,
	} {
		rec := httptest.NewRecorder()
		write(rec)

		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	}
}

func TestWithJSON_Unencodable(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusOK, make(chan int))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
