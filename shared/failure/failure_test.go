package failure_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"bad request", failure.BadRequest(errors.New("bad")), http.StatusBadRequest, "bad"},
		{"bad request from string", failure.BadRequestFromString("missing"), http.StatusBadRequest, "missing"},
		{"unauthorized", failure.Unauthorized("token"), http.StatusUnauthorized, "token"},
		{"internal", failure.InternalError(errors.New("boom")), http.StatusInternalServerError, "boom"},
		{"custom", failure.New(http.StatusTeapot, "brew"), http.StatusTeapot, "brew"},
		{"not found", failure.NotFound("room not found"), http.StatusNotFound, "room not found"},
		{"conflict", failure.Conflict("room already exists"), http.StatusConflict, "room already exists"},
		{"forbidden", failure.Forbidden("nope"), http.StatusForbidden, "nope"},
		{"bad gateway", failure.BadGateway("ai unavailable"), http.StatusBadGateway, "ai unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.EqualError(t, tt.err, tt.msg)
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to update room: %w", failure.NotFound("room not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusForbidden, failure.GetCode(failure.ForbiddenError))
	assert.Equal(t, http.StatusGatewayTimeout, failure.GetCode(fmt.Errorf("quote: %w", context.DeadlineExceeded)))
}

func TestIs(t *testing.T) {
	copied := *failure.ForbiddenError

	assert.ErrorIs(t, fmt.Errorf("rbac: %w", &copied), failure.ForbiddenError)
	assert.NotErrorIs(t, failure.Forbidden("other"), failure.ForbiddenError)
	assert.NotErrorIs(t, errors.New("plain"), failure.ForbiddenError)
}
