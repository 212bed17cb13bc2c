package appstate_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"frontdesk/internal/domains/appstate"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"

	"github.com/stretchr/testify/assert"
)

func TestAsFailure(t *testing.T) {
	plain := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing in memory",
			err:      appstate.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "room not found",
		},
		{
			name:     "duplicate in memory",
			err:      appstate.ErrDuplicate,
			wantCode: http.StatusConflict,
			wantMsg:  "room already exists",
		},
		{
			name:     "unique violation from the store",
			err:      fmt.Errorf("failed to insert data (room): %w", gRepo.ErrDuplicate),
			wantCode: http.StatusConflict,
			wantMsg:  "room already exists",
		},
		{
			name:     "missing from the store",
			err:      fmt.Errorf("failed to update data (room): %w", gRepo.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "room not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := appstate.AsFailure(tt.err, "room", "101")

			var fail *failure.Failure
			if assert.ErrorAs(t, err, &fail) {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, tt.wantMsg, fail.Message)
			}
		})
	}

	assert.NoError(t, appstate.AsFailure(nil, "room", "101"))
	assert.Equal(t, plain, appstate.AsFailure(plain, "room", "101"))
}
