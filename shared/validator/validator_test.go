package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"frontdesk/shared/failure"
	"frontdesk/shared/validator"

	"github.com/stretchr/testify/assert"
)

type stayRequest struct {
	Guest    string `json:"guest"     validate:"required,max=100"`
	Email    string `json:"email"     validate:"omitempty,email"`
	CheckIn  string `json:"check_in"  validate:"required,isodate"`
	CheckOut string `json:"check_out" validate:"omitempty,isodate"`
	Amount   int    `json:"amount"    validate:"min=0"`
	Status   string `json:"status"    validate:"omitempty,oneof=Available Cleaning"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		req     stayRequest
		wantMsg string
	}{
		{
			name: "valid",
			req:  stayRequest{Guest: "Asha", CheckIn: "2024-01-10", CheckOut: "2024-01-12T11:00:00Z"},
		},
		{
			name:    "missing guest uses json name",
			req:     stayRequest{CheckIn: "2024-01-10"},
			wantMsg: "guest is required",
		},
		{
			name:    "bad date",
			req:     stayRequest{Guest: "Asha", CheckIn: "10/01/2024"},
			wantMsg: "check_in must be an ISO-8601 date",
		},
		{
			name:    "negative amount",
			req:     stayRequest{Guest: "Asha", CheckIn: "2024-01-10", Amount: -1},
			wantMsg: "amount must be greater than or equal to 0",
		},
		{
			name:    "long guest name is a length",
			req:     stayRequest{Guest: strings.Repeat("a", 101), CheckIn: "2024-01-10"},
			wantMsg: "guest must be at most 100 characters",
		},
		{
			name:    "status outside the set",
			req:     stayRequest{Guest: "Asha", CheckIn: "2024-01-10", Status: "Occupied"},
			wantMsg: "status must be one of Available Cleaning",
		},
		{
			name:    "invalid email",
			req:     stayRequest{Guest: "Asha", CheckIn: "2024-01-10", Email: "asha"},
			wantMsg: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	var req stayRequest

	err := validator.Validate(strings.NewReader(`{"guest":"Asha","check_in":"2024-01-10"}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "Asha", req.Guest)

	err = validator.Validate(strings.NewReader(`{"guest":`), &req)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2024-06-01", "isodate"))
	assert.Error(t, validator.ValidateVar("June first", "isodate"))
}

func TestValidate_EmptyBody(t *testing.T) {
	var req stayRequest

	err := validator.Validate(strings.NewReader(""), &req)
	assert.EqualError(t, err, "request body is required")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestValidateVar_Uploads(t *testing.T) {
	png := "data:image/png;base64,iVBORw0KGgo="

	assert.NoError(t, validator.ValidateVar(png, "mimetypes=image/png image/jpeg"))
	assert.Error(t, validator.ValidateVar(png, "mimetypes=application/pdf"))
	assert.Error(t, validator.ValidateVar("not a data url", "mimetypes=image/png"))

	assert.NoError(t, validator.ValidateVar(png, "maxfilesize=1"))
	assert.Error(t, validator.ValidateVar(png, "maxfilesize=0.000001"))
}
