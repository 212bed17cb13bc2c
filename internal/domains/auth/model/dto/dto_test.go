package dto_test

import (
	"testing"

	"frontdesk/infras/jwt"
	"frontdesk/internal/domains/auth/model/dto"
	staffModel "frontdesk/internal/domains/staff/model"
	"frontdesk/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestRedirectFor(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{role: constant.RoleAdmin, want: "/admin"},
		{role: constant.RoleReceptionist, want: "/reception"},
		{role: constant.RoleRestaurant, want: "/restaurant"},
		{role: constant.RoleBar, want: "/bar"},
		{role: "housekeeping", want: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.RedirectFor(tt.role))
		})
	}
}

func TestLoginResponse(t *testing.T) {
	var res dto.LoginResponse

	res.FromTokenPair(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900})
	res.FromStaff(staffModel.Staff{Name: "Meera", Role: constant.RoleBar})

	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "refresh", res.RefreshToken)
	assert.Equal(t, int64(900), res.ExpiresIn)
	assert.Equal(t, "/bar", res.Redirect)
	assert.Equal(t, "Meera", res.Name)
}

func TestRegisterRequest_ToStaffModel(t *testing.T) {
	req := dto.RegisterRequest{Email: "desk@hotel.test", Name: "Ravi", Role: constant.RoleReceptionist}

	staff := req.ToStaffModel("admin-1", "hashed")

	assert.NotEmpty(t, staff.ID)
	assert.Equal(t, "hashed", staff.Password)
	assert.True(t, staff.Active)
	assert.Equal(t, "admin-1", staff.CreatedBy)
	assert.Nil(t, staff.LastLogin)
}
