package dto

import (
	"time"

	"frontdesk/infras/jwt"
	staffModel "frontdesk/internal/domains/staff/model"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

var redirects = map[string]string{
	constant.RoleAdmin:        "/admin",
	constant.RoleReceptionist: "/reception",
	constant.RoleRestaurant:   "/restaurant",
	constant.RoleBar:          "/bar",
}

// RedirectFor returns the landing page for a role, or "/" for anything unknown.
func RedirectFor(role string) string {
	if path, ok := redirects[role]; ok {
		return path
	}

	return "/"
}

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,max=100"`
	Role     string `json:"role"     validate:"required,oneof=admin receptionist restaurant bar"`
}

func (r *RegisterRequest) ToStaffModel(user, hashedPassword string) staffModel.Staff {
	return staffModel.Staff{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Name:     r.Name,
		Role:     r.Role,
		Active:   true,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type RegisterResponse struct {
	ID string `json:"id"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
	// Password is only set when the stored hash is upgraded to the current cost.
	Password string `db:"password" json:"-"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Redirect     string `json:"redirect"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

func (l *LoginResponse) FromStaff(staff staffModel.Staff) {
	l.Role = staff.Role
	l.Name = staff.Name
	l.Redirect = RedirectFor(staff.Role)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
