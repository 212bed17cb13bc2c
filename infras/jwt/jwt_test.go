package jwt_test

import (
	"context"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	otelMocks "frontdesk/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
)

func newService(accessMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "frontdesk"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = accessMin
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg, otelMocks.NewOtel())
}

func TestGenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	svc := newService(15)

	pair, err := svc.GenerateTokenPair(ctx, "staff-1", "desk@hotel.test", "receptionist")
	assert.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := svc.ValidateToken(ctx, pair.AccessToken, jwt.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "staff-1", claims.UserID)
	assert.Equal(t, "desk@hotel.test", claims.Email)
	assert.Equal(t, "receptionist", claims.Role)
	assert.NotEmpty(t, claims.TokenID)

	_, err = svc.ValidateToken(ctx, pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_WrongType(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "same"
	cfg.JWT.RefreshSecret = "same"
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 5

	svc := jwt.New(cfg, otelMocks.NewOtel())

	pair, err := svc.GenerateTokenPair(context.Background(), "staff-1", "a@b.c", "admin")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newService(-1)

	pair, err := svc.GenerateTokenPair(context.Background(), "staff-1", "a@b.c", "bar")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := newService(5).ValidateToken(context.Background(), "not.a.token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	ctx := context.Background()
	svc := newService(5)

	pair, err := svc.GenerateTokenPair(ctx, "staff-2", "chef@hotel.test", "restaurant")
	assert.NoError(t, err)

	refreshed, err := svc.RefreshTokens(ctx, pair.RefreshToken)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, refreshed.AccessToken, jwt.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "restaurant", claims.Role)

	_, err = svc.RefreshTokens(ctx, pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "basic scheme", header: "Basic abc", wantErr: true},
		{name: "prefix only", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
