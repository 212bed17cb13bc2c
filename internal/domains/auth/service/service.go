package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	staffModel "frontdesk/internal/domains/staff/model"
	staffRepo "frontdesk/internal/domains/staff/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/password"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"

	messageInvalidCredentials = "invalid email or password"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	staffRepo  staffRepo.Staff
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(staffRepo staffRepo.Staff, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		staffRepo:  staffRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.staffRepo.Exist(ctx, shared.FilterByField(staffModel.FieldEmail, req.Email, staffModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if staff exists")

		return res, fmt.Errorf("failed to check if staff exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := req.ToStaffModel(user, hashedPassword)

	if err = s.staffRepo.Insert(ctx, staff); err != nil {
		if errors.Is(err, gRepo.ErrDuplicate) {
			return res, failure.Conflict("email already registered") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create staff")

		return res, fmt.Errorf("failed to create staff: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()

	res.ID = staff.ID

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := shared.FilterByField(staffModel.FieldEmail, req.Email, staffModel.TableName)

	staff, err := s.staffRepo.Get(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(messageInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, staff.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(messageInvalidCredentials) // nolint:wrapcheck
	}

	if !staff.Active {
		return res, failure.Forbidden("staff account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, staff.ID, staff.Email, staff.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}

	if password.NeedsRehash(staff.Password) {
		if rehashed, err := password.Hash(req.Password); err == nil {
			lastLogin.Password = rehashed
		}
	}

	// a stale last_login never blocks a successful login
	if err := s.staffRepo.Update(ctx, shared.TransformFields(lastLogin, staff.ID), shared.FilterByID(staff.ID, staffModel.FieldID, staffModel.TableName)); err != nil {
		log.Warn().Err(err).Str("staff_id", staff.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)
	res.FromStaff(staff)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return failure.Unauthorized("missing staff identity") // nolint:wrapcheck
	}

	filter := shared.FilterByID(user, staffModel.FieldID, staffModel.TableName)

	staff, err := s.staffRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return failure.NotFound("staff not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, staff.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	err = s.staffRepo.Update(ctx, shared.TransformFields(updatePassword, user), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
