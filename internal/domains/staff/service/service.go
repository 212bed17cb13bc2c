package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"
	"frontdesk/internal/domains/staff/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStaff    = "staff:get"
	cacheGetAllStaff = "staff:gets"
	cacheCountStaff  = "staff:count"
)

type Staff interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.StaffResponse, error)
	Update(ctx context.Context, req dto.UpdateStaffRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Staff
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Staff, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for staff list")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	staff, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(staff, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountStaff, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return total, fmt.Errorf("failed to count staff: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetStaff, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	staff, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return res, failure.NotFound("staff not found") // nolint:wrapcheck
	}

	res.FromModel(staff)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateStaffRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if user == id && req.Active != nil && !*req.Active {
		return failure.BadRequestFromString("cannot deactivate your own account") // nolint:wrapcheck
	}

	err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNotFound) {
		return failure.NotFound("staff not found") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to update staff")

		return fmt.Errorf("failed to update staff: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user == id {
		return failure.BadRequestFromString("cannot delete your own account") // nolint:wrapcheck
	}

	err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if errors.Is(err, gRepo.ErrNotFound) {
		return failure.NotFound("staff not found") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to delete staff")

		return fmt.Errorf("failed to delete staff: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetStaff, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete staff cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllStaff)
		shared.InvalidateCaches(c, s.cache, cacheCountStaff)
	}()
}
