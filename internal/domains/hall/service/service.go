package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/hall/model"
	"frontdesk/internal/domains/hall/model/dto"
	"frontdesk/internal/domains/hall/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Hall interface {
	Create(ctx context.Context, req dto.CreateHallRequest) (dto.HallResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, status string) (dto.GetHallsResponse, error)
	Get(ctx context.Context, name string) (dto.HallResponse, error)
	Update(ctx context.Context, req dto.UpdateHallRequest, name string) (dto.HallResponse, error)
	Book(ctx context.Context, req dto.BookHallRequest, name string) (dto.HallResponse, error)
	Release(ctx context.Context, req dto.ReleaseHallRequest, name string) (dto.HallResponse, error)
	Delete(ctx context.Context, name string) error
}

type serviceImpl struct {
	repo  repository.Hall
	state *appstate.Container
	otel  otel.Otel
}

func New(repo repository.Hall, state *appstate.Container, otel otel.Otel) Hall {
	return &serviceImpl{
		repo:  repo,
		state: state,
		otel:  otel,
	}
}

func (s *serviceImpl) apply(ctx context.Context, name string, mutate func(model.Hall) (model.Hall, error)) (res dto.HallResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	hall, err := s.state.Halls.Apply(ctx, name, func(current model.Hall) (model.Hall, error) {
		next, err := mutate(current)
		if err != nil {
			return next, err
		}

		next.Touch(user, s.state.Now())

		return next, nil
	}, func(ctx context.Context, next model.Hall) error {
		return s.repo.Update(ctx,
			shared.StructColumns(next, user, model.FieldID),
			shared.FilterByField(model.FieldName, name, model.TableName))
	})
	if err != nil {
		return res, appstate.AsFailure(err, model.EntityName, name)
	}

	res.FromModel(hall)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHallRequest) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	hall := req.ToModel(user)

	if err = s.state.Halls.Insert(ctx, hall, s.repo.Insert); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create hall")

		return res, appstate.AsFailure(err, model.EntityName, req.Name)
	}

	res.FromModel(hall)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, status string) (res dto.GetHallsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	halls := s.state.Halls.All()

	if status != constant.Empty {
		filtered := halls[:0]
		for _, hall := range halls {
			if hall.Status == status {
				filtered = append(filtered, hall)
			}
		}

		halls = filtered
	}

	halls = shared.SortByKey(halls, model.Hall.Key, params.SortDir)

	res.FromModels(shared.Paginate(halls, params.Page, params.Limit), len(halls), params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, name string) (res dto.HallResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	hall, ok := s.state.Halls.Find(name)
	if !ok {
		return res, failure.NotFound(model.EntityName + " not found") // nolint:wrapcheck
	}

	res.FromModel(hall)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHallRequest, name string) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, name, func(current model.Hall) (model.Hall, error) {
		if current.Engaged() && req.Status != constant.Empty && req.Status != current.Status {
			return current, failure.BadRequestFromString("status of a booked hall changes only on release") // nolint:wrapcheck
		}

		return req.Apply(current), nil
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to update hall")

		return res, fmt.Errorf("failed to update hall: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookHallRequest, name string) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end := req.Window()
	if start == nil || end == nil || !end.After(*start) {
		return res, failure.BadRequestFromString("check out must be after check in") // nolint:wrapcheck
	}

	res, err = s.apply(ctx, name, func(current model.Hall) (model.Hall, error) {
		if current.Status != model.StatusAvailable {
			return current, failure.Conflict(fmt.Sprintf("hall %s is %s", name, current.Status)) // nolint:wrapcheck
		}

		if guests := req.Adults + req.Children; guests > current.Capacity {
			return current, failure.BadRequestFromString(fmt.Sprintf("hall %s seats %d, %d guests requested", name, current.Capacity, guests)) // nolint:wrapcheck
		}

		return req.Apply(current), nil
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to book hall")

		return res, fmt.Errorf("failed to book hall: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Release(ctx context.Context, req dto.ReleaseHallRequest, name string) (res dto.HallResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Release")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, name, func(current model.Hall) (model.Hall, error) {
		if !current.Engaged() {
			return current, failure.Conflict(fmt.Sprintf("hall %s is not booked", name)) // nolint:wrapcheck
		}

		return current.Released(req.Status()), nil
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to release hall")

		return res, fmt.Errorf("failed to release hall: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.state.Halls.Remove(ctx, name, func(ctx context.Context, current model.Hall) error {
		if current.Engaged() {
			return failure.Conflict(fmt.Sprintf("hall %s is booked", name)) // nolint:wrapcheck
		}

		return s.repo.Delete(ctx, shared.FilterByField(model.FieldName, name, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to delete hall")

		return appstate.AsFailure(err, model.EntityName, name)
	}

	return nil
}
