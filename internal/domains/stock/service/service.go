package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/stock/model"
	"frontdesk/internal/domains/stock/model/dto"
	"frontdesk/internal/domains/stock/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Stock interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (dto.ItemResponse, error)
	GetAll(ctx context.Context, category, status string) (dto.GetItemsResponse, error)
	Get(ctx context.Context, name string) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, name string) (dto.ItemResponse, error)
	Adjust(ctx context.Context, req dto.AdjustItemRequest, name string) (dto.ItemResponse, error)
	Delete(ctx context.Context, name string) error
}

type serviceImpl struct {
	repo  repository.Item
	state *appstate.Container
	otel  otel.Otel
}

func New(repo repository.Item, state *appstate.Container, otel otel.Otel) Stock {
	return &serviceImpl{
		repo:  repo,
		state: state,
		otel:  otel,
	}
}

func (s *serviceImpl) apply(ctx context.Context, name string, mutate func(model.Item) (model.Item, error)) (res dto.ItemResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item, err := s.state.StockItems.Apply(ctx, name, func(current model.Item) (model.Item, error) {
		next, err := mutate(current)
		if err != nil {
			return current, err
		}

		next.Touch(user, s.state.Now())

		return next, nil
	}, func(ctx context.Context, next model.Item) error {
		return s.repo.Update(ctx,
			shared.StructColumns(next, user, model.FieldID),
			shared.FilterByField(model.FieldName, name, model.TableName))
	})
	if err != nil {
		return res, appstate.AsFailure(err, model.EntityName, name)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	item := req.ToModel(user)

	if err = s.state.StockItems.Insert(ctx, item, s.repo.Insert); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create stock item")

		return res, appstate.AsFailure(err, model.EntityName, req.Name)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, category, status string) (res dto.GetItemsResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	items := slices.DeleteFunc(s.state.StockItems.All(), func(item model.Item) bool {
		if category != constant.Empty && item.Category != category {
			return true
		}

		return status != constant.Empty && item.Status() != status
	})

	res.FromModels(shared.SortByKey(items, model.Item.Key, constant.Empty))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, name string) (res dto.ItemResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, ok := s.state.StockItems.Find(name)
	if !ok {
		return res, failure.NotFound(model.EntityName + " not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, name string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, name, func(current model.Item) (model.Item, error) {
		next := req.Apply(current)
		if next.MaxStock < next.MinStock {
			return current, failure.BadRequestFromString("max_stock must not be below min_stock") // nolint:wrapcheck
		}

		return next, nil
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to update stock item")

		return res, fmt.Errorf("failed to update stock item: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Adjust(ctx context.Context, req dto.AdjustItemRequest, name string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Adjust")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.apply(ctx, name, func(current model.Item) (model.Item, error) {
		return current.Adjusted(req.Delta), nil
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Int("delta", req.Delta).Msg("failed to adjust stock item")

		return res, fmt.Errorf("failed to adjust stock item: %w", err)
	}

	if res.Status != model.StatusNormal {
		log.Warn().Str("name", name).Str("status", res.Status).Int("quantity", res.Quantity).Msg("stock item needs reordering")
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.state.StockItems.Remove(ctx, name, func(ctx context.Context, _ model.Item) error {
		return s.repo.Delete(ctx, shared.FilterByField(model.FieldName, name, model.TableName))
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to delete stock item")

		return appstate.AsFailure(err, model.EntityName, name)
	}

	return nil
}
