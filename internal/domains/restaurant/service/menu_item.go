package service

//go:generate go run go.uber.org/mock/mockgen -source=./menu_item.go -destination=./mocks/menu_item_mock.go -package=mocks

import (
	"context"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/restaurant/model"
	"frontdesk/internal/domains/restaurant/model/dto"
	"frontdesk/internal/domains/restaurant/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

type MenuItem interface {
	Create(ctx context.Context, req dto.CreateMenuItemRequest) (dto.MenuItemResponse, error)
	GetAll(ctx context.Context, category string, available *bool) ([]dto.MenuItemResponse, error)
	Update(ctx context.Context, req dto.UpdateMenuItemRequest, name string) (dto.MenuItemResponse, error)
	Delete(ctx context.Context, name string) error
}

type menuItemImpl struct {
	repo  repository.MenuItem
	state *appstate.Container
	otel  otel.Otel
}

func NewMenuItem(repo repository.MenuItem, state *appstate.Container, otel otel.Otel) MenuItem {
	return &menuItemImpl{
		repo:  repo,
		state: state,
		otel:  otel,
	}
}

func (s *menuItemImpl) Create(ctx context.Context, req dto.CreateMenuItemRequest) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	item := req.ToModel(user)

	if err = s.state.MenuItems.Insert(ctx, item, s.repo.Insert); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create menu item")

		return res, appstate.AsFailure(err, model.MenuItemEntityName, req.Name)
	}

	res.FromModel(item)

	return res, nil
}

func (s *menuItemImpl) GetAll(ctx context.Context, category string, available *bool) (res []dto.MenuItemResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllMenuItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	items := make([]model.MenuItem, 0, s.state.MenuItems.Len())
	for _, item := range s.state.MenuItems.All() {
		if category != constant.Empty && item.Category != category {
			continue
		}

		if available != nil && item.Available != *available {
			continue
		}

		items = append(items, item)
	}

	return dto.MenuItemsFromModels(shared.SortByKey(items, model.MenuItem.Key, constant.Empty)), nil
}

func (s *menuItemImpl) Update(ctx context.Context, req dto.UpdateMenuItemRequest, name string) (res dto.MenuItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item, err := s.state.MenuItems.Apply(ctx, name, func(current model.MenuItem) (model.MenuItem, error) {
		next := req.Apply(current)
		next.Touch(user, s.state.Now())

		return next, nil
	}, func(ctx context.Context, next model.MenuItem) error {
		return s.repo.Update(ctx,
			shared.StructColumns(next, user, model.FieldID),
			shared.FilterByField(model.FieldName, name, model.MenuItemTableName))
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to update menu item")

		return res, fmt.Errorf("failed to update menu item: %w", appstate.AsFailure(err, model.MenuItemEntityName, name))
	}

	res.FromModel(item)

	return res, nil
}

func (s *menuItemImpl) Delete(ctx context.Context, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMenuItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.state.MenuItems.Remove(ctx, name, func(ctx context.Context, _ model.MenuItem) error {
		return s.repo.Delete(ctx, shared.FilterByField(model.FieldName, name, model.MenuItemTableName))
	})
	if err != nil {
		log.Error().Err(err).Str("name", name).Msg("failed to delete menu item")

		return appstate.AsFailure(err, model.MenuItemEntityName, name)
	}

	return nil
}
