package repository

//go:generate go run go.uber.org/mock/mockgen -source=./menu_item.go -destination=../mocks/menu_item_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/restaurant/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	gRepo "frontdesk/shared/repository"
)

type MenuItem interface {
	Insert(ctx context.Context, model model.MenuItem) error
	InsertBulk(ctx context.Context, models []model.MenuItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type menuItemRepositoryImpl struct {
	gRepo.Repository[model.MenuItem]
}

func NewMenuItem(db *postgres.Connection, otel otel.Otel, hook event.Hook) MenuItem {
	return &menuItemRepositoryImpl{
		Repository: gRepo.NewRepository[model.MenuItem](model.MenuItemEntityName, model.MenuItemTableName, model.FieldID, db, otel, hook),
	}
}
