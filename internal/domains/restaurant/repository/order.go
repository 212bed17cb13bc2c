package repository

//go:generate go run go.uber.org/mock/mockgen -source=./order.go -destination=../mocks/order_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/restaurant/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	gRepo "frontdesk/shared/repository"
)

type Order interface {
	Insert(ctx context.Context, model model.Order) error
	InsertBulk(ctx context.Context, models []model.Order) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type orderRepositoryImpl struct {
	gRepo.Repository[model.Order]
}

func NewOrder(db *postgres.Connection, otel otel.Otel, hook event.Hook) Order {
	return &orderRepositoryImpl{
		Repository: gRepo.NewRepository[model.Order](model.OrderEntityName, model.OrderTableName, model.FieldID, db, otel, hook),
	}
}
