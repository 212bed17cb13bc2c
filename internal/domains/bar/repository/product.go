package repository

//go:generate go run go.uber.org/mock/mockgen -source=./product.go -destination=../mocks/product_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/bar/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	gRepo "frontdesk/shared/repository"
)

type Product interface {
	Insert(ctx context.Context, model model.Product) error
	InsertBulk(ctx context.Context, models []model.Product) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type productRepositoryImpl struct {
	gRepo.Repository[model.Product]
}

func NewProduct(db *postgres.Connection, otel otel.Otel, hook event.Hook) Product {
	return &productRepositoryImpl{
		Repository: gRepo.NewRepository[model.Product](model.ProductEntityName, model.ProductTableName, model.FieldID, db, otel, hook),
	}
}
