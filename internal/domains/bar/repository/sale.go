package repository

//go:generate go run go.uber.org/mock/mockgen -source=./sale.go -destination=../mocks/sale_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/bar/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	gRepo "frontdesk/shared/repository"
)

type Sale interface {
	Insert(ctx context.Context, model model.Sale) error
	InsertBulk(ctx context.Context, models []model.Sale) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Sale, error)
	List(ctx context.Context) ([]model.Sale, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type saleRepositoryImpl struct {
	gRepo.Repository[model.Sale]
}

func NewSale(db *postgres.Connection, otel otel.Otel, hook event.Hook) Sale {
	return &saleRepositoryImpl{
		Repository: gRepo.NewRepository[model.Sale](model.SaleEntityName, model.SaleTableName, model.FieldID, db, otel, hook),
	}
}
