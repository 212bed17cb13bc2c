package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/hall/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	gRepo "frontdesk/shared/repository"
)

type Hall interface {
	Insert(ctx context.Context, model model.Hall) error
	InsertBulk(ctx context.Context, models []model.Hall) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hall, error)
	List(ctx context.Context) ([]model.Hall, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Hall]
}

func New(db *postgres.Connection, otel otel.Otel, hook event.Hook) Hall {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hall](model.EntityName, model.TableName, model.FieldID, db, otel, hook),
	}
}
