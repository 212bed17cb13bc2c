package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/note/model"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	gRepo "frontdesk/shared/repository"
)

type DailyNote interface {
	Insert(ctx context.Context, model model.DailyNote) error
	InsertBulk(ctx context.Context, models []model.DailyNote) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DailyNote, error)
	List(ctx context.Context) ([]model.DailyNote, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Upsert(ctx context.Context, model model.DailyNote, conflictColumn string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.DailyNote]
}

func New(db *postgres.Connection, otel otel.Otel, hook event.Hook) DailyNote {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DailyNote](model.EntityName, model.TableName, model.FieldID, db, otel, hook),
	}
}
