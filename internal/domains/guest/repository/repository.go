package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/event"
	"frontdesk/shared/logger"
	gRepo "frontdesk/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AppendHistory(ctx context.Context, id, entry, user string, at time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
	hook event.Hook
}

func New(db *postgres.Connection, otel otel.Otel, hook event.Hook) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel, hook),
		db:         db,
		otel:       otel,
		hook:       hook,
	}
}

// AppendHistory adds one entry to the end of the guest's history in a single statement.
func (repo *repositoryImpl) AppendHistory(ctx context.Context, id, entry, user string, at time.Time) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.AppendHistory")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = array_append(%s, :entry), %s = :modified_at, %s = :modified_by WHERE %s = :id",
		model.TableName, model.FieldHistory, model.FieldHistory, constant.FieldModifiedAt, constant.FieldModifiedBy, model.FieldID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"entry":       entry,
		"modified_at": at,
		"modified_by": user,
		"id":          id,
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		if repo.hook != nil {
			repo.hook.WriteFailed(ctx, event.NewWriteFailure(model.TableName, event.OperationUpdate, id, err))
		}

		return fmt.Errorf("failed to append guest history: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return gRepo.ErrNotFound
	}

	return nil
}
