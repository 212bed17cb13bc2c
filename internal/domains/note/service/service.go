package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/note/model"
	"frontdesk/internal/domains/note/model/dto"
	"frontdesk/internal/domains/note/repository"
	"frontdesk/shared/constant"
	gModel "frontdesk/shared/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Note interface {
	Get(ctx context.Context, date string) (dto.NoteResponse, error)
	Put(ctx context.Context, req dto.PutNoteRequest, date string) (dto.NoteResponse, error)
}

type serviceImpl struct {
	repo  repository.DailyNote
	state *appstate.Container
	otel  otel.Otel
}

func New(repo repository.DailyNote, state *appstate.Container, otel otel.Otel) Note {
	return &serviceImpl{
		repo:  repo,
		state: state,
		otel:  otel,
	}
}

// Get answers an empty note for a day nobody wrote about yet.
func (s *serviceImpl) Get(ctx context.Context, date string) (res dto.NoteResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	note, ok := s.state.DailyNotes.Find(date)
	if !ok {
		note = model.DailyNote{Date: date}
	}

	res.FromModel(note)

	return res, nil
}

func (s *serviceImpl) upsert(ctx context.Context, next model.DailyNote) error {
	return s.repo.Upsert(ctx, next, model.FieldDate)
}

func (s *serviceImpl) Put(ctx context.Context, req dto.PutNoteRequest, date string) (res dto.NoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Put")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	at := s.state.Now()

	note, err := s.state.DailyNotes.Apply(ctx, date, func(current model.DailyNote) (model.DailyNote, error) {
		current.Content = req.Content
		current.Touch(user, at)

		return current, nil
	}, s.upsert)

	if errors.Is(err, appstate.ErrNotFound) {
		note = model.DailyNote{
			ID:       uuid.NewString(),
			Date:     date,
			Content:  req.Content,
			Metadata: gModel.NewMetadata(user, at),
		}

		err = s.state.DailyNotes.Insert(ctx, note, s.upsert)
		if errors.Is(err, appstate.ErrDuplicate) {
			// written by someone else in between
			return s.Put(ctx, req, date)
		}
	}

	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to save daily note")

		return res, fmt.Errorf("failed to save daily note: %w", err)
	}

	res.FromModel(note)

	return res, nil
}
