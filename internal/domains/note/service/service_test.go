package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/note/mocks"
	"frontdesk/internal/domains/note/model"
	"frontdesk/internal/domains/note/model/dto"
	"frontdesk/internal/domains/note/service"
	"frontdesk/shared/constant"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newState(notes ...model.DailyNote) *appstate.Container {
	state := appstate.New(&config.Config{}, otelMocks.NewOtel(), appstate.Sources{}, appstate.WithClock(time.Now))
	state.DailyNotes.Replace(notes)

	return state
}

func TestService_GetMissingDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(mocks.NewMockDailyNote(ctrl), newState(), otelMocks.NewOtel())

	res, err := svc.Get(context.Background(), "2024-01-10")
	assert.NoError(t, err)
	assert.Equal(t, "2024-01-10", res.Date)
	assert.Empty(t, res.Content)
	assert.Nil(t, res.ModifiedAt)
}

func TestService_Put(t *testing.T) {
	tests := []struct {
		name      string
		existing  []model.DailyNote
		setupMock func(repo *mocks.MockDailyNote)
		wantErr   bool
	}{
		{
			name: "first note of the day",
			setupMock: func(repo *mocks.MockDailyNote) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), model.FieldDate).
					DoAndReturn(func(_ context.Context, note model.DailyNote, _ string) error {
						assert.NotEmpty(t, note.ID)
						assert.Equal(t, "VIP arriving at 6pm", note.Content)

						return nil
					})
			},
		},
		{
			name:     "overwrite",
			existing: []model.DailyNote{{ID: "n-1", Date: "2024-01-10", Content: "old"}},
			setupMock: func(repo *mocks.MockDailyNote) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), model.FieldDate).
					DoAndReturn(func(_ context.Context, note model.DailyNote, _ string) error {
						assert.Equal(t, "n-1", note.ID)

						return nil
					})
			},
		},
		{
			name:     "store failure keeps the old text",
			existing: []model.DailyNote{{ID: "n-1", Date: "2024-01-10", Content: "old"}},
			setupMock: func(repo *mocks.MockDailyNote) {
				repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockDailyNote(ctrl)
			tt.setupMock(repo)

			state := newState(tt.existing...)
			svc := service.New(repo, state, otelMocks.NewOtel())

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "frontdesk")
			res, err := svc.Put(ctx, dto.PutNoteRequest{Content: "VIP arriving at 6pm"}, "2024-01-10")

			current, _ := state.DailyNotes.Find("2024-01-10")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, "old", current.Content)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "VIP arriving at 6pm", res.Content)
			assert.Equal(t, "frontdesk", res.ModifiedBy)
			assert.Equal(t, "VIP arriving at 6pm", current.Content)
		})
	}
}
