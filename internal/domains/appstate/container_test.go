package appstate_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/appstate"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContainer_Load(t *testing.T) {
	now := time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)
	lapsed := time.Date(2024, 1, 12, 11, 0, 0, 0, time.UTC)
	guest := "Asha Rao"

	tests := []struct {
		name        string
		seedOnEmpty bool
		setupMock   func(rooms *roomMocks.MockRoom)
		assertRooms func(t *testing.T, rooms []roomModel.Room)
	}{
		{
			name:        "stored rooms are resolved",
			seedOnEmpty: true,
			setupMock: func(rooms *roomMocks.MockRoom) {
				rooms.EXPECT().List(gomock.Any()).Return([]roomModel.Room{
					{Number: "101", Status: roomModel.StatusOccupied, Guest: &guest, CheckOut: &lapsed},
				}, nil)
			},
			assertRooms: func(t *testing.T, rooms []roomModel.Room) {
				assert.Len(t, rooms, 1)
				assert.Equal(t, roomModel.StatusAvailable, rooms[0].Status)
				assert.Nil(t, rooms[0].Guest)
			},
		},
		{
			name:        "fetch failure falls back to seed",
			seedOnEmpty: true,
			setupMock: func(rooms *roomMocks.MockRoom) {
				rooms.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			assertRooms: func(t *testing.T, rooms []roomModel.Room) {
				assert.NotEmpty(t, rooms)
			},
		},
		{
			name:        "empty collection is seeded and persisted",
			seedOnEmpty: true,
			setupMock: func(rooms *roomMocks.MockRoom) {
				rooms.EXPECT().List(gomock.Any()).Return([]roomModel.Room{}, nil)
				rooms.EXPECT().InsertBulk(gomock.Any(), gomock.Any()).Return(errors.New("read only"))
			},
			assertRooms: func(t *testing.T, rooms []roomModel.Room) {
				assert.NotEmpty(t, rooms)
			},
		},
		{
			name:        "empty collection stays empty when seeding is off",
			seedOnEmpty: false,
			setupMock: func(rooms *roomMocks.MockRoom) {
				rooms.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			assertRooms: func(t *testing.T, rooms []roomModel.Room) {
				assert.Empty(t, rooms)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rooms := roomMocks.NewMockRoom(ctrl)
			tt.setupMock(rooms)

			cfg := &config.Config{}
			cfg.State.SeedOnEmpty = tt.seedOnEmpty

			container := appstate.New(cfg, otelMocks.NewOtel(), appstate.Sources{Rooms: rooms}, appstate.WithClock(fixedClock(now)))
			assert.True(t, container.Loading())

			err := container.Load(context.Background())

			assert.NoError(t, err)
			assert.False(t, container.Loading())
			tt.assertRooms(t, container.Rooms.All())
			assert.NotEmpty(t, container.Halls.All(), "collections without a source serve their seed")
			assert.Empty(t, container.Orders.All())
		})
	}
}

func TestContainer_LoadCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rooms := roomMocks.NewMockRoom(ctrl)
	rooms.EXPECT().List(gomock.Any()).Return(nil, context.Canceled)

	container := appstate.New(&config.Config{}, otelMocks.NewOtel(), appstate.Sources{Rooms: rooms})
	err := container.Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, container.Loading())
	assert.NotEmpty(t, container.Rooms.All())
}
