package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/appstate"
	"frontdesk/internal/domains/hall/mocks"
	"frontdesk/internal/domains/hall/model"
	"frontdesk/internal/domains/hall/model/dto"
	"frontdesk/internal/domains/hall/service"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func newState(halls ...model.Hall) *appstate.Container {
	state := appstate.New(&config.Config{}, otelMocks.NewOtel(), appstate.Sources{}, appstate.WithClock(func() time.Time { return now }))
	state.Halls.Replace(halls)

	return state
}

func ballroom() model.Hall {
	return model.Hall{Name: "Grand Ballroom", Capacity: 300, Price: 10000, Status: model.StatusAvailable}
}

func bookedBallroom(checkOut time.Time) model.Hall {
	customer := "Meera Iyer"
	checkIn := checkOut.Add(-4 * time.Hour)
	total := 40000.0

	hall := ballroom()
	hall.Status = model.StatusBooked
	hall.CustomerName = &customer
	hall.CheckIn = &checkIn
	hall.CheckOut = &checkOut
	hall.TotalPrice = &total

	return hall
}

func bookRequest() dto.BookHallRequest {
	return dto.BookHallRequest{
		CustomerName: "Meera Iyer",
		Contact:      "9800000000",
		CheckInDate:  "2024-06-02",
		CheckInTime:  "10:00",
		CheckOutDate: "2024-06-02",
		CheckOutTime: "13:00",
		Adults:       50,
	}
}

func TestService_Book(t *testing.T) {
	tests := []struct {
		name      string
		hall      model.Hall
		req       func() dto.BookHallRequest
		setupMock func(repo *mocks.MockHall)
		wantCode  int
	}{
		{
			name: "booked",
			hall: ballroom(),
			req:  bookRequest,
			setupMock: func(repo *mocks.MockHall) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, columns map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusBooked, columns[model.FieldStatus])

						return nil
					})
			},
		},
		{
			name:      "already booked",
			hall:      bookedBallroom(now.Add(time.Hour)),
			req:       bookRequest,
			setupMock: func(_ *mocks.MockHall) {},
			wantCode:  http.StatusConflict,
		},
		{
			name: "lapsed booking frees the hall",
			hall: bookedBallroom(now.Add(-time.Hour)),
			req:  bookRequest,
			setupMock: func(repo *mocks.MockHall) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "inverted window",
			hall: ballroom(),
			req: func() dto.BookHallRequest {
				req := bookRequest()
				req.CheckOutTime = "09:00"

				return req
			},
			setupMock: func(_ *mocks.MockHall) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "over capacity",
			hall: ballroom(),
			req: func() dto.BookHallRequest {
				req := bookRequest()
				req.Adults = 290
				req.Children = 20

				return req
			},
			setupMock: func(_ *mocks.MockHall) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store failure keeps the hall free",
			hall: ballroom(),
			req:  bookRequest,
			setupMock: func(repo *mocks.MockHall) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockHall(ctrl)
			tt.setupMock(repo)

			state := newState(tt.hall)
			svc := service.New(repo, state, otelMocks.NewOtel())

			res, err := svc.Book(context.Background(), tt.req(), tt.hall.Name)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusBooked, res.Status)
			assert.Equal(t, 30000.0+40000.0, *res.TotalPrice)

			current, _ := state.Halls.Find(tt.hall.Name)
			assert.Equal(t, model.StatusBooked, current.Status)
		})
	}
}

func TestService_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockHall(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	svc := service.New(repo, newState(bookedBallroom(now.Add(time.Hour))), otelMocks.NewOtel())

	res, err := svc.Release(context.Background(), dto.ReleaseHallRequest{NextStatus: model.StatusMaintenance}, "Grand Ballroom")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusMaintenance, res.Status)
	assert.Nil(t, res.CustomerName)

	_, err = svc.Release(context.Background(), dto.ReleaseHallRequest{}, "Grand Ballroom")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestService_CreateAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockHall(ctrl)
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	state := newState(ballroom(), bookedBallroom(now.Add(time.Hour)))
	state.Halls.Replace([]model.Hall{ballroom()})
	svc := service.New(repo, state, otelMocks.NewOtel())

	_, err := svc.Create(context.Background(), dto.CreateHallRequest{Name: "Conference Hall A", Capacity: 80, Price: 3000})
	assert.NoError(t, err)

	_, err = svc.Create(context.Background(), dto.CreateHallRequest{Name: "Grand Ballroom", Capacity: 80, Price: 3000})
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusAvailable)
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "Conference Hall A", res.Halls[0].Name)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(mocks.NewMockHall(ctrl), newState(bookedBallroom(now.Add(time.Hour))), otelMocks.NewOtel())

	assert.Equal(t, http.StatusConflict, failure.GetCode(svc.Delete(context.Background(), "Grand Ballroom")))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(context.Background(), "Ballroom B")))
}
