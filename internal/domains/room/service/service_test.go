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
	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/room/mocks"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 1, 13, 9, 0, 0, 0, time.UTC)

func newState(rooms ...model.Room) *appstate.Container {
	state := appstate.New(&config.Config{}, otelMocks.NewOtel(), appstate.Sources{}, appstate.WithClock(func() time.Time { return now }))
	state.Rooms.Replace(rooms)

	return state
}

func occupiedRoom(checkOut time.Time) model.Room {
	guest := "Asha Rao"
	occupants := 2
	checkIn := checkOut.Add(-48 * time.Hour)
	total := 2400.0

	return model.Room{
		Number:       "101",
		Type:         "Standard",
		Price:        1200,
		Status:       model.StatusOccupied,
		Guest:        &guest,
		Occupants:    &occupants,
		CheckIn:      &checkIn,
		CheckOut:     &checkOut,
		TotalPrice:   &total,
		PaidAmount:   500,
		Transactions: billing.Transactions{{Date: checkIn, Amount: 500, Method: billing.MethodCash}},
	}
}

func availableRoom(number string) model.Room {
	return model.Room{Number: number, Type: "Deluxe", Price: 2000, Status: model.StatusAvailable}
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		existing  []model.Room
		setupMock func(repo *mocks.MockRoom)
		wantCode  int
	}{
		{
			name: "created",
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "duplicate number",
			existing:  []model.Room{availableRoom("301")},
			setupMock: func(_ *mocks.MockRoom) {},
			wantCode:  http.StatusConflict,
		},
		{
			name: "store failure",
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockRoom(ctrl)
			tt.setupMock(repo)

			state := newState(tt.existing...)
			svc := service.New(repo, state, otelMocks.NewOtel())

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "clerk")
			res, err := svc.Create(ctx, dto.CreateRoomRequest{Number: "301", Type: "Suite", Price: 3500})

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
				assert.Equal(t, len(tt.existing), state.Rooms.Len())

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusAvailable, res.Status)
			assert.Equal(t, "clerk", res.CreatedBy)
			assert.Equal(t, 1, state.Rooms.Len())
		})
	}
}

func TestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lapsed := occupiedRoom(now.Add(-time.Hour))
	lapsed.Number = "102"

	state := newState(availableRoom("201"), lapsed, occupiedRoom(now.Add(time.Hour)))
	svc := service.New(mocks.NewMockRoom(ctrl), state, otelMocks.NewOtel())

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, constant.Empty)
	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, []string{"101", "102"}, []string{res.Rooms[0].Number, res.Rooms[1].Number})
	assert.Equal(t, model.StatusAvailable, res.Rooms[1].Status, "lapsed stay shows as vacated")

	res, err = svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, model.StatusOccupied)
	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "101", res.Rooms[0].Number)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.New(mocks.NewMockRoom(ctrl), newState(occupiedRoom(now.Add(time.Hour))), otelMocks.NewOtel())

	res, err := svc.Get(context.Background(), "101")
	assert.NoError(t, err)
	assert.Equal(t, 1900.0, res.BalanceDue)

	_, err = svc.Get(context.Background(), "999")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestService_Update(t *testing.T) {
	price := 1500.0

	tests := []struct {
		name      string
		room      model.Room
		req       dto.UpdateRoomRequest
		setupMock func(repo *mocks.MockRoom)
		wantCode  int
	}{
		{
			name: "price change",
			room: availableRoom("201"),
			req:  dto.UpdateRoomRequest{Price: &price, Status: model.StatusMaintenance},
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, columns map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 1500.0, columns[model.FieldPrice])
						assert.Equal(t, model.StatusMaintenance, columns[model.FieldStatus])
						assert.NotContains(t, columns, model.FieldID)

						return nil
					})
			},
		},
		{
			name:      "occupied room keeps its status",
			room:      occupiedRoom(now.Add(time.Hour)),
			req:       dto.UpdateRoomRequest{Status: model.StatusCleaning},
			setupMock: func(_ *mocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "store lost the row",
			room: availableRoom("201"),
			req:  dto.UpdateRoomRequest{Price: &price},
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(gRepo.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockRoom(ctrl)
			tt.setupMock(repo)

			state := newState(tt.room)
			svc := service.New(repo, state, otelMocks.NewOtel())

			res, err := svc.Update(context.Background(), tt.req, tt.room.Number)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				current, _ := state.Rooms.Find(tt.room.Number)
				assert.Equal(t, tt.room.Price, current.Price)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 1500.0, res.Price)
		})
	}
}

func TestService_Occupy(t *testing.T) {
	req := dto.OccupyRoomRequest{Guest: "Ravi", Occupants: 1, CheckIn: "2024-01-13", CheckOut: "2024-01-15"}

	tests := []struct {
		name      string
		room      model.Room
		setupMock func(repo *mocks.MockRoom)
		wantCode  int
	}{
		{
			name: "available room",
			room: availableRoom("201"),
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "lapsed stay is free again",
			room: occupiedRoom(now.Add(-time.Minute)),
			setupMock: func(repo *mocks.MockRoom) {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "occupied room",
			room:      occupiedRoom(now.Add(time.Hour)),
			setupMock: func(_ *mocks.MockRoom) {},
			wantCode:  http.StatusConflict,
		},
		{
			name:      "room under maintenance",
			room:      model.Room{Number: "203", Price: 3500, Status: model.StatusMaintenance},
			setupMock: func(_ *mocks.MockRoom) {},
			wantCode:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockRoom(ctrl)
			tt.setupMock(repo)

			svc := service.New(repo, newState(tt.room), otelMocks.NewOtel())

			res, err := svc.Occupy(context.Background(), req, tt.room.Number)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.StatusOccupied, res.Status)
			assert.Equal(t, "Ravi", *res.Guest)
			assert.Equal(t, *res.TotalPrice, res.BalanceDue)
			assert.Empty(t, res.Transactions)
		})
	}
}

func TestService_OccupyKeepsEarlierStays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRoom(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, columns map[string]any, _ gDto.FilterGroup) error {
			assert.Len(t, columns[model.FieldTransactions], 1)
			assert.Equal(t, 1, columns[model.FieldStayOffset])
			assert.Equal(t, 0.0, columns[model.FieldPaidAmount])

			return nil
		})

	state := newState(occupiedRoom(now.Add(-time.Minute)))
	svc := service.New(repo, state, otelMocks.NewOtel())

	req := dto.OccupyRoomRequest{Guest: "Ravi", Occupants: 1, CheckIn: "2024-01-13", CheckOut: "2024-01-14"}

	res, err := svc.Occupy(context.Background(), req, "101")
	assert.NoError(t, err)
	assert.Empty(t, res.Transactions)
	if assert.Len(t, res.History, 1) {
		assert.Equal(t, 500.0, res.History[0].Amount)
	}

	current, _ := state.Rooms.Find("101")
	assert.Len(t, current.Transactions, 1)
}

func TestService_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRoom(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, columns map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusCleaning, columns[model.FieldStatus])
			assert.Nil(t, columns[model.FieldGuest])

			return nil
		})

	state := newState(occupiedRoom(now.Add(time.Hour)), availableRoom("201"))
	svc := service.New(repo, state, otelMocks.NewOtel())

	res, err := svc.Checkout(context.Background(), dto.CheckoutRoomRequest{NextStatus: model.StatusCleaning}, "101")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusCleaning, res.Status)
	assert.Nil(t, res.Guest)
	assert.Equal(t, 500.0, res.PaidAmount)

	_, err = svc.Checkout(context.Background(), dto.CheckoutRoomRequest{}, "201")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestService_RecordPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amount := 2000.0

	repo := mocks.NewMockRoom(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	state := newState(occupiedRoom(now.Add(time.Hour)))
	svc := service.New(repo, state, otelMocks.NewOtel())

	res, err := svc.RecordPayment(context.Background(), dto.RecordPaymentRequest{Amount: &amount, Method: billing.MethodUPI}, "101")
	assert.NoError(t, err)
	assert.Equal(t, 2500.0, res.PaidAmount)
	assert.Equal(t, -100.0, res.BalanceDue)
	assert.Len(t, res.Transactions, 2)
	assert.Equal(t, billing.MethodUPI, res.Transactions[1].Method)

	current, _ := state.Rooms.Find("101")
	assert.Len(t, current.Transactions, 2)
}

func TestService_RecordPayment_StoreFailureKeepsLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	amount := 100.0

	repo := mocks.NewMockRoom(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	state := newState(occupiedRoom(now.Add(time.Hour)))
	svc := service.New(repo, state, otelMocks.NewOtel())

	_, err := svc.RecordPayment(context.Background(), dto.RecordPaymentRequest{Amount: &amount, Method: billing.MethodCash}, "101")
	assert.Error(t, err)

	current, _ := state.Rooms.Find("101")
	assert.Equal(t, 500.0, current.PaidAmount)
	assert.Len(t, current.Transactions, 1)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockRoom(ctrl)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	state := newState(occupiedRoom(now.Add(time.Hour)), availableRoom("201"))
	svc := service.New(repo, state, otelMocks.NewOtel())

	assert.NoError(t, svc.Delete(context.Background(), "201"))
	assert.Equal(t, http.StatusConflict, failure.GetCode(svc.Delete(context.Background(), "101")))
	assert.Equal(t, http.StatusNotFound, failure.GetCode(svc.Delete(context.Background(), "201")))
	assert.Equal(t, 1, state.Rooms.Len())
}
