package room_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service/mocks"
	"frontdesk/internal/handlers/room"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockRoom) chi.Router {
	handler := room.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_OccupyRoom(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockRoom)
		wantCode  int
	}{
		{
			name: "occupied",
			body: `{"guest":"Asha","occupants":2,"check_in":"2024-01-10","check_out":"2024-01-12"}`,
			setupMock: func(svc *mocks.MockRoom) {
				svc.EXPECT().Occupy(gomock.Any(), gomock.Any(), "101").Return(dto.RoomResponse{Number: "101"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing guest",
			body:      `{"occupants":2,"check_in":"2024-01-10","check_out":"2024-01-12"}`,
			setupMock: func(_ *mocks.MockRoom) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "room busy",
			body: `{"guest":"Asha","occupants":2,"check_in":"2024-01-10","check_out":"2024-01-12"}`,
			setupMock: func(svc *mocks.MockRoom) {
				svc.EXPECT().Occupy(gomock.Any(), gomock.Any(), "101").Return(dto.RoomResponse{}, failure.Conflict("room 101 is Occupied"))
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockRoom(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rooms/101/occupy", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_CheckoutRoomWithoutBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockRoom(ctrl)
	svc.EXPECT().Checkout(gomock.Any(), dto.CheckoutRoomRequest{}, "101").Return(dto.RoomResponse{Number: "101"}, nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/rooms/101/checkout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"number":"101"`)
}
