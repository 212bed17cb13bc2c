package hall_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/hall/model/dto"
	"frontdesk/internal/domains/hall/service/mocks"
	"frontdesk/internal/handlers/hall"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_BookHall(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockHall)
		wantCode  int
	}{
		{
			name: "booked",
			body: `{"customer_name":"Meera","contact":"98","check_in_date":"2024-06-02","check_in_time":"10:00","check_out_date":"2024-06-02","check_out_time":"13:00","adults":10}`,
			setupMock: func(svc *mocks.MockHall) {
				svc.EXPECT().Book(gomock.Any(), gomock.Any(), "Garden Pavilion").Return(dto.HallResponse{Name: "Garden Pavilion"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "malformed json",
			body:      `{"customer_name":`,
			setupMock: func(_ *mocks.MockHall) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockHall(ctrl)
			tt.setupMock(svc)

			handler := hall.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/halls/Garden%20Pavilion/book", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
