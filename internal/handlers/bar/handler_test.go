package bar_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/bar/model/dto"
	"frontdesk/internal/domains/bar/service/mocks"
	"frontdesk/internal/handlers/bar"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockBar) chi.Router {
	handler := bar.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_RecordSale(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockBar)
		wantCode  int
	}{
		{
			name: "recorded",
			body: `{"product":"Kingfisher","quantity":2}`,
			setupMock: func(svc *mocks.MockBar) {
				svc.EXPECT().RecordSale(gomock.Any(), dto.RecordSaleRequest{Product: "Kingfisher", Quantity: 2}).
					Return(dto.SaleResponse{ID: "s-1", Total: 500}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "zero quantity",
			body:      `{"product":"Kingfisher","quantity":0}`,
			setupMock: func(_ *mocks.MockBar) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not enough stock",
			body: `{"product":"Kingfisher","quantity":40}`,
			setupMock: func(svc *mocks.MockBar) {
				svc.EXPECT().RecordSale(gomock.Any(), gomock.Any()).Return(dto.SaleResponse{}, failure.BadRequestFromString("only 12 of Kingfisher left"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockBar(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bar/sales", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetSalesRejectsBadDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rec := httptest.NewRecorder()
	newRouter(mocks.NewMockBar(ctrl)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bar/sales?date=yesterday", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
