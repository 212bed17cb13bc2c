package quote_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/billing"
	"frontdesk/internal/domains/quote/service/mocks"
	"frontdesk/internal/handlers/quote"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockQuote) chi.Router {
	handler := quote.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_QuoteRoom(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockQuote)
		wantCode  int
	}{
		{
			name: "quoted",
			body: `{"room":"101","check_in":"2024-01-10","check_out":"2024-01-12"}`,
			setupMock: func(svc *mocks.MockQuote) {
				svc.EXPECT().Room(gomock.Any(), gomock.Any()).Return(billing.RoomQuote{Nights: 2, Total: 5000}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing dates",
			body:      `{"room":"101"}`,
			setupMock: func(*mocks.MockQuote) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown room",
			body: `{"room":"999","check_in":"2024-01-10","check_out":"2024-01-12"}`,
			setupMock: func(svc *mocks.MockQuote) {
				svc.EXPECT().Room(gomock.Any(), gomock.Any()).Return(billing.RoomQuote{}, failure.NotFound("room 999 not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockQuote(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/quotes/room", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_QuoteHallRejectsUnknownAddOn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockQuote(ctrl)

	body := `{"hall":"Grand Ballroom","check_in_date":"2024-06-02","check_in_time":"10:00","check_out_date":"2024-06-02","check_out_time":"12:00","add_ons":["fireworks"]}`

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/quotes/hall", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
