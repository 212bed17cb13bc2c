package insight_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/insight/model/dto"
	"frontdesk/internal/domains/insight/service/mocks"
	"frontdesk/internal/handlers/insight"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockInsight) chi.Router {
	handler := insight.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_Trends(t *testing.T) {
	body := `{"currentRevenue":120000,"previousRevenue":40000,"currentOccupancy":72,"previousOccupancy":70,"currentGuests":310,"previousGuests":300,"currentOrders":95,"previousOrders":90}`

	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockInsight)
		wantCode  int
	}{
		{
			name: "flags returned bare",
			body: body,
			setupMock: func(svc *mocks.MockInsight) {
				svc.EXPECT().Trends(gomock.Any(), gomock.Any()).Return(dto.TrendsResponse{RevenueAnomaly: true, Insight: "Revenue tripled."}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "occupancy over a hundred percent",
			body:      `{"currentOccupancy":140}`,
			setupMock: func(*mocks.MockInsight) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "model unavailable",
			body: body,
			setupMock: func(svc *mocks.MockInsight) {
				svc.EXPECT().Trends(gomock.Any(), gomock.Any()).Return(dto.TrendsResponse{}, failure.BadGateway("failed to analyse trends"))
			},
			wantCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockInsight(ctrl)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/insights/trends", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				var res dto.TrendsResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.True(t, res.RevenueAnomaly)
			}
		})
	}
}

func TestHandler_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockInsight(ctrl)

	svc.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{OpenOrders: 2}, nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"open_orders":2`)
}
