package staff_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/staff/model/dto"
	"frontdesk/internal/domains/staff/service/mocks"
	"frontdesk/internal/handlers/staff"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(svc *mocks.MockStaff) chi.Router {
	handler := staff.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_GetStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStaff(ctrl)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error) {
		assert.Equal(t, 1, params.Page)
		assert.Len(t, filter.Filters, 1)

		return dto.GetStaffResponse{TotalData: 1}, nil
	})

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/staff/?role=bar", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UpdateStaff(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockStaff)
		wantCode  int
	}{
		{
			name: "updated",
			body: `{"role":"bar"}`,
			setupMock: func(svc *mocks.MockStaff) {
				svc.EXPECT().Update(gomock.Any(), gomock.Any(), "s-2").Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "unknown role",
			body:      `{"role":"manager"}`,
			setupMock: func(*mocks.MockStaff) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing staff",
			body: `{"name":"Ravi"}`,
			setupMock: func(svc *mocks.MockStaff) {
				svc.EXPECT().Update(gomock.Any(), gomock.Any(), "s-2").Return(failure.NotFound("staff not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockStaff(ctrl)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPatch, "/staff/s-2", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_DeleteStaff(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockStaff(ctrl)

	svc.EXPECT().Delete(gomock.Any(), "s-2").Return(nil)

	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/staff/s-2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
