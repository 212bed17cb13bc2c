package restaurant_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/restaurant/model/dto"
	"frontdesk/internal/domains/restaurant/service/mocks"
	"frontdesk/internal/handlers/restaurant"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetMenuItemsFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	menu := mocks.NewMockMenuItem(ctrl)
	menu.EXPECT().GetAll(gomock.Any(), "Mains", gomock.Not(gomock.Nil())).Return([]dto.MenuItemResponse{{Name: "Dal Makhani"}}, nil)

	handler := restaurant.New(menu, mocks.NewMockOrder(ctrl), otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu?category=Mains&available=true", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dal Makhani")
}

func TestHandler_AdvanceOrderRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := restaurant.New(mocks.NewMockMenuItem(ctrl), mocks.NewMockOrder(ctrl), otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/orders/o-1/status", strings.NewReader(`{"status":"eaten"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
