package stock

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/stock/model"
	"frontdesk/internal/domains/stock/model/dto"
	"frontdesk/internal/domains/stock/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stock
	otel    otel.Otel
}

func New(service service.Stock, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stock", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/{key}", handler.GetItem)
		routerGroup.Patch("/{key}", handler.UpdateItem)
		routerGroup.Post("/{key}/adjust", handler.AdjustItem)
		routerGroup.Delete("/{key}", handler.DeleteItem)
	})
}

// CreateItem adds an item to the store room.
// @Summary Create a stock item
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Item"
// @Success 201 {object} response.Data[dto.ItemResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/stock [post]
// @Security BearerAuth
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	var req dto.CreateItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create stock item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, item)
}

// GetItems lists stock items with their status and shelf value.
// @Summary Get stock items
// @Tags Stock
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "critical, low or normal"
// @Success 200 {object} response.Data[dto.GetItemsResponse]
// @Router /v1/stock [get]
// @Security BearerAuth
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	query := r.URL.Query()

	items, err := handler.service.GetAll(ctx, query.Get(model.FieldCategory), query.Get("status"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetItem retrieves a stock item by name.
// @Summary Get a stock item
// @Tags Stock
// @Produce json
// @Param key path string true "Item name"
// @Success 200 {object} response.Data[dto.ItemResponse]
// @Failure 404 {object} response.Error
// @Router /v1/stock/{key} [get]
// @Security BearerAuth
func (handler *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItem")
	defer scope.End()

	item, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stock item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem changes the catalog data of a stock item.
// @Summary Update a stock item
// @Tags Stock
// @Accept json
// @Produce json
// @Param key path string true "Item name"
// @Param request body dto.UpdateItemRequest true "Changes"
// @Success 200 {object} response.Data[dto.ItemResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/stock/{key} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	var req dto.UpdateItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update stock item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// AdjustItem books a receipt or usage against the quantity on hand.
// @Summary Adjust stock quantity
// @Tags Stock
// @Accept json
// @Produce json
// @Param key path string true "Item name"
// @Param request body dto.AdjustItemRequest true "Signed delta"
// @Success 200 {object} response.Data[dto.ItemResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/stock/{key}/adjust [post]
// @Security BearerAuth
func (handler *Handler) AdjustItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdjustItem")
	defer scope.End()

	var req dto.AdjustItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Adjust(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to adjust stock item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item from the store room.
// @Summary Delete a stock item
// @Tags Stock
// @Produce json
// @Param key path string true "Item name"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/stock/{key} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamKey)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete stock item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Stock item deleted successfully")
}
