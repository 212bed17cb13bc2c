package restaurant

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/restaurant/model"
	"frontdesk/internal/domains/restaurant/model/dto"
	"frontdesk/internal/domains/restaurant/service"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	menu   service.MenuItem
	orders service.Order
	otel   otel.Otel
}

func New(menu service.MenuItem, orders service.Order, otel otel.Otel) Handler {
	return Handler{
		menu:   menu,
		orders: orders,
		otel:   otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/menu", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMenuItem)
		routerGroup.Get("/", handler.GetMenuItems)
		routerGroup.Patch("/{key}", handler.UpdateMenuItem)
		routerGroup.Delete("/{key}", handler.DeleteMenuItem)
	})

	router.Route("/orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOrder)
		routerGroup.Get("/", handler.GetOrders)
		routerGroup.Get("/{id}", handler.GetOrder)
		routerGroup.Patch("/{id}/status", handler.AdvanceOrder)
	})
}

// CreateMenuItem adds a dish to the menu.
// @Summary Create a menu item
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.CreateMenuItemRequest true "Dish"
// @Success 201 {object} response.Data[dto.MenuItemResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/menu [post]
// @Security BearerAuth
func (handler *Handler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMenuItem")
	defer scope.End()

	var req dto.CreateMenuItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.menu.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create menu item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, item)
}

// GetMenuItems lists the menu.
// @Summary Get the menu
// @Tags Restaurant
// @Produce json
// @Param category query string false "Filter by category"
// @Param available query boolean false "Filter by availability"
// @Success 200 {object} response.Data[[]dto.MenuItemResponse]
// @Router /v1/menu [get]
// @Security BearerAuth
func (handler *Handler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMenuItems")
	defer scope.End()

	query := r.URL.Query()

	items, err := handler.menu.GetAll(ctx, query.Get(model.FieldCategory), shared.ConvertStringToBool(query.Get(model.FieldAvailable)))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get menu items")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// UpdateMenuItem changes the category, price or availability of a dish.
// @Summary Update a menu item
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param key path string true "Dish name"
// @Param request body dto.UpdateMenuItemRequest true "Changes"
// @Success 200 {object} response.Data[dto.MenuItemResponse]
// @Failure 404 {object} response.Error
// @Router /v1/menu/{key} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMenuItem")
	defer scope.End()

	var req dto.UpdateMenuItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	item, err := handler.menu.Update(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update menu item")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteMenuItem removes a dish from the menu.
// @Summary Delete a menu item
// @Tags Restaurant
// @Produce json
// @Param key path string true "Dish name"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/menu/{key} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMenuItem")
	defer scope.End()

	if err := handler.menu.Delete(ctx, chi.URLParam(r, constant.RequestParamKey)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete menu item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Menu item deleted successfully")
}

// CreateOrder places an order priced from the current menu.
// @Summary Create an order
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order"
// @Success 201 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Router /v1/orders [post]
// @Security BearerAuth
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	var req dto.CreateOrderRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	order, err := handler.orders.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("order.placed", map[string]any{"order.id": order.ID, "order.table": order.TableNumber})

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders lists orders, newest first.
// @Summary Get all orders
// @Tags Restaurant
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetOrdersResponse]
// @Router /v1/orders [get]
// @Security BearerAuth
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	orders, err := handler.orders.GetAll(ctx, queryParams, r.URL.Query().Get(model.FieldStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// GetOrder retrieves an order by id.
// @Summary Get an order
// @Tags Restaurant
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrder")
	defer scope.End()

	order, err := handler.orders.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// AdvanceOrder moves an order along its lifecycle.
// @Summary Change order status
// @Tags Restaurant
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.AdvanceOrderRequest true "Next status"
// @Success 200 {object} response.Data[dto.OrderResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/orders/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdvanceOrder")
	defer scope.End()

	var req dto.AdvanceOrderRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	order, err := handler.orders.Advance(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to advance order")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}
