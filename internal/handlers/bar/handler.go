package bar

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/bar/model"
	"frontdesk/internal/domains/bar/model/dto"
	"frontdesk/internal/domains/bar/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Bar
	otel    otel.Otel
}

func New(service service.Bar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bar", func(routerGroup chi.Router) {
		routerGroup.Post("/products", handler.CreateProduct)
		routerGroup.Get("/products", handler.GetProducts)
		routerGroup.Patch("/products/{key}", handler.UpdateProduct)
		routerGroup.Delete("/products/{key}", handler.DeleteProduct)
		routerGroup.Post("/sales", handler.RecordSale)
		routerGroup.Get("/sales", handler.GetSales)
	})
}

// CreateProduct adds a product to the bar inventory.
// @Summary Create a bar product
// @Tags Bar
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Product"
// @Success 201 {object} response.Data[dto.ProductResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bar/products [post]
// @Security BearerAuth
func (handler *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProduct")
	defer scope.End()

	var req dto.CreateProductRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	product, err := handler.service.CreateProduct(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create bar product")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, product)
}

// GetProducts lists the bar inventory with stock status.
// @Summary Get bar products
// @Tags Bar
// @Produce json
// @Param status query string false "good, low or critical"
// @Success 200 {object} response.Data[[]dto.ProductResponse]
// @Router /v1/bar/products [get]
// @Security BearerAuth
func (handler *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProducts")
	defer scope.End()

	products, err := handler.service.GetProducts(ctx, r.URL.Query().Get("status"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bar products")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, products)
}

// UpdateProduct changes price, stock or thresholds of a product.
// @Summary Update a bar product
// @Tags Bar
// @Accept json
// @Produce json
// @Param key path string true "Product name"
// @Param request body dto.UpdateProductRequest true "Changes"
// @Success 200 {object} response.Data[dto.ProductResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bar/products/{key} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProduct")
	defer scope.End()

	var req dto.UpdateProductRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	product, err := handler.service.UpdateProduct(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update bar product")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product from the inventory.
// @Summary Delete a bar product
// @Tags Bar
// @Produce json
// @Param key path string true "Product name"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/bar/products/{key} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProduct")
	defer scope.End()

	if err := handler.service.DeleteProduct(ctx, chi.URLParam(r, constant.RequestParamKey)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete bar product")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Bar product deleted successfully")
}

// RecordSale books a sale and takes it off the stock.
// @Summary Record a bar sale
// @Tags Bar
// @Accept json
// @Produce json
// @Param request body dto.RecordSaleRequest true "Sale"
// @Success 201 {object} response.Data[dto.SaleResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bar/sales [post]
// @Security BearerAuth
func (handler *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordSale")
	defer scope.End()

	var req dto.RecordSaleRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	sale, err := handler.service.RecordSale(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record bar sale")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, sale)
}

// GetSales lists sales, newest first, with their revenue.
// @Summary Get bar sales
// @Tags Bar
// @Produce json
// @Param product query string false "Filter by product"
// @Param date query string false "Filter by day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.GetSalesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bar/sales [get]
// @Security BearerAuth
func (handler *Handler) GetSales(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSales")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date != constant.Empty {
		if err := validator.ValidateVar(date, "datetime=2006-01-02"); err != nil {
			scope.TraceError(err)

			response.WithError(w, err)

			return
		}
	}

	sales, err := handler.service.GetSales(ctx, r.URL.Query().Get(model.FieldProduct), date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bar sales")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sales)
}
