package staff

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/staff/model"
	"frontdesk/internal/domains/staff/model/dto"
	"frontdesk/internal/domains/staff/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Get("/{id}", handler.GetStaffByID)
		routerGroup.Patch("/{id}", handler.UpdateStaff)
		routerGroup.Delete("/{id}", handler.DeleteStaff)
	})
}

// GetStaff lists staff accounts.
// @Summary Get all staff
// @Tags Staff
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role"
// @Success 200 {object} response.Data[dto.GetStaffResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/staff [get]
// @Security BearerAuth
func (handler *Handler) GetStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true, model.FieldName, model.FieldEmail, model.FieldRole, constant.FieldCreatedAt)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if role := request.URL.Query().Get(model.FieldRole); role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetStaffByID retrieves one staff account.
// @Summary Get staff by id
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Data[dto.StaffResponse]
// @Failure 404 {object} response.Error
// @Router /v1/staff/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetStaffByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaffByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateStaff changes name, role or active flag.
// @Summary Update staff
// @Tags Staff
// @Accept json
// @Produce json
// @Param id path string true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Changes"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/staff/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	req := dto.UpdateStaffRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Staff updated successfully")
}

// DeleteStaff removes a staff account.
// @Summary Delete staff
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/staff/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Staff deleted successfully")
}
