package hall

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/hall/model"
	"frontdesk/internal/domains/hall/model/dto"
	"frontdesk/internal/domains/hall/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hall
	otel    otel.Otel
}

func New(service service.Hall, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/halls", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHall)
		routerGroup.Get("/", handler.GetHalls)
		routerGroup.Get("/{key}", handler.GetHall)
		routerGroup.Patch("/{key}", handler.UpdateHall)
		routerGroup.Delete("/{key}", handler.DeleteHall)
		routerGroup.Post("/{key}/book", handler.BookHall)
		routerGroup.Post("/{key}/release", handler.ReleaseHall)
	})
}

// CreateHall adds a hall to the catalog.
// @Summary Create a hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.CreateHallRequest true "Hall"
// @Success 201 {object} response.Data[dto.HallResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/halls [post]
// @Security BearerAuth
func (handler *Handler) CreateHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHall")
	defer scope.End()

	var req dto.CreateHallRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	hall, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, hall)
}

// GetHalls lists halls with lapsed bookings already released.
// @Summary Get all halls
// @Tags Hall
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetHallsResponse]
// @Router /v1/halls [get]
// @Security BearerAuth
func (handler *Handler) GetHalls(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHalls")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	halls, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(model.FieldStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get halls")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, halls)
}

// GetHall retrieves a hall by name.
// @Summary Get a hall
// @Tags Hall
// @Produce json
// @Param key path string true "Hall name"
// @Success 200 {object} response.Data[dto.HallResponse]
// @Failure 404 {object} response.Error
// @Router /v1/halls/{key} [get]
// @Security BearerAuth
func (handler *Handler) GetHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHall")
	defer scope.End()

	hall, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hall)
}

// UpdateHall changes capacity, facilities, rate or status.
// @Summary Update a hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param key path string true "Hall name"
// @Param request body dto.UpdateHallRequest true "Changes"
// @Success 200 {object} response.Data[dto.HallResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/halls/{key} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHall")
	defer scope.End()

	var req dto.UpdateHallRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	hall, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hall)
}

// BookHall reserves an available hall for an event.
// @Summary Book a hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param key path string true "Hall name"
// @Param request body dto.BookHallRequest true "Event"
// @Success 200 {object} response.Data[dto.HallResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/halls/{key}/book [post]
// @Security BearerAuth
func (handler *Handler) BookHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookHall")
	defer scope.End()

	var req dto.BookHallRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	hall, err := handler.service.Book(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book hall")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("hall.booked", map[string]any{"hall.name": hall.Name})

	response.WithJSON(w, http.StatusOK, hall)
}

// ReleaseHall ends the current booking.
// @Summary Release a hall
// @Tags Hall
// @Accept json
// @Produce json
// @Param key path string true "Hall name"
// @Param request body dto.ReleaseHallRequest false "Next status"
// @Success 200 {object} response.Data[dto.HallResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/halls/{key}/release [post]
// @Security BearerAuth
func (handler *Handler) ReleaseHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReleaseHall")
	defer scope.End()

	var req dto.ReleaseHallRequest
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	}

	hall, err := handler.service.Release(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to release hall")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, hall)
}

// DeleteHall removes a hall that is not booked.
// @Summary Delete a hall
// @Tags Hall
// @Produce json
// @Param key path string true "Hall name"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/halls/{key} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHall")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamKey)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hall")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hall deleted successfully")
}
