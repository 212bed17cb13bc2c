package room

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/internal/domains/room/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{key}", handler.GetRoom)
		routerGroup.Patch("/{key}", handler.UpdateRoom)
		routerGroup.Delete("/{key}", handler.DeleteRoom)
		routerGroup.Post("/{key}/occupy", handler.OccupyRoom)
		routerGroup.Post("/{key}/checkout", handler.CheckoutRoom)
		routerGroup.Post("/{key}/payments", handler.RecordPayment)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("room.created", map[string]any{"user": user})

	response.WithJSON(w, http.StatusCreated, room)
}

// GetRooms lists rooms with their occupancy resolved against the current time.
// @Summary Get all rooms
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rooms, err := handler.service.GetAll(ctx, queryParams, r.URL.Query().Get(model.FieldStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoom retrieves a room by its number.
// @Summary Get a room
// @Tags Room
// @Produce json
// @Param key path string true "Room number"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{key} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// UpdateRoom changes the type, rate or housekeeping status of a room.
// @Summary Update a room
// @Tags Room
// @Accept json
// @Produce json
// @Param key path string true "Room number"
// @Param request body dto.UpdateRoomRequest true "Changes"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{key} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	var req dto.UpdateRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// OccupyRoom checks a guest into an available room.
// @Summary Check a guest in
// @Tags Room
// @Accept json
// @Produce json
// @Param key path string true "Room number"
// @Param request body dto.OccupyRoomRequest true "Stay"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{key}/occupy [post]
// @Security BearerAuth
func (handler *Handler) OccupyRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OccupyRoom")
	defer scope.End()

	var req dto.OccupyRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.Occupy(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to occupy room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("room.checked_in", map[string]any{"room.number": room.Number})

	response.WithJSON(w, http.StatusOK, room)
}

// CheckoutRoom ends the current stay.
// @Summary Check a guest out
// @Tags Room
// @Accept json
// @Produce json
// @Param key path string true "Room number"
// @Param request body dto.CheckoutRoomRequest false "Next status"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{key}/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckoutRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutRoom")
	defer scope.End()

	var req dto.CheckoutRoomRequest
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request")

			response.WithError(w, err)

			return
		}
	}

	room, err := handler.service.Checkout(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("room.checked_out", map[string]any{"room.number": room.Number})

	response.WithJSON(w, http.StatusOK, room)
}

// RecordPayment appends a payment to the room ledger.
// @Summary Record a payment
// @Tags Room
// @Accept json
// @Produce json
// @Param key path string true "Room number"
// @Param request body dto.RecordPaymentRequest true "Payment"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{key}/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	var req dto.RecordPaymentRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	room, err := handler.service.RecordPayment(ctx, req, chi.URLParam(r, constant.RequestParamKey))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// DeleteRoom removes a room that is not occupied.
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param key path string true "Room number"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{key} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamKey)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("room.deleted", map[string]any{"user": user})

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
