package booking

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the public booking endpoints. Payloads are bare objects.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/book-room", handler.BookRoom)
	router.Get("/bookings", handler.GetBookings)
}

// BookRoom records a new booking.
// @Summary Book a room
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/book-room [post]
func (handler *Handler) BookRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("booking.created", map[string]any{"room.id": booking.RoomID})

	response.WithBody(w, http.StatusCreated, booking)
}

// GetBookings lists every booking.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithBody(w, http.StatusOK, bookings)
}
