package quote

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/quote/model/dto"
	"frontdesk/internal/domains/quote/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Quote
	otel    otel.Otel
}

func New(service service.Quote, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/quotes", func(routerGroup chi.Router) {
		routerGroup.Post("/room", handler.QuoteRoom)
		routerGroup.Post("/hall", handler.QuoteHall)
		routerGroup.Get("/add-ons", handler.GetAddOns)
	})
}

// QuoteRoom previews the charge of a stay.
// @Summary Quote a room stay
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.QuoteRoomRequest true "Stay"
// @Success 200 {object} response.Data[billing.RoomQuote]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/quotes/room [post]
// @Security BearerAuth
func (handler *Handler) QuoteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteRoom")
	defer scope.End()

	var req dto.QuoteRoomRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Room(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// QuoteHall previews the charge of an event.
// @Summary Quote a hall booking
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.QuoteHallRequest true "Event"
// @Success 200 {object} response.Data[billing.HallQuote]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/quotes/hall [post]
// @Security BearerAuth
func (handler *Handler) QuoteHall(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".QuoteHall")
	defer scope.End()

	var req dto.QuoteHallRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Hall(ctx, req)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// GetAddOns lists the hall add-on catalog.
// @Summary Hall add-on catalog
// @Tags Quote
// @Produce json
// @Success 200 {object} response.Data[[]billing.AddOn]
// @Router /v1/quotes/add-ons [get]
// @Security BearerAuth
func (handler *Handler) GetAddOns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAddOns")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.AddOns(ctx))
}
