package note

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/note/model/dto"
	"frontdesk/internal/domains/note/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Note
	otel    otel.Otel
}

func New(service service.Note, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notes", func(routerGroup chi.Router) {
		routerGroup.Get("/{date}", handler.GetNote)
		routerGroup.Put("/{date}", handler.PutNote)
	})
}

func date(r *http.Request) (string, error) {
	value := chi.URLParam(r, constant.RequestParamDate)

	return value, validator.ValidateVar(value, "datetime=2006-01-02")
}

// GetNote returns the note of a day, empty when none was written.
// @Summary Get the daily note
// @Tags Note
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Success 200 {object} response.Data[dto.NoteResponse]
// @Failure 400 {object} response.Error
// @Router /v1/notes/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNote")
	defer scope.End()

	day, err := date(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	note, err := handler.service.Get(ctx, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily note")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, note)
}

// PutNote replaces the note of a day.
// @Summary Save the daily note
// @Tags Note
// @Accept json
// @Produce json
// @Param date path string true "Day, YYYY-MM-DD"
// @Param request body dto.PutNoteRequest true "Note"
// @Success 200 {object} response.Data[dto.NoteResponse]
// @Failure 400 {object} response.Error
// @Router /v1/notes/{date} [put]
// @Security BearerAuth
func (handler *Handler) PutNote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PutNote")
	defer scope.End()

	day, err := date(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	var req dto.PutNoteRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	note, err := handler.service.Put(ctx, req, day)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save daily note")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, note)
}
