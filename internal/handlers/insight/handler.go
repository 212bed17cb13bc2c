package insight

import (
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/insight/model/dto"
	"frontdesk/internal/domains/insight/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Insight
	otel    otel.Otel
}

func New(service service.Insight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/insights/trends", handler.Trends)
	router.Get("/dashboard", handler.Dashboard)
}

// Trends asks the model to flag unusual month over month changes.
// @Summary Analyse KPI trends
// @Tags Insight
// @Accept json
// @Produce json
// @Param request body dto.TrendsRequest true "KPIs"
// @Success 200 {object} dto.TrendsResponse
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/insights/trends [post]
// @Security BearerAuth
func (handler *Handler) Trends(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Trends")
	defer scope.End()

	var req dto.TrendsRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Trends(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to analyse trends")

		response.WithError(w, err)

		return
	}

	response.WithBody(w, http.StatusOK, res)
}

// Dashboard summarises the live collections.
// @Summary Dashboard summary
// @Tags Insight
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 503 {object} response.Message
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
