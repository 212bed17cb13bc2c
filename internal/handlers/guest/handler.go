package guest

import (
	"errors"
	"mime"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/model/dto"
	"frontdesk/internal/domains/guest/service"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateGuest)
		routerGroup.Get("/", handler.GetGuests)
		routerGroup.Get("/{id}", handler.GetGuest)
		routerGroup.Patch("/{id}", handler.UpdateGuest)
		routerGroup.Delete("/{id}", handler.DeleteGuest)
		routerGroup.Post("/{id}/history", handler.AppendHistory)
	})
}

// CreateGuest registers a guest profile. A scanned id proof may be attached as id_proof_file.
// @Summary Create a guest
// @Tags Guest
// @Accept json,mpfd
// @Produce json
// @Param request body dto.CreateGuestRequest true "Guest"
// @Param id_proof_file formData file false "Scanned id proof"
// @Success 201 {object} response.Data[dto.GuestResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [post]
// @Security BearerAuth
func (handler *Handler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateGuest")
	defer scope.End()

	var req dto.CreateGuestRequest

	err := decode(r, &req, func(form *http.Request) {
		req.Name = form.FormValue(model.FieldName)
		req.Phone = form.FormValue(model.FieldPhone)
		req.Email = form.FormValue(model.FieldEmail)
		req.Address = form.FormValue(model.FieldAddress)
		req.IDProof = form.FormValue(model.FieldIDProof)
		req.History = form.MultipartForm.Value[model.FieldHistory]
	}, &req.IDProofUpload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}
	defer req.IDProofUpload.Close()

	guest, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, guest)
}

// GetGuests lists guest profiles.
// @Summary Get all guests
// @Tags Guest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param phone query string false "Filter by phone"
// @Success 200 {object} response.Data[dto.GetGuestsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, model.FieldName, model.FieldPhone, constant.FieldCreatedAt)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldName, model.FieldPhone} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	guests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guests)
}

// GetGuest retrieves a guest by id.
// @Summary Get a guest
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestResponse]
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuest")
	defer scope.End()

	guest, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateGuest edits a guest profile.
// @Summary Update a guest
// @Tags Guest
// @Accept json,mpfd
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Changes"
// @Param id_proof_file formData file false "Scanned id proof"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	var req dto.UpdateGuestRequest

	err := decode(r, &req, func(form *http.Request) {
		req.Name = form.FormValue(model.FieldName)
		req.Phone = form.FormValue(model.FieldPhone)
		req.Email = form.FormValue(model.FieldEmail)
		req.Address = form.FormValue(model.FieldAddress)
		req.IDProof = form.FormValue(model.FieldIDProof)
	}, &req.IDProofUpload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}
	defer req.IDProofUpload.Close()

	if err = handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// AppendHistory adds one entry to a guest's booking history.
// @Summary Append guest history
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path string true "Guest ID"
// @Param request body dto.AppendHistoryRequest true "Entry"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id}/history [post]
// @Security BearerAuth
func (handler *Handler) AppendHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AppendHistory")
	defer scope.End()

	var req dto.AppendHistoryRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AppendHistory(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to append guest history")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest history updated successfully")
}

// DeleteGuest removes a guest profile and its stored id proof.
// @Summary Delete a guest
// @Tags Guest
// @Produce json
// @Param id path string true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}

// decode fills req from a JSON body, or from form fields plus an optional id_proof_file for multipart bodies.
func decode[T any](r *http.Request, req *T, fromForm func(form *http.Request), upload *dto.IDProofUpload) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get(constant.RequestHeaderContentType))
	if mediaType != constant.ContentTypeMultipartFormData {
		return validator.Validate(r.Body, req) //nolint:wrapcheck
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	fromForm(r)

	file, fileHeader, err := r.FormFile(constant.FormFileIDProof)

	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		return failure.BadRequest(err) //nolint:wrapcheck
	default:
		upload.File = file
		upload.IDProofFile = fileHeader
	}

	return validator.ValidateStruct(req) //nolint:wrapcheck
}
