package auth

import (
	"context"
	"net/http"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/auth/model/dto"
	"frontdesk/internal/domains/auth/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/validator"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.RefreshToken)
		r.Post("/change-password", handler.ChangePassword)
	})
}

// serve decodes Req, runs call and writes its result with status.
func serve[Req, Res any](
	handler *Handler, w http.ResponseWriter, r *http.Request,
	operation string, status int,
	call func(ctx context.Context, req Req) (Res, error),
) (Res, bool) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	var (
		req  Req
		zero Res
	)

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("operation", operation).Msg("invalid auth request")
		response.WithError(w, err)

		return zero, false
	}

	res, err := call(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("operation", operation).Msg("auth request failed")
		response.WithError(w, err)

		return zero, false
	}

	response.WithJSON(w, status, res)

	return res, true
}

// Register creates a staff account. Admin only.
// @Summary Register staff
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.RegisterResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/auth/register [post]
// @Security BearerAuth
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	res, ok := serve(handler, w, r, "Register", http.StatusCreated, handler.service.Register)
	if ok {
		log.Info().Str("staff_id", res.ID).Msg("staff registered")
	}
}

// Login authenticates staff and tells the client where to land.
// @Summary Staff login
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.LoginResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	res, ok := serve(handler, w, r, "Login", http.StatusOK, handler.service.Login)
	if ok {
		log.Info().Str("role", res.Role).Str("redirect", res.Redirect).Msg("staff logged in")
	}
}

// RefreshToken exchanges a refresh token for a new pair.
// @Summary Refresh token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.RefreshTokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")

	serve(handler, w, r, "RefreshToken", http.StatusOK, handler.service.RefreshToken)
}

// ChangePassword updates the signed-in staff member's password.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/change-password [post]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
