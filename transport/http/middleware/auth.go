package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/permissions"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// internalCall marks requests that presented the service API key.
type internalCall struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

var tokenMessages = []struct {
	err     error
	message string
}{
	{jwt.ErrExpiredToken, "Token has expired"},
	{jwt.ErrInvalidToken, "Invalid token"},
	{jwt.ErrInvalidClaim, "Invalid token claims"},
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// routePattern resolves the registered chi pattern for the request, e.g. /v1/staff/{id}.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}

func isInternal(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCall{}).(bool)

	return internal
}

func deny(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(writer, err)
}

func tokenMessage(err error) string {
	for _, m := range tokenMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}

	return "Token validation failed"
}

// Auth resolves the bearer token into the staff identity stored in the request context.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		path := routePattern(request)

		if isInternal(ctx) || (m.permission != nil && m.permission.FindPermissions(path, request.Method).Skip) {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			deny(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			deny(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, token, jwt.AccessToken)
		if err != nil {
			deny(writer, scope, failure.Unauthorized(tokenMessage(err)))

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("token_id", claims.TokenID).Msg("token claims missing identity")
			deny(writer, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		scope.SetAttribute("user.role", claims.Role)

		ctx = request.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the role placed in the context by Auth against the endpoint permissions.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if isInternal(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		if m.permission == nil {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		permission := m.permission.FindPermissions(routePattern(request), request.Method)
		if m.permission.Skip || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(userRole) {
			scope.SetAttributes(map[string]any{
				"user.role":     userRole,
				"allowed_roles": permission.Permissions,
			})
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey lets internal callers through with the shared key; requests without one continue to Auth.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			deny(writer, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request.WithContext(context.WithValue(request.Context(), internalCall{}, true)))
	})
}
