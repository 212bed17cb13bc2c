package middleware

import (
	"fmt"
	"net/http"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/appstate"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
	StateGate(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
	state  *appstate.Container
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache, state *appstate.Container) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
		state:  state,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		if requestID := chiMiddleware.GetReqID(r.Context()); requestID != "" {
			w.Header().Set(constant.RequestHeaderRequestID, requestID)
			scope.SetAttribute("http.request_id", requestID)
		}

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": ww.Status(),
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("%s %s responded %d", r.Method, r.URL.Path, ww.Status()))
		}
	})
}

// StateGate answers 503 until the state container has finished its first load.
func (a *appMiddleware) StateGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.state != nil && a.state.Loading() {
			w.Header().Set(constant.ResponseHeaderRetryAfter, "1")
			response.WithStateLoading(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}
