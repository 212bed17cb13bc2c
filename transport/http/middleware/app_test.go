package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/config"
	otelMocks "frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/appstate"
	"frontdesk/shared/cache"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/middleware"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func okHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

func TestStateGate(t *testing.T) {
	cfg := &config.Config{}
	state := appstate.New(cfg, otelMocks.NewOtel(), appstate.Sources{})
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil, state)
	handler := app.StateGate(okHandler(http.StatusOK))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(constant.ResponseHeaderRetryAfter))
	assert.Contains(t, rec.Body.String(), constant.ResponseErrorStateLoading)

	assert.NoError(t, state.Load(context.Background()))

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	future := time.Now().Add(time.Minute).Unix()
	past := time.Now().Add(-time.Minute).Unix()

	fill := func(count int, resetAt int64) func(context.Context, string, any) error {
		return func(_ context.Context, _ string, value any) error {
			raw, _ := json.Marshal(map[string]any{"count": count, "reset_at": resetAt})

			return json.Unmarshal(raw, value)
		}
	}

	tests := []struct {
		name          string
		setupMock     func(c *cacheMocks.MockRedisCache)
		wantCode      int
		wantRemaining string
		wantRetry     bool
	}{
		{
			name: "first request opens the window",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ string, _ any, ttl int) error {
					assert.InDelta(t, 60, ttl, 1)

					return nil
				})
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name: "counts within the window",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fill(1, future))
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "1",
		},
		{
			name: "limit reached",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fill(3, future))
			},
			wantCode:  http.StatusTooManyRequests,
			wantRetry: true,
		},
		{
			name: "lapsed window starts over",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(fill(9, past))
				c.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode:      http.StatusOK,
			wantRemaining: "2",
		},
		{
			name: "cache outage lets the request through",
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redis := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(redis)

			cfg := &config.Config{}
			cfg.App.RateLimiter.Enable = true
			cfg.App.RateLimiter.MaxRequests = 3
			cfg.App.RateLimiter.WindowSeconds = 60

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redis, nil)

			req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.7, 10.0.0.1")

			rec := httptest.NewRecorder()
			app.RateLimit()(okHandler(http.StatusOK)).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantRemaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
			assert.Equal(t, tt.wantRetry, rec.Header().Get(constant.ResponseHeaderRetryAfter) != "")
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil, nil)

	rec := httptest.NewRecorder()
	app.RateLimit()(okHandler(http.StatusAccepted)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTracing(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr bool
	}{
		{name: "success", code: http.StatusOK},
		{name: "client error is not traced as failure", code: http.StatusNotFound},
		{name: "server error", code: http.StatusInternalServerError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracer, recorder := otelMocks.NewRecorder()
			app := middleware.NewAppMiddleware(tracer, &config.Config{}, nil, nil)

			rec := httptest.NewRecorder()
			app.Tracing(okHandler(tt.code)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bar/sales", nil))

			assert.Equal(t, tt.code, rec.Code)

			span := recorder.Span("GET /v1/bar/sales")
			if !assert.NotNil(t, span) {
				return
			}

			assert.True(t, span.Ended)
			assert.Equal(t, tt.code, span.Attributes["http.status_code"])
			assert.Equal(t, tt.wantErr, span.Err != nil)
		})
	}
}

func TestTracing_EchoesRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil, nil)
	handler := chiMiddleware.RequestID(app.Tracing(okHandler(http.StatusOK)))

	req := httptest.NewRequest(http.MethodGet, "/v1/rooms", nil)
	req.Header.Set(constant.RequestHeaderRequestID, "desk-42")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "desk-42", rec.Header().Get(constant.RequestHeaderRequestID))
}
