package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"
)

// window is one client's fixed rate-limit window.
type window struct {
	Count   int   `json:"count"`
	ResetAt int64 `json:"reset_at"`
}

// RateLimit counts requests per client IP and user agent in fixed windows.
// The cache is best effort: when it fails the request goes through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			now := time.Now()

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

			var current window

			err := a.cache.Get(r.Context(), cacheKey, &current)

			switch {
			case errors.Is(err, cache.Nil) || (err == nil && current.ResetAt <= now.Unix()):
				current = window{Count: 1, ResetAt: now.Add(time.Duration(windowSecs) * time.Second).Unix()}
			case err != nil:
				next.ServeHTTP(w, r)

				return
			default:
				current.Count++
			}

			remainingSecs := int(max(current.ResetAt-now.Unix(), 1))

			if current.Count > maxReqs {
				w.Header().Set(constant.ResponseHeaderRetryAfter, strconv.Itoa(remainingSecs))
				response.WithRequestLimitExceeded(w)

				return
			}

			// the ttl shrinks with the window so later requests never extend it
			if err := a.cache.Save(r.Context(), cacheKey, current, remainingSecs); err != nil {
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-current.Count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

// getClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then RemoteAddr.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
