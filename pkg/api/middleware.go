package api

import (
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// requestLogger logs every request that changes state, and every request
// that fails, with the acting identity from the auth proxy headers.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			if err == nil && (req.Method == http.MethodGet || req.Method == http.MethodHead) {
				return nil
			}
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"actor", requestActor(req),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				slog.Info("HTTP request failed", append(attrs, "error", err)...)
			} else {
				slog.Debug("HTTP request", attrs...)
			}
			return err
		}
	}
}

// requestActor extracts the caller from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy) > "api-client"
func requestActor(r *http.Request) string {
	for _, h := range []string{"X-Forwarded-User", "X-Forwarded-Email", "X-Remote-User"} {
		if v := r.Header.Get(h); v != "" {
			return v
		}
	}
	return "api-client"
}
