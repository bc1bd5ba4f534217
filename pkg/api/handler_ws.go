package api

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/chatstream/pkg/config"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to ConnectionManager.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: wsOriginPatterns(s.cfg),
	})
	if err != nil {
		slog.Warn("WebSocket upgrade rejected", "origin", c.Request().Header.Get("Origin"), "error", err)
		return nil
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}

// wsOriginPatterns allows the dashboard's own host plus any configured
// patterns. Same-host requests are always accepted by websocket.Accept.
func wsOriginPatterns(cfg *config.Config) []string {
	if cfg == nil {
		return nil
	}
	var patterns []string
	if u, err := url.Parse(cfg.DashboardURL); err == nil && u.Host != "" {
		patterns = append(patterns, u.Host)
	}
	return append(patterns, cfg.AllowedWSOrigins...)
}
