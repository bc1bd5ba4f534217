package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/chatstream/pkg/config"
	"github.com/codeready-toolchain/chatstream/pkg/stream"
)

// streamInteractionHandler handles GET /api/v1/interactions/:id/stream.
//
// It polls the interaction and writes one frame per line:
//   - answer_stream with the full answer whenever it changes
//   - the </stream> sentinel once the interaction is completed
//   - error, then stop, when the interaction can no longer be read or the
//     stream outlives direct_stream.max_duration
//
// An unknown interaction is rejected with a plain HTTP error before the
// stream starts.
func (s *Server) streamInteractionHandler(c *echo.Context) error {
	interactionID := c.Param("id")
	if interactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "interaction id is required")
	}

	reqCtx := c.Request().Context()
	interaction, err := s.interactionService.GetInteraction(reqCtx, interactionID)
	if err != nil {
		return mapServiceError(err)
	}

	cfg := s.directStreamConfig()
	ctx, cancel := context.WithTimeout(reqCtx, cfg.MaxDuration)
	defer cancel()

	w := newFrameWriter(c.Response())
	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	log := slog.With("interaction_id", interactionID)
	log.Debug("Direct stream started")

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	var sent string
	for {
		if interaction.Answer != sent {
			if err := w.frame(stream.Frame{Type: stream.FrameAnswerStream, Content: interaction.Answer}); err != nil {
				log.Debug("Direct stream client went away", "error", err)
				return nil
			}
			sent = interaction.Answer
		}

		if interaction.Completed {
			if err := w.line(stream.StreamSentinel); err != nil {
				log.Debug("Direct stream client went away", "error", err)
			}
			log.Debug("Direct stream completed")
			return nil
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) && reqCtx.Err() == nil {
				log.Warn("Direct stream exceeded maximum duration", "max_duration", cfg.MaxDuration)
				_ = w.frame(stream.Frame{
					Type:    stream.FrameError,
					Message: fmt.Sprintf("stream exceeded maximum duration of %s", cfg.MaxDuration),
				})
			}
			return nil
		case <-ticker.C:
		}

		next, err := s.interactionService.GetInteraction(ctx, interactionID)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			log.Warn("Direct stream lookup failed", "error", err)
			_ = w.frame(stream.Frame{Type: stream.FrameError, Message: "failed to read interaction"})
			return nil
		}
		interaction = next
	}
}

func (s *Server) directStreamConfig() *config.DirectStreamConfig {
	if s.cfg != nil && s.cfg.DirectStream != nil {
		return s.cfg.DirectStream
	}
	return config.DefaultDirectStreamConfig()
}

// frameWriter writes "data: " lines and flushes after each one.
type frameWriter struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func newFrameWriter(w http.ResponseWriter) *frameWriter {
	return &frameWriter{w: w, rc: http.NewResponseController(w)}
}

func (f *frameWriter) frame(fr stream.Frame) error {
	data, err := json.Marshal(fr)
	if err != nil {
		return err
	}
	return f.line(string(data))
}

func (f *frameWriter) line(data string) error {
	if _, err := fmt.Fprintf(f.w, "data: %s\n\n", data); err != nil {
		return err
	}
	if err := f.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	return nil
}
