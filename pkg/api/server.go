// Package api serves the hub's REST, WebSocket and direct-stream endpoints.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/chatstream/pkg/config"
	"github.com/codeready-toolchain/chatstream/pkg/database"
	"github.com/codeready-toolchain/chatstream/pkg/events"
	"github.com/codeready-toolchain/chatstream/pkg/services"
	"github.com/codeready-toolchain/chatstream/pkg/slack"
)

// EventPublisher is the subset of events.EventPublisher the handlers use.
type EventPublisher interface {
	PublishStatusUpdate(ctx context.Context, payload events.StatusUpdatePayload) error
	PublishInteractionUpdated(ctx context.Context, payload events.InteractionUpdatedPayload) error
	PublishInteractionCompleted(ctx context.Context, payload events.InteractionCompletedPayload) error
	PublishSourceCreated(ctx context.Context, payload events.SourceCreatedPayload) error
	PublishArtifactCreated(ctx context.Context, payload events.ArtifactCreatedPayload) error
	PublishInteractionCreated(ctx context.Context, payload events.InteractionCreatedPayload) error
	PublishQueueStatus(ctx context.Context, payload events.QueueStatusPayload) error
}

// InteractionPurger schedules removal of a completed interaction's events.
// Implemented by *cleanup.Service.
type InteractionPurger interface {
	ScheduleInteractionPurge(interactionID string)
}

// Server is the hub's HTTP server.
type Server struct {
	cfg        *config.Config
	echo       *echo.Echo
	httpServer *http.Server

	dbClient           *database.Client
	interactionService *services.InteractionService
	resourceService    *services.ResourceService
	stepService        *services.StepService
	queueService       *services.QueueService
	connManager        *events.ConnectionManager

	eventPublisher EventPublisher
	slackService   *slack.Service // nil-safe
	purger         InteractionPurger
}

// NewServer creates the server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	interactionService *services.InteractionService,
	resourceService *services.ResourceService,
	stepService *services.StepService,
	queueService *services.QueueService,
	connManager *events.ConnectionManager,
) *Server {
	s := &Server{
		cfg:                cfg,
		echo:               echo.New(),
		dbClient:           dbClient,
		interactionService: interactionService,
		resourceService:    resourceService,
		stepService:        stepService,
		queueService:       queueService,
		connManager:        connManager,
	}
	s.setupRoutes()
	return s
}

// SetEventPublisher wires the publisher used to broadcast every mutation.
func (s *Server) SetEventPublisher(p EventPublisher) {
	s.eventPublisher = p
}

// SetSlackService wires completion notifications. A nil service disables them.
func (s *Server) SetSlackService(svc *slack.Service) {
	s.slackService = svc
}

// SetInteractionPurger wires post-completion event cleanup.
func (s *Server) SetInteractionPurger(p InteractionPurger) {
	s.purger = p
}

// ValidateWiring reports missing dependencies that would make handlers fail.
func (s *Server) ValidateWiring() error {
	var errs []error
	if s.dbClient == nil {
		errs = append(errs, errors.New("database client is not set"))
	}
	if s.interactionService == nil || s.resourceService == nil || s.stepService == nil || s.queueService == nil {
		errs = append(errs, errors.New("services are not set"))
	}
	if s.eventPublisher == nil {
		errs = append(errs, errors.New("event publisher is not set"))
	}
	if s.connManager == nil {
		errs = append(errs, errors.New("connection manager is not set"))
	}
	return errors.Join(errs...)
}

func (s *Server) setupRoutes() {
	s.echo.Use(securityHeaders())
	s.echo.Use(requestLogger())

	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/ws", s.wsHandler)

	v1 := s.echo.Group("/api/v1")

	v1.POST("/sessions/:id/interactions", s.createInteractionHandler)
	v1.GET("/sessions/:id/interactions", s.listInteractionsHandler)
	v1.POST("/sessions/:id/artifacts", s.createArtifactHandler)
	v1.GET("/sessions/:id/artifacts", s.listArtifactsHandler)

	v1.GET("/interactions/:id", s.getInteractionHandler)
	v1.PATCH("/interactions/:id", s.updateInteractionHandler)
	v1.POST("/interactions/:id/status", s.statusUpdateHandler)
	v1.POST("/interactions/:id/complete", s.completeInteractionHandler)
	v1.GET("/interactions/:id/steps", s.listStepsHandler)
	v1.POST("/interactions/:id/sources", s.createSourceHandler)
	v1.GET("/interactions/:id/sources", s.listSourcesHandler)
	v1.PUT("/interactions/:id/queue", s.setQueueStatusHandler)
	v1.GET("/interactions/:id/queue", s.getQueueStatusHandler)
	v1.GET("/interactions/:id/stream", s.streamInteractionHandler)
}

// Handler returns the root HTTP handler (used by tests and embedding).
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves HTTP on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func nowTimestamp() string {
	return time.Now().Format(time.RFC3339Nano)
}
