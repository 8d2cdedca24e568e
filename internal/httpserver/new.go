package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	trackerHTTP "apply-tracker/internal/tracker/delivery/http"
	"apply-tracker/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	apiKey      string

	// Tracker domain
	trackerHandler trackerHTTP.Handler

	// Sheet-edit webhook
	webhookHandler interface {
		HandleSheetEdit(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIKey      string

	// Tracker domain
	TrackerHandler trackerHTTP.Handler

	// Sheet-edit webhook; nil disables the route
	WebhookHandler interface {
		HandleSheetEdit(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		apiKey:         cfg.APIKey,
		trackerHandler: cfg.TrackerHandler,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.trackerHandler == nil {
		return errors.New("tracker handler is required")
	}
	return nil
}
