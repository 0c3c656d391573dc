package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"gcal-relay/internal/event"
	"gcal-relay/pkg/gauth"
	"gcal-relay/pkg/gcalendar"
	"gcal-relay/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin           *gin.Engine
	l             log.Logger
	port          int
	mode          string
	environment   string
	allowedOrigin string

	// Storage
	db *sql.DB

	// Google
	gateway     gcalendar.Gateway
	exchanger   gauth.Exchanger
	oauthClient event.OAuthClient
}

// Config is the dependency bag passed to New().
type Config struct {
	Port          int
	Mode          string
	Environment   string
	AllowedOrigin string

	DB *sql.DB

	Gateway     gcalendar.Gateway
	Exchanger   gauth.Exchanger
	OAuthClient event.OAuthClient
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	engine := gin.New()
	// Route on the encoded path; handlers decode ids themselves.
	engine.UseRawPath = true
	engine.UnescapePathValues = false

	srv := &HTTPServer{
		l:             logger,
		gin:           engine,
		port:          cfg.Port,
		mode:          cfg.Mode,
		environment:   cfg.Environment,
		allowedOrigin: cfg.AllowedOrigin,
		db:            cfg.DB,
		gateway:       cfg.Gateway,
		exchanger:     cfg.Exchanger,
		oauthClient:   cfg.OAuthClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
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
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.gateway == nil {
		return errors.New("calendar gateway is required")
	}
	if srv.exchanger == nil {
		return errors.New("oauth exchanger is required")
	}
	return nil
}
