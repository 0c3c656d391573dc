package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gcal-relay/config"
	_ "gcal-relay/docs" // Swagger docs
	authSqlite "gcal-relay/internal/auth/repository/sqlite"
	"gcal-relay/internal/event"
	"gcal-relay/internal/httpserver"
	"gcal-relay/pkg/gauth"
	"gcal-relay/pkg/gcalendar"
	"gcal-relay/pkg/log"
	"gcal-relay/pkg/sqlite"
)

// @title       Google Calendar Relay API
// @description Lists, creates, edits and deletes Google Calendar events on behalf of users signed in with Google.
// @version     1
// @host        localhost:8080
// @schemes     http
//
// @securityDefinitions.apikey TokenAuth
// @in          header
// @name        Authorization
// @description "Token <api key>" as returned by /login/
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Google Calendar relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(cfg.Database.Path, authSqlite.Schema)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. Google clients
	exchanger := gauth.New(gauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		CallbackURL:  cfg.Google.CallbackURL,
		TokenURI:     cfg.Google.TokenURI,
	})
	gateway := gcalendar.New()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:          cfg.HTTPServer.Port,
		Mode:          cfg.HTTPServer.Mode,
		Environment:   cfg.Environment.Name,
		AllowedOrigin: cfg.CORS.AllowedOrigin,
		DB:            db,
		Gateway:       gateway,
		Exchanger:     exchanger,
		OAuthClient: event.OAuthClient{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			TokenURI:     cfg.Google.TokenURI,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
