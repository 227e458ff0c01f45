package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"webhook-cache-api/internal/api"
	"webhook-cache-api/internal/api/handlers"
	"webhook-cache-api/internal/auth"
	"webhook-cache-api/internal/config"
	"webhook-cache-api/internal/logging"
	"webhook-cache-api/internal/webhook"

	_ "webhook-cache-api/docs"

	"github.com/rs/zerolog/log"
)

// @title        Webhook Cache API
// @version      1.0
// @description  Receives webhook callbacks and caches the most recent event per customer email.
func main() {
	start := time.Now()

	cfgPath := os.Getenv("WH_CONFIG_FILE")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Config load failed")
	}

	// Initialize logger
	if err := logging.Setup(cfg); err != nil {
		log.Fatal().Err(err).Msg("Logger setup failed")
	}

	log.Info().
		Str("version", "1.0.0").
		Str("listen_addr", cfg.ListenAddr).
		Msg("Webhook Cache API starting")

	// Store + background eviction sweep
	store := webhook.NewStore()
	svc := &webhook.Service{Store: store}

	sweeper := &webhook.Sweeper{
		Store:    store,
		MaxAge:   cfg.MaxAge(),
		Interval: cfg.SweepInterval(),
	}
	if err := sweeper.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start cleanup sweep")
	}
	defer sweeper.Stop()

	// Initialize OIDC verifier if enabled
	var oidcVerifier *auth.OIDCVerifier
	if cfg.OIDC.Enabled {
		log.Info().Str("issuer", cfg.OIDC.IssuerURL).Msg("Initializing OIDC authentication")
		oidcVerifier, err = auth.NewOIDCVerifier(
			context.Background(),
			cfg.OIDC.IssuerURL,
			cfg.OIDC.ClientID,
			cfg.OIDC.Audience,
			cfg.OIDC.AdminRole,
		)
		if err != nil {
			log.Warn().
				Err(err).
				Msg("OIDC enabled but failed to initialize, falling back to API key authentication only")
			cfg.OIDC.Enabled = false
		} else {
			log.Info().
				Str("issuer", cfg.OIDC.IssuerURL).
				Str("client_id", cfg.OIDC.ClientID).
				Str("admin_role", cfg.OIDC.AdminRole).
				Msg("OIDC authentication enabled")
		}
	}

	authHandler := auth.Auth{
		AdminKey:     cfg.AdminKey,
		OIDCEnabled:  cfg.OIDC.Enabled,
		OIDCVerifier: oidcVerifier,
	}

	rh := &handlers.ReceiverHandler{Service: svc}
	dh := &handlers.DataHandler{Auth: authHandler, Service: svc}

	router := api.NewRouter(rh, dh, start)

	// Apply middlewares: logging first, then CORS
	handler := logging.HTTPLogger(router)
	handler = api.CORSMiddleware(handler, cfg.CORS.AllowedOrigin)

	log.Info().
		Str("listen_addr", cfg.ListenAddr).
		Str("webhook_endpoint", "/webhook/{webhookId}").
		Str("api_endpoint", "/api/webhook-data").
		Msg("Webhook Cache API listening")

	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}
}
