package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leadflowhq/vip-signup-api/internal/api/router"
	appconfig "github.com/leadflowhq/vip-signup-api/internal/config"
	"github.com/leadflowhq/vip-signup-api/internal/dispatch"
	"github.com/leadflowhq/vip-signup-api/internal/hubspot"
	"github.com/leadflowhq/vip-signup-api/internal/leads"
	"github.com/leadflowhq/vip-signup-api/internal/messaging"
	"github.com/leadflowhq/vip-signup-api/internal/observability/metrics"
	"github.com/leadflowhq/vip-signup-api/internal/slack"
	"github.com/leadflowhq/vip-signup-api/pkg/logging"
)

func main() {
	// Local development convenience; production sets real env vars.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting vip-signup-api server",
		"env", cfg.Env,
		"port", cfg.Port,
		"slack_configured", cfg.SlackConfigured(),
		"hubspot_configured", cfg.HubSpotConfigured(),
		"twilio_configured", cfg.TwilioConfigured(),
	)

	leadMetrics := metrics.NewLeadMetrics(nil)

	// Integration adapters. Each one degrades to a logged no-op when its
	// credentials are missing or still placeholders.
	slackWebhookURL := ""
	if cfg.SlackConfigured() {
		slackWebhookURL = cfg.SlackWebhookURL
	}
	notifier := slack.NewClient(slackWebhookURL, logger)

	hubspotToken := ""
	if cfg.HubSpotConfigured() {
		hubspotToken = cfg.HubSpotAccessToken
	}
	crm := hubspot.NewClient(cfg.HubSpotBaseURL, hubspotToken, logger)

	var provider messaging.Provider
	if cfg.TwilioConfigured() {
		provider = messaging.NewTwilioProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, logger)
	}
	welcomeSender := messaging.NewWelcomeSender(provider, logger)

	// Fan-out runs on an in-process worker pool so the response path never
	// waits on a third party.
	dispatcher := dispatch.New(cfg.DispatchWorkerCount, cfg.DispatchQueueSize, cfg.DispatchJobTimeout, logger)

	service := leads.NewService(notifier, crm, welcomeSender, dispatcher, leadMetrics, logger)
	leadsHandler := leads.NewHandler(service, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Drain queued fan-out jobs so in-flight submissions are not dropped.
	if err := dispatcher.Shutdown(ctx); err != nil {
		logger.Error("dispatcher drain timed out", "error", err)
	}

	logger.Info("server stopped")
}
