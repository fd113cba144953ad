package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/timberridge/outdoor-living-backend/internal/analytics"
	"github.com/timberridge/outdoor-living-backend/internal/api/router"
	appconfig "github.com/timberridge/outdoor-living-backend/internal/config"
	"github.com/timberridge/outdoor-living-backend/internal/leads"
	"github.com/timberridge/outdoor-living-backend/internal/notify"
	"github.com/timberridge/outdoor-living-backend/internal/observability/metrics"
	"github.com/timberridge/outdoor-living-backend/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting outdoor-living backend",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Lead store: Postgres in any real deployment, in-memory when no
	// DATABASE_URL is set so the site can be developed without one.
	var repo leads.Repository
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			logger.Error("database unreachable", "error", err)
			os.Exit(1)
		}
		repo = leads.NewPostgresRepository(pool)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory lead store")
		repo = leads.NewInMemoryRepository()
	}

	leadMetrics := metrics.NewLeadMetrics(nil)

	notifier := notify.NewService(buildEmailSender(ctx, cfg, logger), cfg.NotifyEmail, leadMetrics, logger)

	var cache *analytics.SummaryCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer func() { _ = rdb.Close() }()
		cache = analytics.NewSummaryCache(rdb, cfg.AnalyticsTTL, logger)
	}

	aggregator := analytics.NewAggregator(repo, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leads.NewHandler(repo, notifier, leadMetrics, logger),
		AdminLeads:         leads.NewAdminHandler(repo, logger),
		AnalyticsHandler:   analytics.NewHandler(aggregator, cache, leadMetrics, logger),
		MetricsHandler:     promhttp.Handler(),
		AdminAPIKey:        cfg.AdminAPIKey,
		Env:                cfg.Env,
		LeadRateLimit:      cfg.LeadRateLimit,
		LeadRateBurst:      cfg.LeadRateBurst,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender picks the configured provider. Unconfigured email is a
// stub so notification stays a silent no-op.
func buildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "sendgrid":
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			return sender
		}
		logger.Warn("sendgrid selected but SENDGRID_API_KEY missing, email disabled")
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logger.Warn("failed to load AWS config, email disabled", "error", err)
			break
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SESFromName,
		}, logger)
		if sender != nil {
			return sender
		}
	}
	return notify.NewStubEmailSender(logger)
}
