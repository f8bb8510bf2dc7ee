package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/s1lver0/cinemax-chat-go/internal/config"
	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/handler"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/cache"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/client"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/observability"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/resilience"
	"github.com/s1lver0/cinemax-chat-go/internal/port"
	"github.com/s1lver0/cinemax-chat-go/internal/service"
	"github.com/s1lver0/cinemax-chat-go/internal/session"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	if missing := cfg.MissingAzureVars(); len(missing) > 0 {
		logger.Fatal("missing Azure environment variables",
			zap.String("vars", strings.Join(missing, ", ")),
		)
	}

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("catalog_url", cfg.CatalogURL),
		zap.Duration("catalog_cache_ttl", cfg.CatalogCacheTTL),
		zap.Int("history_window", cfg.HistoryWindow),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Int("max_retries", cfg.MaxRetries),
		zap.Duration("initial_backoff", cfg.InitialBackoff),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "cinemax-chat")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Resilience ---
	resilienceCfg := resilience.Config{
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff,
		MaxConcurrency: cfg.MaxConcurrency,
	}
	catalogCB := resilience.NewCircuitBreaker("catalog")
	completionCB := resilience.NewCircuitBreaker("completion")

	// --- Clients ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var catalogProvider port.CatalogProvider = client.NewCatalogClient(httpClient, cfg.CatalogURL, catalogCB, resilienceCfg)
	if cfg.CatalogCacheTTL > 0 {
		logger.Info("catalog caching enabled", zap.Duration("ttl", cfg.CatalogCacheTTL))
		catalogCache := cache.New[*domain.Catalog](cfg.CatalogCacheTTL)
		catalogProvider = client.NewCachedCatalogProvider(catalogProvider, catalogCache, metrics)
	}

	completionClient := client.NewCompletionClient(
		httpClient,
		cfg.AzureEndpoint,
		cfg.AzureKey,
		cfg.DeploymentName,
		completionCB,
		resilienceCfg,
	)

	// --- Session history ---
	historyStore := session.NewInMemoryStore()

	// --- Service ---
	chatSvc := service.NewChatService(
		catalogProvider,
		completionClient,
		historyStore,
		cfg.HistoryWindow,
		metrics,
		logger,
	)

	// --- Router ---
	router := handler.NewRouter(chatSvc, metrics, logger, cfg.AllowedOrigins)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
