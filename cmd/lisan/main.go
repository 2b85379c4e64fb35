package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kitabi-cloud/lisan/internal/config"
	"github.com/kitabi-cloud/lisan/internal/db"
	dbRedis "github.com/kitabi-cloud/lisan/internal/db/redis"
	"github.com/kitabi-cloud/lisan/internal/domain"
	logpkg "github.com/kitabi-cloud/lisan/internal/logger"
	"github.com/kitabi-cloud/lisan/internal/metrics"
	"github.com/kitabi-cloud/lisan/internal/repository/analysiscache"
	"github.com/kitabi-cloud/lisan/internal/transport/httpapi"
	"github.com/kitabi-cloud/lisan/internal/version"
	healthuc "github.com/kitabi-cloud/lisan/internal/usecase/health"
	moodc "github.com/kitabi-cloud/lisan/internal/usecase/mood"
	recommenduc "github.com/kitabi-cloud/lisan/internal/usecase/recommend"
	sentimentuc "github.com/kitabi-cloud/lisan/internal/usecase/sentiment"
	summaryuc "github.com/kitabi-cloud/lisan/internal/usecase/summary"
)

func main() {
	// Load .env if present, then configuration based on ENV
	_ = godotenv.Load()
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting lisan API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("cache_addrs", cfg.Database.Addrs),
	)

	if cfg.Storage.KeyPrefix != "" {
		domain.KeyPrefix = cfg.Storage.KeyPrefix
	}

	// The result cache is optional: no addrs means every analysis is
	// computed fresh.
	var store db.Store
	if len(cfg.Database.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
			DB:       cfg.Database.DB,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		ctx := context.Background()
		if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to result cache")
	} else {
		logger.Info("No cache store configured, running without result cache")
	}

	// Register analysis metrics explicitly (no init())
	metrics.RegisterAnalysisMetrics()

	// Create use case services
	moodSvc := moodc.New().WithHeuristics(moodc.Heuristics{
		WordsPerMinute: cfg.Analysis.WordsPerMinute,
	})
	sentimentSvc := sentimentuc.New()
	summarySvc := summaryuc.New().WithLimits(summaryuc.Limits{
		WordsPerMinute: cfg.Analysis.WordsPerMinute,
	})
	recommendSvc := recommenduc.New()

	// Health service: a nil store drops the cache check entirely
	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(pinger)

	// Result cache decorator — nil when no store is configured
	var cache *analysiscache.Cache
	if store != nil {
		cache = analysiscache.New(
			store,
			time.Duration(cfg.Analysis.CacheTTLSec)*time.Second,
			metrics.AnalysisCacheTotal,
			logger,
		)
	}

	server := httpapi.NewServer(
		moodSvc, sentimentSvc, summarySvc, recommendSvc, healthSvc,
		cache,
		cfg.Analysis.DefaultSummaryWords,
		cfg.Analysis.MaxTextChars,
		logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(httpapi.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"error": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
