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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/auditgov/auditdex/internal/config"
	"github.com/auditgov/auditdex/internal/ingest"
	"github.com/auditgov/auditdex/internal/lexicon"
	logpkg "github.com/auditgov/auditdex/internal/logger"
	"github.com/auditgov/auditdex/internal/metrics"
	chiTransport "github.com/auditgov/auditdex/internal/transport/chi"
	openaiTransport "github.com/auditgov/auditdex/internal/transport/openai"
	answeruc "github.com/auditgov/auditdex/internal/usecase/answer"
	healthuc "github.com/auditgov/auditdex/internal/usecase/health"
	searchuc "github.com/auditgov/auditdex/internal/usecase/search"
	"github.com/auditgov/auditdex/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting auditdex API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("data_files", cfg.Data.Files),
	)

	// Dictionary and corpus are immutable process state; both fail fast.
	dict := lexicon.Default()
	if err := dict.Validate(); err != nil {
		logger.Fatal("Invalid synonym dictionary", zap.Error(err))
	}

	corpus, err := ingest.Load(cfg.Data.Files, cfg.DelimiterRune(), logger)
	if err != nil {
		logger.Fatal("Failed to load corpus", zap.Error(err))
	}
	logger.Info("Corpus loaded",
		zap.Int("files", corpus.Files()),
		zap.Int("records", corpus.Len()),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Completion provider is optional; without a key the answer endpoint
	// reports not-configured.
	var completer answeruc.Completer
	var answerChecker healthuc.AnswerChecker
	if cfg.Answer.APIKey != "" {
		c := openaiTransport.NewCompleter(&openaiTransport.Config{
			APIKey:      cfg.Answer.APIKey,
			BaseURL:     cfg.Answer.BaseURL,
			Model:       cfg.Answer.Model,
			Temperature: cfg.Answer.Temperature,
			MaxTokens:   cfg.Answer.MaxTokens,
			Logger:      logger,
		})
		completer = c
		answerChecker = c
		logger.Info("Answer provider configured", zap.String("model", cfg.Answer.Model))
	} else {
		logger.Warn("No answer provider API key, /v1/answer disabled")
	}

	// Create use case services
	searchSvc := searchuc.New(corpus, dict, logger)
	answerSvc := answeruc.New(searchSvc, completer, logger)
	healthSvc := healthuc.New(corpus, answerChecker)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, answerSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	r.Handle("/metrics", promhttp.Handler())
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
						"code":    "internal_error",
						"message": "internal error",
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

			// Canonical log line, one per request
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
