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
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/moradia-ai/moradia/internal/config"
	domlisting "github.com/moradia-ai/moradia/internal/domain/listing"
	domuser "github.com/moradia-ai/moradia/internal/domain/user"
	logpkg "github.com/moradia-ai/moradia/internal/logger"
	"github.com/moradia-ai/moradia/internal/metrics"
	listingrepo "github.com/moradia-ai/moradia/internal/repository/listing"
	userrepo "github.com/moradia-ai/moradia/internal/repository/user"
	chiTransport "github.com/moradia-ai/moradia/internal/transport/chi"
	openaiModel "github.com/moradia-ai/moradia/internal/transport/openai"
	"github.com/moradia-ai/moradia/internal/usecase/auth"
	listinguc "github.com/moradia-ai/moradia/internal/usecase/listing"
	searchuc "github.com/moradia-ai/moradia/internal/usecase/search"
	"github.com/moradia-ai/moradia/internal/version"
)

func main() {
	// Load .env for local development; absence is fine in containers.
	_ = godotenv.Load()

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

	logger.Info("Starting moradia API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_host", cfg.Database.Host),
		zap.String("db_name", cfg.Database.Name),
	)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(&domuser.User{}, &domlisting.Listing{}); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register model metrics explicitly (no init())
	metrics.RegisterModelMetrics()

	textModel := openaiModel.NewTextModel(&openaiModel.Config{
		APIKey:   cfg.AI.APIKey,
		BaseURL:  cfg.AI.BaseURL,
		Model:    cfg.AI.Model,
		Provider: "openai",
		Timeout:  time.Duration(cfg.AI.TimeoutSec) * time.Second,
		Logger:   logger,
	})
	logger.Info("Text model created", zap.String("model", cfg.AI.Model))

	listingRepo := listingrepo.New(db)
	userRepo := userrepo.New(db)

	listingSvc := listinguc.New(listingRepo).
		WithPagination(cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)
	searchSvc := searchuc.New(textModel)
	authSvc := auth.New(userRepo, []byte(cfg.Auth.JWTSecret),
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	server := chiTransport.NewServer(listingSvc, searchSvc, authSvc, []byte(cfg.Auth.JWTSecret), logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
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
					_ = json.NewEncoder(w).Encode(map[string]any{
						"timestamp": time.Now().UTC(),
						"status":    http.StatusInternalServerError,
						"error":     http.StatusText(http.StatusInternalServerError),
						"message":   "internal error",
						"path":      r.URL.Path,
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
