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
	"go.uber.org/zap"

	"github.com/base234/hyper-privacy-backend/internal/config"
	dbRedis "github.com/base234/hyper-privacy-backend/internal/db/redis"
	logpkg "github.com/base234/hyper-privacy-backend/internal/logger"
	"github.com/base234/hyper-privacy-backend/internal/metrics"
	"github.com/base234/hyper-privacy-backend/internal/repository/inventory"
	"github.com/base234/hyper-privacy-backend/internal/repository/resultcache"
	"github.com/base234/hyper-privacy-backend/internal/sampledata"
	chiTransport "github.com/base234/hyper-privacy-backend/internal/transport/chi"
	analyzeuc "github.com/base234/hyper-privacy-backend/internal/usecase/analyze"
	classifyuc "github.com/base234/hyper-privacy-backend/internal/usecase/classify"
	healthuc "github.com/base234/hyper-privacy-backend/internal/usecase/health"
	matchuc "github.com/base234/hyper-privacy-backend/internal/usecase/match"
	privacyuc "github.com/base234/hyper-privacy-backend/internal/usecase/privacy"
	recommenduc "github.com/base234/hyper-privacy-backend/internal/usecase/recommend"
	"github.com/base234/hyper-privacy-backend/internal/version"
)

func main() {
	// Load configuration based on ENV
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

	logger.Info("Starting ad engine API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("anonymization", cfg.Privacy.Anonymization),
		zap.Bool("differential_privacy", cfg.Privacy.DifferentialPrivacy),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// Register pipeline metrics explicitly (no init())
	metrics.RegisterEngineMetrics()

	ctx := context.Background()

	// Optional result cache backed by Redis
	var healthPinger healthuc.CachePinger
	var cache recommenduc.ResultCache
	if cfg.Cache.Enabled {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache not ready", zap.Error(err))
		}
		logger.Info("Connected to result cache", zap.Strings("addrs", cfg.Cache.Addrs))

		cache = resultcache.New(
			store,
			time.Duration(cfg.Cache.TTLSec)*time.Second,
			metrics.ResultCacheTotal,
			logger,
		)
		healthPinger = store
	}

	// Feature extraction — loads the POS/NER model and the lemmatizer
	analyzer, err := analyzeuc.New()
	if err != nil {
		logger.Fatal("Failed to initialize content analyzer", zap.Error(err))
	}

	// Privacy pipeline with a time-seeded noise source
	pipeline := privacyuc.New(privacyuc.Config{
		Anonymization:       cfg.Privacy.Anonymization,
		DifferentialPrivacy: cfg.Privacy.DifferentialPrivacy,
		Epsilon:             cfg.Privacy.Epsilon,
		LocalProcessing:     cfg.Privacy.LocalProcessing,
	}, nil)

	// Ad inventory and matching engine
	repo := inventory.New(cfg.Matching.MaxFeatures)
	classifier := classifyuc.New(sampledata.Categories())
	matcher := matchuc.New(repo, classifier).WithMaxResults(cfg.Matching.MaxResults)

	recSvc := recommenduc.New(analyzer, pipeline, matcher, logger)
	if cache != nil {
		recSvc.WithCache(cache)
	}

	// Load the startup inventory: a YAML file when configured, the
	// built-in demo ads otherwise.
	ads := sampledata.Ads()
	if cfg.Inventory.AdsFile != "" {
		loaded, err := sampledata.LoadAds(cfg.Inventory.AdsFile)
		if err != nil {
			logger.Fatal("Failed to load ads file",
				zap.String("path", cfg.Inventory.AdsFile), zap.Error(err))
		}
		ads = loaded
	}
	bootstrap := make([]recommenduc.BootstrapAd, len(ads))
	for i, ad := range ads {
		bootstrap[i] = recommenduc.BootstrapAd{Content: ad.Content, Metadata: ad.Metadata}
	}
	if err := recSvc.Bootstrap(bootstrap); err != nil {
		logger.Fatal("Failed to bootstrap ad inventory", zap.Error(err))
	}
	metrics.InventorySize.Set(float64(repo.Len()))

	healthSvc := healthuc.New(healthPinger, repo)

	server := chiTransport.NewServer(recSvc, healthSvc, logger)
	if dir := staticDir(); dir != "" {
		server = server.WithStaticDir(dir)
	}

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
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

// staticDir locates the demo UI directory, if present.
func staticDir() string {
	if info, err := os.Stat("web/static"); err == nil && info.IsDir() {
		return "web/static"
	}
	return ""
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
