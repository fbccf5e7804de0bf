package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"

	"shortlink/internal/cache"
	"shortlink/internal/clicks"
	"shortlink/internal/config"
	"shortlink/internal/handler"
	custommiddleware "shortlink/internal/middleware"
	"shortlink/internal/repository"
	"shortlink/internal/resolver"
	"shortlink/internal/secret"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
	"shortlink/internal/validation"
	"shortlink/internal/visitor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := repository.NewLinkRepository(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	linkCache, err := cache.New(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer linkCache.Close()

	short, err := shortener.New()
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	recorder := clicks.NewRecorder(repo, &cfg.Clicks, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	validator := validation.NewDestinationValidator(
		cfg.Validation.MaxURLLength,
		cfg.Validation.AllowPrivateIPs,
	)

	codec := secret.NewCodec(cfg.Secrets.EncryptionKey)

	linkService := service.NewLinkService(
		repo,
		linkCache,
		short,
		validator,
		recorder,
		resolver.NewPasswordGate(codec),
		resolver.NewDestinationResolver(),
		resolver.NewPresentationSelector(cfg.App.SplashCountdownSec, cfg.App.DefaultLoadingText),
		cfg.App.BaseURL,
		logger,
	)

	extractor := visitor.NewExtractor(visitor.SentinelGeo{})
	h := handler.New(linkService, extractor, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics())
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
