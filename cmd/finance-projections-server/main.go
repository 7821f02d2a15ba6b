package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iwvelando/finance-projections/internal/logging"
	"github.com/iwvelando/finance-projections/internal/scenario"
	"github.com/iwvelando/finance-projections/internal/server"
	"github.com/iwvelando/finance-projections/internal/store"
	"github.com/iwvelando/finance-projections/pkg/constants"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	address := flag.String("address", "", "listen address override (host:port)")
	maxBodySize := flag.String("max-body-size", "", "request body limit override (e.g. 64K, 1M)")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := server.LoadConfig(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnvironment(); err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid environment overrides\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Address = *address
	}
	if *maxBodySize != "" {
		size, err := server.ParseSize(*maxBodySize)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"invalid max body size\", \"error\": \"%v\"}\n", err)
			os.Exit(1)
		}
		cfg.SetBodySizeBytes(size)
	}

	logger, err := logging.New(cfg.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scenarios, err := store.Open(ctx, cfg.Store, logger)
	if err != nil {
		logger.Fatal("failed to open scenario store",
			zap.String("op", "main"),
			zap.String("driver", cfg.Store.Driver),
			zap.Error(err),
		)
	}
	defer func() {
		if err := scenarios.Close(); err != nil {
			logger.Error("failed to close scenario store",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           server.NewHandler(logger, scenario.NewService(scenarios, logger), cfg.BodySizeBytes(), version),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting finance-projections server",
			zap.String("op", "main"),
			zap.String("address", cfg.Address),
			zap.String("store", cfg.Store.Driver),
			zap.String("version", version),
		)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	case <-ctx.Done():
		logger.Info("shutdown signal received", zap.String("op", "main"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeoutSeconds*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error",
			zap.String("op", "main"),
			zap.Error(err),
		)
		return
	}
	logger.Info("server stopped gracefully", zap.String("op", "main"))
}
