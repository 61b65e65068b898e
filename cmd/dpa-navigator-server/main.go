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

	"github.com/iwvelando/dpa-navigator/internal/config"
	"github.com/iwvelando/dpa-navigator/internal/logging"
	"github.com/iwvelando/dpa-navigator/internal/navigator"
	"github.com/iwvelando/dpa-navigator/internal/server"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 15 * time.Second

func main() {
	configLocation := flag.String("config", constants.DefaultServerConfigFile, "path to server configuration file")
	envFile := flag.String("env-file", ".env", "optional dotenv file loaded before reading DPA_SERVER_* variables")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// A missing dotenv file is not an error.
	_ = godotenv.Load(*envFile)

	serverConf, err := server.LoadConfig(*configLocation)
	if err == nil {
		err = serverConf.ApplyEnv()
	}
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load server configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := logging.New(serverConf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	engineConf := config.Default()
	if serverConf.EngineConfig != "" {
		engineConf, err = config.LoadConfiguration(serverConf.EngineConfig)
		if err != nil {
			logger.Fatal("failed to load engine configuration",
				zap.String("op", "main"),
				zap.String("path", serverConf.EngineConfig),
				zap.Error(err),
			)
		}
	}
	for _, warning := range engineConf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := navigator.NewFromConfig(ctx, logger, engineConf)
	if err != nil {
		logger.Fatal("failed to initialize recommendation engine",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	defer func() {
		_ = engine.Close()
	}()

	srv := &http.Server{
		Addr:              serverConf.Address,
		Handler:           server.NewHandler(logger, engine, serverConf.BodySizeBytes(), version),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("op", "main"),
			zap.String("address", serverConf.Address),
			zap.String("version", version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
			return
		}
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, draining connections",
		zap.String("op", "main"),
	)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
