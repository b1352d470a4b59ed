package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pilahsampah/waste-classifier/internal/bot"
	"github.com/pilahsampah/waste-classifier/internal/classifier"
	"github.com/pilahsampah/waste-classifier/internal/config"
	"github.com/pilahsampah/waste-classifier/internal/handlers"
	"github.com/pilahsampah/waste-classifier/internal/logging"
	"github.com/pilahsampah/waste-classifier/internal/model"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("loading model",
		zap.String("backend", cfg.Model.Backend),
		zap.String("path", cfg.Model.Path),
		zap.String("metadata", cfg.Model.MetadataPath))

	predictor, err := model.Open(model.Options{
		Backend:           model.Backend(cfg.Model.Backend),
		ModelPath:         cfg.Model.Path,
		MetadataPath:      cfg.Model.MetadataPath,
		SharedLibraryPath: cfg.Model.SharedLibraryPath,
	})
	if err != nil {
		logger.Fatal("failed to load model", zap.Error(err))
	}
	defer predictor.Close()

	meta := predictor.Metadata()
	logger.Info("model loaded",
		zap.String("input", meta.InputName),
		zap.Int64s("input_shape", meta.InputShape),
		zap.String("output", meta.OutputName),
		zap.Int64s("output_shape", meta.OutputShape),
		zap.String("layout", string(meta.Layout)))

	svc := classifier.NewService(predictor, logger, classifier.WithMaxPixels(cfg.HTTP.MaxPixels))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Telegram.Token != "" {
		b, err := bot.New(cfg.Telegram.Token, svc, cfg.HTTP.MaxImageBytes, logger)
		if err != nil {
			logger.Fatal("failed to start bot", zap.Error(err))
		}
		go b.Run(ctx)
	}

	gin.SetMode(cfg.HTTP.GinMode)
	handler := handlers.NewHandler(svc, logger.Named("http"), cfg.HTTP.MaxImageBytes)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handlers.NewRouter(handler, logger.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.Strings("endpoints", handlers.Routes()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serveErr:
		logger.Error("server failed", zap.Error(err))
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
