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

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/summary-flow/internal/cache"
	"github.com/nguyentantai21042004/summary-flow/internal/captions"
	"github.com/nguyentantai21042004/summary-flow/internal/config"
	"github.com/nguyentantai21042004/summary-flow/internal/extractor"
	"github.com/nguyentantai21042004/summary-flow/internal/logger"
	"github.com/nguyentantai21042004/summary-flow/internal/server"
	"github.com/nguyentantai21042004/summary-flow/internal/service"
	"github.com/nguyentantai21042004/summary-flow/internal/summarizer"
	"github.com/nguyentantai21042004/summary-flow/internal/watcher"
	"github.com/nguyentantai21042004/summary-flow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to config file")
	port := flag.Int("port", 0, "override server port")
	model := flag.String("model", "", "override Gemini model")
	maxDuration := flag.Int("max-duration", 0, "override max video duration in seconds")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *model != "" {
		cfg.Gemini.Model = *model
	}
	if *maxDuration != 0 {
		cfg.Video.MaxDuration = *maxDuration
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Video Summary Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Model: %s", cfg.Gemini.Model)
	log.Info(ctx, "API keys: %d", len(cfg.Gemini.APIKeys))
	log.Info(ctx, "Max video duration: %ds", cfg.Video.MaxDuration)
	log.Info(ctx, "Cache dir: %s", cfg.Cache.Dir)

	store, err := cache.New(cfg.Cache.Dir)
	if err != nil {
		log.Error(ctx, "Failed to open cache: %v", err)
		os.Exit(1)
	}

	cached, err := store.Keys()
	if err != nil {
		log.Error(ctx, "Failed to scan cache: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := watcher.New(cfg.Cache.Dir, cached, log)
	if err := w.Start(ctx); err != nil {
		log.Error(ctx, "Failed to start cache watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	exec := executor.New()
	ex := extractor.New(cfg, exec, log)
	fetcher := captions.New(cfg, log)
	sum := summarizer.New(cfg, log)
	svc := service.New(cfg, ex, fetcher, store, w, sum, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.New(cfg, svc, log).Router(),
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	log.Info(ctx, "Listening on :%d", cfg.Server.Port)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}
	cancel()

	log.Info(ctx, "Video Summary Service stopped")
}

// loadConfig falls back to environment-only config when the file is absent,
// so the service runs in containers without a mounted config.yaml.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return config.Default()
	}
	return cfg, err
}
