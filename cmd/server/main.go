package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/jabibo/wordbattle-backend-sub001/internal/api"
	"github.com/jabibo/wordbattle-backend-sub001/internal/factory"
	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	redisstorage "github.com/jabibo/wordbattle-backend-sub001/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loadDictionaries(app, logger)

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// loadDictionaries loads a word list per supported language from the
// dictionary directory (DICTIONARY_DIR, default "data"). A language
// with no loaded word list rejects every word, so a missing file is
// logged as a warning rather than silently ignored.
func loadDictionaries(app *factory.App, logger *slog.Logger) {
	dir := os.Getenv("DICTIONARY_DIR")
	if dir == "" {
		dir = "data"
	}

	for _, lang := range []model.Language{model.LanguageEnglish, model.LanguageGerman} {
		path := filepath.Join(dir, string(lang)+".txt")
		if err := app.DictionaryService.LoadFromFile(context.Background(), lang, path); err != nil {
			logger.Warn("could not load dictionary",
				slog.String("language", string(lang)),
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}
		logger.Info("dictionary loaded",
			slog.String("language", string(lang)),
			slog.Int("words", app.DictionaryService.WordCount(lang)))
	}
}
