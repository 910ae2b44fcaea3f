package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/jabibo/wordbattle-backend-sub001/internal/dependencies/clock"
	"github.com/jabibo/wordbattle-backend-sub001/internal/dependencies/random"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/dictionary"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/game"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/scoring"
	"github.com/jabibo/wordbattle-backend-sub001/internal/services/validation"
	"github.com/jabibo/wordbattle-backend-sub001/internal/storage"
	"github.com/jabibo/wordbattle-backend-sub001/internal/storage/memory"
	redisstorage "github.com/jabibo/wordbattle-backend-sub001/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	Validator         *validation.Service
	Scorer            *scoring.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return NewWithDependencies(store, clock.New(), random.New(), logger), nil
}

// NewWithDependencies creates an App with the given dependencies
// (useful for testing with mocked clock/random)
func NewWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	dictService := dictionary.New(store)
	validator := validation.New(dictService)
	scorer := scoring.New()
	gameController := game.NewController(store, validator, scorer, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		Validator:         validator,
		Scorer:            scorer,
		GameController:    gameController,
	}
}
