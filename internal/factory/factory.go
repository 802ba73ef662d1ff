package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/partycards-go/internal/dependencies/clock"
	"github.com/mcoot/partycards-go/internal/dependencies/random"
	"github.com/mcoot/partycards-go/internal/services/expiry"
	"github.com/mcoot/partycards-go/internal/services/game"
	"github.com/mcoot/partycards-go/internal/services/token"
	"github.com/mcoot/partycards-go/internal/storage"
	"github.com/mcoot/partycards-go/internal/storage/memory"
	redisstorage "github.com/mcoot/partycards-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	TokenService   *token.Service
	Expiry         *expiry.Scheduler
	GameController *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// TokenConfig holds token signing settings
	TokenConfig token.Config
	// ExpiryConfig holds game expiry settings (optional)
	ExpiryConfig expiry.Config
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
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
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

	clk := clock.New()
	rnd := random.New()

	return newWithDependencies(store, clk, rnd, cfg.TokenConfig, cfg.ExpiryConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	tokenCfg token.Config,
	expiryCfg expiry.Config,
	logger *slog.Logger,
) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		TokenService:   token.New(tokenCfg, clk, logger),
		Expiry:         expiry.New(store, expiryCfg, logger),
		GameController: game.NewController(store, clk, rnd, logger),
	}
}
