package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/blackjack-go/internal/dependencies/clock"
	"github.com/mcoot/blackjack-go/internal/dependencies/random"
	"github.com/mcoot/blackjack-go/internal/services/auth"
	"github.com/mcoot/blackjack-go/internal/services/deck"
	"github.com/mcoot/blackjack-go/internal/services/game"
	"github.com/mcoot/blackjack-go/internal/services/scoring"
	"github.com/mcoot/blackjack-go/internal/storage"
	"github.com/mcoot/blackjack-go/internal/storage/memory"
	redisstorage "github.com/mcoot/blackjack-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.ScoreStore

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DeckService    *deck.Service
	ScoringService *scoring.Service
	GameController *game.Controller
	AuthService    *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds the token signing secret and duration.
	// Secret is required; duration defaults to auth.DefaultConfig().
	AuthConfig auth.Config
	// Verifier checks wallet signatures (optional)
	// If nil, the EIP-191 Ethereum verifier is used
	Verifier auth.Verifier
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

	if len(cfg.AuthConfig.Secret) == 0 {
		return nil, errors.New("AuthConfig.Secret is required")
	}

	// Create storage based on type
	var store storage.ScoreStore
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

	verifier := cfg.Verifier
	if verifier == nil {
		verifier = auth.NewEthereumVerifier()
	}

	return newWithDependencies(store, clock.New(), random.New(), verifier, cfg.AuthConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.ScoreStore,
	clk clock.Clock,
	rnd random.Random,
	verifier auth.Verifier,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	deckService := deck.New(rnd)
	scoringService := scoring.New()
	gameController := game.NewController(store, deckService, scoringService, logger)
	authService := auth.New(verifier, clk, authCfg, logger)

	return &App{
		Store:          store,
		Clock:          clk,
		Random:         rnd,
		DeckService:    deckService,
		ScoringService: scoringService,
		GameController: gameController,
		AuthService:    authService,
	}
}
