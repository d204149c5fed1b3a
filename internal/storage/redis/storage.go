package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/storage"
)

// Store is a Redis-backed implementation of the score store
type Store struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis score store
func New(cfg Config) (*Store, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	return &Store{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis score store with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Store {
	return &Store{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements the interface
var _ storage.ScoreStore = (*Store)(nil)

// GetScore returns the persisted score for a player
func (s *Store) GetScore(ctx context.Context, player model.PlayerID) (int, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	score, err := s.client.Get(ctx, scoreKey(player)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, model.ErrScoreNotFound
		}
		return 0, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return score, nil
}

// PutScore writes a player's score with no TTL; score records never expire
func (s *Store) PutScore(ctx context.Context, player model.PlayerID, score int) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if err := s.client.Set(ctx, scoreKey(player), score, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

// opCtx bounds a store operation with the configured timeout
func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OpTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.OpTimeout)
}
