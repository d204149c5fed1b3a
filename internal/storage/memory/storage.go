package memory

import (
	"context"
	"sync"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/storage"
)

// Store is an in-memory implementation of the score store, used in
// development and tests
type Store struct {
	mu     sync.RWMutex
	scores map[model.PlayerID]int
}

// New creates a new in-memory score store
func New() *Store {
	return &Store{
		scores: make(map[model.PlayerID]int),
	}
}

// Ensure Store implements the interface
var _ storage.ScoreStore = (*Store)(nil)

// GetScore returns the stored score for a player
func (s *Store) GetScore(ctx context.Context, player model.PlayerID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	score, ok := s.scores[player]
	if !ok {
		return 0, model.ErrScoreNotFound
	}
	return score, nil
}

// PutScore stores a player's score, last write wins
func (s *Store) PutScore(ctx context.Context, player model.PlayerID, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[player] = score
	return nil
}
