package storage

import (
	"context"

	"github.com/mcoot/blackjack-go/internal/model"
)

// ScoreStore defines the interface for score persistence. Keys are
// canonical player IDs; writes are last-write-wins.
type ScoreStore interface {
	// GetScore returns the persisted score for a player. Returns
	// model.ErrScoreNotFound if the player has no record, or an error
	// wrapping model.ErrStoreUnavailable on transport failure.
	GetScore(ctx context.Context, player model.PlayerID) (int, error)

	// PutScore writes a player's score, creating the record on first
	// write. Returns an error wrapping model.ErrStoreUnavailable on
	// transport failure. Failures are propagated, never retried here.
	PutScore(ctx context.Context, player model.PlayerID, score int) error
}
