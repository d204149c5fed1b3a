package deck

import (
	"github.com/mcoot/blackjack-go/internal/dependencies/random"
	"github.com/mcoot/blackjack-go/internal/model"
)

// Service builds decks and deals cards from them
type Service struct {
	random random.Random
}

// New creates a new deck Service
func New(random random.Random) *Service {
	return &Service{
		random: random,
	}
}

// Build returns the full 52-card deck, one card per (suit, rank) pair
func (s *Service) Build() model.Deck {
	d := make(model.Deck, 0, len(model.Suits)*len(model.Ranks))
	for _, suit := range model.Suits {
		for _, rank := range model.Ranks {
			d = append(d, model.Card{Suit: suit, Rank: rank})
		}
	}
	return d
}

// Deal selects n cards uniformly at random without replacement and returns
// them together with the remaining deck. The input deck is not modified.
// Returns model.ErrInsufficientCards if the deck holds fewer than n cards.
func (s *Service) Deal(d model.Deck, n int) ([]model.Card, model.Deck, error) {
	if n < 0 || n > len(d) {
		return nil, nil, model.ErrInsufficientCards
	}

	remaining := make(model.Deck, len(d))
	copy(remaining, d)

	dealt := make([]model.Card, 0, n)
	for i := 0; i < n; i++ {
		idx := s.random.Intn(len(remaining))
		dealt = append(dealt, remaining[idx])
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return dealt, remaining, nil
}
