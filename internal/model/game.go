package model

// SessionStatus represents the phase of a blackjack round.
type SessionStatus string

const (
	// StatusAwaitingAction means the player may still hit or stand.
	StatusAwaitingAction SessionStatus = "awaiting_action"
	// StatusResolved means the round has an outcome. It is terminal until
	// the player starts a new round.
	StatusResolved SessionStatus = "resolved"
)

// GameSession is one player's current blackjack round. It is owned
// exclusively by that player and replaced wholesale on every new round.
//
// Invariant: Deck, PlayerHand and DealerHand together always hold exactly
// the 52-card universe with no duplicates.
type GameSession struct {
	Player     PlayerID
	PlayerHand Hand
	DealerHand Hand
	Deck       Deck
	Message    string
	Score      int
	Status     SessionStatus
}

// Resolved reports whether the round has reached an outcome.
func (g *GameSession) Resolved() bool {
	return g.Status == StatusResolved
}

// Resolve records the round's outcome and applies the score delta.
func (g *GameSession) Resolve(message string, delta int) {
	g.Message = message
	g.Score += delta
	g.Status = StatusResolved
}

// Clone returns a deep copy of the session. The controller hands out
// clones so callers never share the mutable state behind the per-player
// lock.
func (g *GameSession) Clone() *GameSession {
	clone := *g
	clone.PlayerHand = append(Hand(nil), g.PlayerHand...)
	clone.DealerHand = append(Hand(nil), g.DealerHand...)
	clone.Deck = append(Deck(nil), g.Deck...)
	return &clone
}
