package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/deck"
	"github.com/mcoot/blackjack-go/internal/services/scoring"
	"github.com/mcoot/blackjack-go/internal/storage"
)

// Player actions
const (
	ActionHit   = "hit"
	ActionStand = "stand"
)

// dealerStand is the value at or above which the dealer stops drawing.
const dealerStand = 17

// scoreDelta is the score swing for a won or lost round.
const scoreDelta = 100

// Outcome messages shown to the player when a round resolves.
const (
	MessageBlackjack       = "You win! Blackjack!"
	MessagePlayerBust      = "You lose! Bust!"
	MessageDealerBust      = "You win! Dealer busts!"
	MessageDealerBlackjack = "You lose! Dealer blackjack!"
	MessageWin             = "You win!"
	MessageLose            = "You lose!"
	MessageDraw            = "Draw!"
)

// playerSession pairs one player's round with its lock. Mutating
// operations for a player are serialized through the lock; operations for
// different players proceed in parallel.
type playerSession struct {
	mu   sync.Mutex
	game *model.GameSession
}

// Controller drives the blackjack state machine: deal, player action,
// dealer action, resolution and score persistence. Sessions are keyed by
// canonical player ID; no session is ever shared between players.
type Controller struct {
	store   storage.ScoreStore
	deck    *deck.Service
	scoring *scoring.Service
	logger  *slog.Logger

	mu       sync.Mutex
	sessions map[model.PlayerID]*playerSession
}

// NewController creates a new game Controller
func NewController(
	store storage.ScoreStore,
	deckService *deck.Service,
	scoringService *scoring.Service,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:    store,
		deck:     deckService,
		scoring:  scoringService,
		logger:   logger,
		sessions: make(map[model.PlayerID]*playerSession),
	}
}

// entry returns the lock entry for a player, creating it if needed
func (c *Controller) entry(player model.PlayerID) *playerSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	ps, ok := c.sessions[player]
	if !ok {
		ps = &playerSession{}
		c.sessions[player] = ps
	}
	return ps
}

// StartRound replaces the player's session with a fresh round: a new
// deck, two cards each for dealer and player, and the persisted score
// (zero if the player has none).
func (c *Controller) StartRound(ctx context.Context, player model.PlayerID) (*model.GameSession, error) {
	ps := c.entry(player)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	d := c.deck.Build()

	dealerHand, d, err := c.deck.Deal(d, 2)
	if err != nil {
		return nil, err
	}
	playerHand, d, err := c.deck.Deal(d, 2)
	if err != nil {
		return nil, err
	}

	score, err := c.store.GetScore(ctx, player)
	if err != nil {
		if !errors.Is(err, model.ErrScoreNotFound) {
			return nil, err
		}
		score = 0
	}

	ps.game = &model.GameSession{
		Player:     player,
		PlayerHand: playerHand,
		DealerHand: dealerHand,
		Deck:       d,
		Message:    "",
		Score:      score,
		Status:     model.StatusAwaitingAction,
	}

	c.logger.Info("round started",
		slog.String("player", string(player)),
		slog.Int("score", score),
	)

	return ps.game.Clone(), nil
}

// Apply dispatches a player action against their current round. Unknown
// actions fail with model.ErrInvalidAction without touching the session.
// Actions against a resolved round are idempotent: the resolved state is
// returned unchanged and nothing is persisted again.
//
// When an action resolves the round, the score is written through the
// store. A persistence failure is surfaced to the caller, but the
// in-memory session keeps its committed state so a re-poll still reflects
// the resolved round.
func (c *Controller) Apply(ctx context.Context, player model.PlayerID, action string) (*model.GameSession, error) {
	if action != ActionHit && action != ActionStand {
		return nil, model.ErrInvalidAction
	}

	ps := c.entry(player)
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if ps.game == nil {
		return nil, model.ErrNoActiveRound
	}
	g := ps.game

	if g.Resolved() {
		return g.Clone(), nil
	}

	var err error
	switch action {
	case ActionHit:
		err = c.hit(g)
	case ActionStand:
		err = c.stand(g)
	}
	if err != nil {
		return nil, err
	}

	if g.Resolved() {
		c.logger.Info("round resolved",
			slog.String("player", string(player)),
			slog.String("outcome", g.Message),
			slog.Int("score", g.Score),
		)
		if err := c.persistScore(ctx, g); err != nil {
			return nil, err
		}
	}

	return g.Clone(), nil
}

// hit deals one card to the player and resolves the round if the hand
// reached 21 or busted
func (c *Controller) hit(g *model.GameSession) error {
	cards, rest, err := c.deck.Deal(g.Deck, 1)
	if err != nil {
		return err
	}
	g.PlayerHand = append(g.PlayerHand, cards...)
	g.Deck = rest

	switch value := c.scoring.Value(g.PlayerHand); {
	case value == scoring.Blackjack:
		g.Resolve(MessageBlackjack, scoreDelta)
	case value > scoring.Blackjack:
		g.Resolve(MessagePlayerBust, -scoreDelta)
	}
	return nil
}

// stand plays out the dealer's hand and resolves the round. The dealer
// draws one card at a time while below 17 and never draws at 17 or above.
func (c *Controller) stand(g *model.GameSession) error {
	for c.scoring.Value(g.DealerHand) < dealerStand {
		cards, rest, err := c.deck.Deal(g.Deck, 1)
		if err != nil {
			return err
		}
		g.DealerHand = append(g.DealerHand, cards...)
		g.Deck = rest
	}

	dealerValue := c.scoring.Value(g.DealerHand)
	playerValue := c.scoring.Value(g.PlayerHand)

	switch {
	case dealerValue > scoring.Blackjack:
		g.Resolve(MessageDealerBust, scoreDelta)
	case dealerValue == scoring.Blackjack:
		g.Resolve(MessageDealerBlackjack, -scoreDelta)
	case playerValue > dealerValue:
		g.Resolve(MessageWin, scoreDelta)
	case playerValue < dealerValue:
		g.Resolve(MessageLose, -scoreDelta)
	default:
		g.Resolve(MessageDraw, 0)
	}
	return nil
}

// persistScore writes the session's score keyed by canonical player ID
func (c *Controller) persistScore(ctx context.Context, g *model.GameSession) error {
	if err := c.store.PutScore(ctx, g.Player, g.Score); err != nil {
		c.logger.Error("failed to persist score",
			slog.String("player", string(g.Player)),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}
