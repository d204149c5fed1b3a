package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blackjack-go/internal/dependencies/mocks"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/deck"
	"github.com/mcoot/blackjack-go/internal/services/scoring"
	"github.com/mcoot/blackjack-go/internal/storage/memory"
	"github.com/mcoot/blackjack-go/internal/testutil"
)

// The mock random returns queued indices and falls back to 0, so deals
// are fully deterministic. Build order is suit-major starting at spades:
// with all-zero draws the dealer opens with A♠ 2♠ (13) and the player
// with 3♠ 4♠ (7), leaving 5♠ 6♠ 7♠ ... at the head of the deck.
type ControllerSuite struct {
	suite.Suite
	store      *memory.Store
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
	player     model.PlayerID
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.store = memory.New()
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.store, deck.New(s.random), scoring.New(), testutil.NopLogger())
	s.ctx = context.Background()
	s.player = model.CanonicalPlayerID("0xAbC123")
}

// requireInvariant checks that deck and hands together hold exactly the
// 52-card universe
func (s *ControllerSuite) requireInvariant(g *model.GameSession) {
	s.T().Helper()
	seen := make(map[model.Card]bool, 52)
	count := 0
	for _, h := range []model.Hand{g.PlayerHand, g.DealerHand, model.Hand(g.Deck)} {
		for _, c := range h {
			s.Require().False(seen[c], "card %v appears twice", c)
			seen[c] = true
			count++
		}
	}
	s.Require().Equal(52, count)
}

// StartRound tests

func (s *ControllerSuite) TestStartRoundDealsTwoCardsEach() {
	g, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	s.Len(g.PlayerHand, 2)
	s.Len(g.DealerHand, 2)
	s.Len(g.Deck, 48)
	s.Equal(model.StatusAwaitingAction, g.Status)
	s.Equal("", g.Message)
	s.Equal(0, g.Score)
	s.requireInvariant(g)
}

func (s *ControllerSuite) TestStartRoundLoadsPersistedScore() {
	s.Require().NoError(s.store.PutScore(s.ctx, s.player, 500))

	g, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)
	s.Equal(500, g.Score)
}

func (s *ControllerSuite) TestStartRoundDefaultsMissingScoreToZero() {
	g, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)
	s.Equal(0, g.Score)
}

func (s *ControllerSuite) TestStartRoundPropagatesStoreFailure() {
	controller := NewController(&failingStore{failGet: true}, deck.New(s.random), scoring.New(), testutil.NopLogger())

	_, err := controller.StartRound(s.ctx, s.player)
	s.ErrorIs(err, model.ErrStoreUnavailable)
}

func (s *ControllerSuite) TestStartRoundReplacesPreviousRound() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Resolve the round, then start a new one
	_, err = s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)

	g, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)
	s.Equal(model.StatusAwaitingAction, g.Status)
	s.Equal("", g.Message)
	s.Len(g.PlayerHand, 2)
}

// Apply / hit tests

func (s *ControllerSuite) TestApplyUnknownActionFails() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	_, err = s.controller.Apply(s.ctx, s.player, "double")
	s.ErrorIs(err, model.ErrInvalidAction)

	// No mutation happened
	g, err := s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)
	s.Len(g.PlayerHand, 3)
}

func (s *ControllerSuite) TestApplyWithoutRoundFails() {
	_, err := s.controller.Apply(s.ctx, s.player, ActionHit)
	s.ErrorIs(err, model.ErrNoActiveRound)
}

func (s *ControllerSuite) TestHitBelowTwentyOneStaysAwaiting() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Player 7 draws 5♠ for 12
	g, err := s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)

	s.Equal(model.StatusAwaitingAction, g.Status)
	s.Equal("", g.Message)
	s.Len(g.PlayerHand, 3)
	s.requireInvariant(g)
}

func (s *ControllerSuite) TestHitToBustResolvesAndDeductsScore() {
	s.Require().NoError(s.store.PutScore(s.ctx, s.player, 300))

	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// 7 -> 12 -> 18 -> 25: bust on the third hit
	var g *model.GameSession
	for i := 0; i < 3; i++ {
		g, err = s.controller.Apply(s.ctx, s.player, ActionHit)
		s.Require().NoError(err)
	}

	s.Equal(model.StatusResolved, g.Status)
	s.Equal(MessagePlayerBust, g.Message)
	s.Equal(200, g.Score)
	s.requireInvariant(g)

	stored, err := s.store.GetScore(s.ctx, s.player)
	s.Require().NoError(err)
	s.Equal(200, stored)
}

func (s *ControllerSuite) TestHitToTwentyOneIsBlackjackWin() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Player 7 draws 10♠ (17), then 4♥ for exactly 21
	s.random.QueueIntn(5, 11)

	g, err := s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)
	s.Equal(model.StatusAwaitingAction, g.Status)

	g, err = s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)
	s.Equal(model.StatusResolved, g.Status)
	s.Equal(MessageBlackjack, g.Message)
	s.Equal(100, g.Score)

	stored, err := s.store.GetScore(s.ctx, s.player)
	s.Require().NoError(err)
	s.Equal(100, stored)
}

// Stand tests

func (s *ControllerSuite) TestStandDealerStopsAtSeventeen() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Dealer 13 draws 4♥ for exactly 17 and must stop there
	s.random.QueueIntn(12)

	g, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)

	s.Len(g.DealerHand, 3)
	s.Equal(model.StatusResolved, g.Status)
	// Player 7 vs dealer 17
	s.Equal(MessageLose, g.Message)
	s.Equal(-100, g.Score)
	s.requireInvariant(g)
}

func (s *ControllerSuite) TestStandDealerBustIsWin() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Dealer 13 draws K♠ for 23
	s.random.QueueIntn(8)

	g, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)

	s.Equal(MessageDealerBust, g.Message)
	s.Equal(100, g.Score)
}

func (s *ControllerSuite) TestStandDealerTwentyOneIsLoss() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Dealer 13 draws 8♠ for exactly 21
	s.random.QueueIntn(3)

	g, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)

	s.Equal(MessageDealerBlackjack, g.Message)
	s.Equal(-100, g.Score)
}

func (s *ControllerSuite) TestStandHigherPlayerWins() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Player 7 draws 9♠ (16) then 3♥ (19); dealer 13 draws 5♠ for 18
	s.random.QueueIntn(4, 10)

	_, err = s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)
	_, err = s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)

	g, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)

	s.Equal(MessageWin, g.Message)
	s.Equal(100, g.Score)
}

func (s *ControllerSuite) TestStandEqualValuesIsDraw() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	// Player 7 draws 10♠ for 17; dealer 13 draws 4♥ for 17
	s.random.QueueIntn(5, 11)

	_, err = s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)

	g, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)

	s.Equal(MessageDraw, g.Message)
	s.Equal(0, g.Score)

	// A draw still persists the (unchanged) score
	stored, err := s.store.GetScore(s.ctx, s.player)
	s.Require().NoError(err)
	s.Equal(0, stored)
}

// Idempotence and persistence-failure tests

func (s *ControllerSuite) TestActionsAfterResolvedAreIdempotent() {
	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	resolved, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)
	s.Require().Equal(model.StatusResolved, resolved.Status)

	again, err := s.controller.Apply(s.ctx, s.player, ActionHit)
	s.Require().NoError(err)
	s.Equal(resolved, again)

	andAgain, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)
	s.Equal(resolved, andAgain)
}

func (s *ControllerSuite) TestPersistFailureKeepsResolvedState() {
	store := &failingStore{failPut: true}
	controller := NewController(store, deck.New(s.random), scoring.New(), testutil.NopLogger())

	_, err := controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	_, err = controller.Apply(s.ctx, s.player, ActionStand)
	s.ErrorIs(err, model.ErrStoreUnavailable)

	// The round stayed committed in memory: a retried action returns the
	// resolved state without re-persisting
	g, err := controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)
	s.Equal(model.StatusResolved, g.Status)
	s.Equal(-100, g.Score)
	s.requireInvariant(g)
}

// Isolation tests

func (s *ControllerSuite) TestPlayersHaveIndependentSessions() {
	other := model.CanonicalPlayerID("0xDeF456")

	_, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)
	_, err = s.controller.StartRound(s.ctx, other)
	s.Require().NoError(err)

	// Resolving one player's round leaves the other untouched
	_, err = s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)

	g, err := s.controller.Apply(s.ctx, other, ActionHit)
	s.Require().NoError(err)
	s.Len(g.PlayerHand, 3)
}

func (s *ControllerSuite) TestReturnedSessionIsACopy() {
	g, err := s.controller.StartRound(s.ctx, s.player)
	s.Require().NoError(err)

	g.PlayerHand[0] = model.Card{Suit: model.Clubs, Rank: model.RankKing}
	g.Score = 9999

	fresh, err := s.controller.Apply(s.ctx, s.player, ActionStand)
	s.Require().NoError(err)
	s.NotEqual(9999, fresh.Score+100)
	s.NotEqual(model.Card{Suit: model.Clubs, Rank: model.RankKing}, fresh.PlayerHand[0])
}

// failingStore simulates score store transport failures
type failingStore struct {
	failGet bool
	failPut bool
}

func (f *failingStore) GetScore(_ context.Context, _ model.PlayerID) (int, error) {
	if f.failGet {
		return 0, fmt.Errorf("%w: connection refused", model.ErrStoreUnavailable)
	}
	return 0, model.ErrScoreNotFound
}

func (f *failingStore) PutScore(_ context.Context, _ model.PlayerID, _ int) error {
	if f.failPut {
		return fmt.Errorf("%w: connection refused", model.ErrStoreUnavailable)
	}
	return nil
}
