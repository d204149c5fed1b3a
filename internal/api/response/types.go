package response

import (
	"github.com/mcoot/blackjack-go/internal/model"
)

// Message is the flat payload used for every error response. The shape is
// part of the compatibility surface; clients key on the message text.
type Message struct {
	Message string `json:"message"`
}

// Card mirrors model.Card on the wire
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// hiddenCard masks the dealer's hole card until the round resolves
var hiddenCard = Card{Suit: "?", Rank: "?"}

// Game is the player-facing view of a round
type Game struct {
	PlayerHand []Card `json:"playerHand"`
	DealerHand []Card `json:"dealerHand"`
	Message    string `json:"message"`
	Score      int    `json:"score"`
}

// Token is returned after a successful wallet authentication
type Token struct {
	Token string `json:"token"`
}

// GameFromSession converts a session to its player-facing view. While the
// round is awaiting action, only the dealer's first card is shown and the
// hole card is replaced by a placeholder; the full dealer hand is
// revealed once the round resolves.
func GameFromSession(g *model.GameSession) Game {
	dealer := handFromModel(g.DealerHand)
	if !g.Resolved() && len(dealer) > 0 {
		dealer = []Card{dealer[0], hiddenCard}
	}

	return Game{
		PlayerHand: handFromModel(g.PlayerHand),
		DealerHand: dealer,
		Message:    g.Message,
		Score:      g.Score,
	}
}

func handFromModel(h model.Hand) []Card {
	cards := make([]Card, len(h))
	for i, c := range h {
		cards[i] = Card{Suit: string(c.Suit), Rank: string(c.Rank)}
	}
	return cards
}
