package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/blackjack-go/internal/model"
)

func card(rank model.Rank) model.Card {
	return model.Card{Suit: model.Spades, Rank: rank}
}

func TestValue(t *testing.T) {
	tests := []struct {
		name string
		hand model.Hand
		want int
	}{
		{
			name: "empty hand",
			hand: model.Hand{},
			want: 0,
		},
		{
			name: "numerals sum to face value",
			hand: model.Hand{card(model.RankTwo), card(model.RankSeven)},
			want: 9,
		},
		{
			name: "face cards count ten",
			hand: model.Hand{card(model.RankJack), card(model.RankQueen), card(model.RankKing)},
			want: 30,
		},
		{
			name: "bust with no aces",
			hand: model.Hand{card(model.RankTen), card(model.RankNine), card(model.RankFive)},
			want: 24,
		},
		{
			name: "ace plus king is blackjack",
			hand: model.Hand{card(model.RankAce), card(model.RankKing)},
			want: 21,
		},
		{
			name: "exactly one ace demoted",
			hand: model.Hand{card(model.RankAce), card(model.RankAce), card(model.RankNine)},
			want: 21,
		},
		{
			name: "two aces demoted",
			hand: model.Hand{card(model.RankAce), card(model.RankAce), card(model.RankAce), card(model.RankEight)},
			want: 21,
		},
		{
			name: "demotion happens after the full sum",
			// Summed per-card with early demotion this would come out
			// differently; the correct result is 11+5+11=27 then one
			// demotion to 17.
			hand: model.Hand{card(model.RankAce), card(model.RankFive), card(model.RankAce)},
			want: 17,
		},
		{
			name: "bust once all demotions are exhausted",
			hand: model.Hand{card(model.RankAce), card(model.RankKing), card(model.RankQueen), card(model.RankTwo)},
			want: 23,
		},
		{
			name: "soft ace stays eleven under 21",
			hand: model.Hand{card(model.RankAce), card(model.RankSix)},
			want: 17,
		},
	}

	service := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Value(tt.hand))
		})
	}
}

func TestIsBust(t *testing.T) {
	service := New()

	assert.False(t, service.IsBust(model.Hand{card(model.RankTen), card(model.RankJack), card(model.RankAce)}))
	assert.True(t, service.IsBust(model.Hand{card(model.RankTen), card(model.RankNine), card(model.RankFive)}))
}
