package scoring

import (
	"strconv"

	"github.com/mcoot/blackjack-go/internal/model"
)

// Blackjack is the target hand value.
const Blackjack = 21

// Service computes blackjack hand values
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Value returns the blackjack value of a hand. Aces count as 11, face
// cards as 10, numeral cards as their face value. Aces are demoted to 1
// one at a time, only after the complete hand has been summed, while the
// total exceeds 21. The result may still exceed 21 once every ace has
// been demoted (a bust).
func (s *Service) Value(hand model.Hand) int {
	total := 0
	aces := 0

	for _, card := range hand {
		switch card.Rank {
		case model.RankAce:
			aces++
			total += 11
		case model.RankJack, model.RankQueen, model.RankKing:
			total += 10
		default:
			n, _ := strconv.Atoi(string(card.Rank))
			total += n
		}
	}

	for total > Blackjack && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBust reports whether a hand's value strictly exceeds 21.
func (s *Service) IsBust(hand model.Hand) bool {
	return s.Value(hand) > Blackjack
}
