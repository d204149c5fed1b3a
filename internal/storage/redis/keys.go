package redis

import (
	"fmt"

	"github.com/mcoot/blackjack-go/internal/model"
)

// Key prefix for all blackjack data
const keyPrefix = "blackjack"

// scoreKey returns the Redis key for a player's score record. Player IDs
// are already canonical lowercase, so lookups are case-insensitive by
// construction.
func scoreKey(player model.PlayerID) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, player)
}
