package cli

// SessionRequest is the POST /session request body
type SessionRequest struct {
	Action    string `json:"action"`
	Player    string `json:"player"`
	Message   string `json:"message,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// Card is a card as rendered on the wire
type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

// GameResult is the game view returned by the session API
type GameResult struct {
	PlayerHand []Card `json:"playerHand"`
	DealerHand []Card `json:"dealerHand"`
	Message    string `json:"message"`
	Score      int    `json:"score"`
}

// TokenResult is the auth response
type TokenResult struct {
	Token string `json:"token"`
}

// HealthResult is the health check response
type HealthResult struct {
	Status string `json:"status"`
}
