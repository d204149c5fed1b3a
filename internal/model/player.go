package model

import "strings"

// PlayerID identifies a player by wallet address in canonical lowercase
// form. Construct one with CanonicalPlayerID; raw addresses from requests
// or token subjects must not be used as map or storage keys directly.
type PlayerID string

// CanonicalPlayerID normalizes a wallet address into the form used for
// session keying, token subjects and score persistence. Addresses compare
// case-insensitively, so the canonical form is lowercase.
func CanonicalPlayerID(address string) PlayerID {
	return PlayerID(strings.ToLower(strings.TrimSpace(address)))
}

// ScoreRecord is the persisted per-player score. It outlives any single
// session and never expires.
type ScoreRecord struct {
	Player PlayerID `json:"player"`
	Score  int      `json:"score"`
}
