package model

import "errors"

// Common errors used across the application
var (
	// Deck errors
	ErrInsufficientCards = errors.New("not enough cards left in deck")

	// Game errors
	ErrInvalidAction = errors.New("invalid action")
	ErrNoActiveRound = errors.New("no active round for player")

	// Auth errors
	ErrInvalidSignature = errors.New("signature invalid")
	ErrTokenExpired     = errors.New("token has expired")
	ErrTokenInvalid     = errors.New("token is invalid")
	ErrUnauthorized     = errors.New("player does not match token subject")

	// Storage errors
	ErrScoreNotFound    = errors.New("no score recorded for player")
	ErrStoreUnavailable = errors.New("score store unavailable")
)
