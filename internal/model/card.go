package model

// Suit is one of the four card suits. The glyphs are part of the wire
// format; clients render them directly.
type Suit string

const (
	Spades   Suit = "♠️"
	Hearts   Suit = "♥️"
	Diamonds Suit = "♦️"
	Clubs    Suit = "♣️"
)

// Suits lists every suit in deck-construction order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// Rank is a card rank, "A" through "K".
type Rank string

const (
	RankAce   Rank = "A"
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

// Ranks lists every rank in deck-construction order.
var Ranks = []Rank{
	RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
	RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
}

// Card is an immutable (suit, rank) pair.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Deck is the set of cards not yet dealt. A fresh deck holds the full
// 52-card universe, one card per (suit, rank) pair.
type Deck []Card

// Hand is an ordered sequence of dealt cards. Order is irrelevant to the
// hand's value but preserved for display.
type Hand []Card
