package models

import "time"

// Card represents a single study card inside a deck
type Card struct {
	ID     int    `json:"id"`
	DeckID int    `json:"deckId"`
	Front  string `json:"front"`
	Back   string `json:"back"`
}

// DueCard is a card joined with its scheduling state, as returned by the due queue
type DueCard struct {
	CardID       int       `json:"cardId"`
	DeckID       int       `json:"deckId"`
	Front        string    `json:"front"`
	Back         string    `json:"back"`
	Interval     int       `json:"interval"`
	EaseFactor   float64   `json:"easeFactor"`
	Repetitions  int       `json:"repetitions"`
	NextReviewAt time.Time `json:"nextReviewAt"`
}
