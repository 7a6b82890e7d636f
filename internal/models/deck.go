package models

// Deck represents a collection of cards a user studies together
type Deck struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CardCount   int    `json:"cardCount"`
}
