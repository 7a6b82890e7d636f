package models

import "time"

// CardSchedule holds the spaced-repetition state for one (user, card) pair.
//
// The row is created with defaults the first time the card becomes visible to
// the user and from then on is mutated only by review transitions. Interval is
// in days; 0 means the card has never been reviewed.
type CardSchedule struct {
	UserID       int       `json:"userId"`
	CardID       int       `json:"cardId"`
	Interval     int       `json:"interval"`
	EaseFactor   float64   `json:"easeFactor"`
	Repetitions  int       `json:"repetitions"`
	NextReviewAt time.Time `json:"nextReviewAt"`
	Suspended    bool      `json:"suspended"`
}

// NewCardSchedule returns the default schedule for a card the user has never
// reviewed: due immediately, ease factor 2.5.
func NewCardSchedule(userID, cardID int, now time.Time) CardSchedule {
	return CardSchedule{
		UserID:       userID,
		CardID:       cardID,
		Interval:     0,
		EaseFactor:   2.5,
		Repetitions:  0,
		NextReviewAt: now,
		Suspended:    false,
	}
}
