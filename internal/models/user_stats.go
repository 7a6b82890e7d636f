package models

import "time"

// UserStats holds per-user aggregate review statistics.
//
// LongestStreak and TotalReviews only ever grow; CurrentStreak resets when the
// user skips a calendar day. LastStudyDate is nil until the first review.
type UserStats struct {
	UserID        int        `json:"userId"`
	CurrentStreak int        `json:"currentStreak"`
	LongestStreak int        `json:"longestStreak"`
	TotalReviews  int        `json:"totalReviews"`
	LastStudyDate *time.Time `json:"lastStudyDate"`
}
