package models

import "time"

// ReviewLog records a single review event and the schedule change it caused
type ReviewLog struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	CardID         int       `json:"cardId"`
	Rating         int       `json:"rating"`
	IntervalBefore int       `json:"intervalBefore"`
	IntervalAfter  int       `json:"intervalAfter"`
	EaseBefore     float64   `json:"easeBefore"`
	EaseAfter      float64   `json:"easeAfter"`
	ReviewedAt     time.Time `json:"reviewedAt"`
}
