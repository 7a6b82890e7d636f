package srs

import (
	"sort"
	"time"

	"github.com/studydeck/backend/internal/models"
)

// IsDue reports whether a card is eligible for review at the given instant.
// Suspended cards are never due, regardless of their due date.
func IsDue(s models.CardSchedule, now time.Time) bool {
	return !s.Suspended && !s.NextReviewAt.After(now)
}

// DueCards returns the subset of schedules that are due at the given instant,
// ordered by due date ascending. The sort is stable, so equal due dates keep
// their input order and the same input always yields the same output. The
// input slice is not modified.
func DueCards(schedules []models.CardSchedule, now time.Time) []models.CardSchedule {
	var due []models.CardSchedule
	for _, s := range schedules {
		if IsDue(s, now) {
			due = append(due, s)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})

	return due
}

// DueCount returns the number of schedules that are due at the given instant.
// It always equals len(DueCards(schedules, now)).
func DueCount(schedules []models.CardSchedule, now time.Time) int {
	count := 0
	for _, s := range schedules {
		if IsDue(s, now) {
			count++
		}
	}
	return count
}
