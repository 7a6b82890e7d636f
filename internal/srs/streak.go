package srs

import "time"

// NextStreak computes the user's consecutive-day study streak after a review
// on today. lastStudyDate is nil for a user's first-ever review. Dates are
// compared by calendar day in the timestamps' own locations.
//
// Same-day reviews leave the streak unchanged, a review exactly one day after
// the last one extends it, and anything else (a gap of two or more days, or a
// clock that moved backwards) resets it to 1.
func NextStreak(lastStudyDate *time.Time, currentStreak int, today time.Time) int {
	if lastStudyDate == nil {
		return 1
	}

	switch {
	case sameDay(*lastStudyDate, today):
		if currentStreak < 1 {
			return 1
		}
		return currentStreak
	case sameDay(lastStudyDate.AddDate(0, 0, 1), today):
		return currentStreak + 1
	default:
		return 1
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
