// Package srs implements the spaced-repetition scheduler used for review cards.
//
// The scheduler is an SM-2 variant: each (user, card) pair carries an interval
// in days and an ease factor, and every review rating produces the next
// interval, ease factor and due date. All functions in this package are pure;
// the current instant is passed in explicitly so transitions are deterministic.
package srs

import (
	"math"
	"time"
)

// Rating is the user's recall quality for a single review.
type Rating int

const (
	Again Rating = 1
	Hard  Rating = 2
	Good  Rating = 3
	Easy  Rating = 4
)

// Scheduling constants. Changing these changes every future due date, so they
// are fixed here rather than configurable.
const (
	// DefaultEase is the ease factor assigned to a card that has never been reviewed.
	DefaultEase = 2.5
	// MinEase is the floor below which the ease factor never drops.
	MinEase = 1.3

	// relearnInterval is the interval (days) a lapsed card resets to.
	relearnInterval = 1

	againPenalty = 0.20
	hardPenalty  = 0.15
	easyBonus    = 0.15

	hardGrowth = 1.2
	easyGrowth = 1.3
)

// Schedule is the result of a scheduling transition.
type Schedule struct {
	Interval     int
	EaseFactor   float64
	NextReviewAt time.Time
}

// Valid reports whether the rating is one of the four defined values.
func (r Rating) Valid() bool {
	return r >= Again && r <= Easy
}

// String returns the rating name as shown to users.
func (r Rating) String() string {
	switch r {
	case Again:
		return "again"
	case Hard:
		return "hard"
	case Good:
		return "good"
	case Easy:
		return "easy"
	default:
		return "unknown"
	}
}

// CorrectnessRating maps a binary quiz outcome onto a rating. Multiple-choice
// answers carry no recall-quality nuance, so a correct answer schedules like
// Good and an incorrect one like Again. This is a separate policy from the
// four-button rating path and must stay that way.
func CorrectnessRating(correct bool) Rating {
	if correct {
		return Good
	}
	return Again
}

// Transition computes the next schedule for a card given its current interval
// (days, 0 for a never-reviewed card), its current ease factor and the review
// rating. The returned due date is now plus the new interval in whole days.
//
// The function is total: every rating and every non-negative interval/ease
// combination produces a defined result. Rounding is math.Round throughout.
func Transition(interval int, easeFactor float64, rating Rating, now time.Time) Schedule {
	var (
		nextInterval int
		nextEase     float64
	)

	switch rating {
	case Again:
		// Lapse: collapse to the relearning interval and penalize ease.
		nextInterval = relearnInterval
		nextEase = clampEase(easeFactor - againPenalty)
	case Hard:
		if interval == 0 {
			nextInterval = 1
		} else {
			nextInterval = int(math.Round(float64(interval) * hardGrowth))
			if nextInterval < 1 {
				nextInterval = 1
			}
		}
		nextEase = clampEase(easeFactor - hardPenalty)
	case Easy:
		// Good-path growth with a flat bonus, computed from the prior
		// interval so no intermediate rounding leaks into the result.
		nextInterval = int(math.Round(goodGrowth(interval, easeFactor) * easyGrowth))
		if nextInterval < 1 {
			nextInterval = 1
		}
		nextEase = clampEase(easeFactor + easyBonus)
	default:
		// Good is the canonical SM-2 step; treat it as the switch default so
		// the transition stays total even for out-of-range ratings, which the
		// service layer rejects before calling here.
		nextInterval = int(math.Round(goodGrowth(interval, easeFactor)))
		nextEase = clampEase(easeFactor)
	}

	return Schedule{
		Interval:     nextInterval,
		EaseFactor:   nextEase,
		NextReviewAt: now.AddDate(0, 0, nextInterval),
	}
}

// goodGrowth returns the unrounded Good-path interval: 0 -> 1, 1 -> 6,
// otherwise interval * ease.
func goodGrowth(interval int, easeFactor float64) float64 {
	switch interval {
	case 0:
		return 1
	case 1:
		return 6
	default:
		return float64(interval) * easeFactor
	}
}

func clampEase(ease float64) float64 {
	if ease < MinEase {
		return MinEase
	}
	return ease
}
