package srs

import (
	"testing"
	"time"

	"github.com/studydeck/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleAt(cardID int, due time.Time, suspended bool) models.CardSchedule {
	return models.CardSchedule{
		UserID:       1,
		CardID:       cardID,
		Interval:     1,
		EaseFactor:   2.5,
		NextReviewAt: due,
		Suspended:    suspended,
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		schedule models.CardSchedule
		expected bool
	}{
		{
			name:     "past due date",
			schedule: scheduleAt(1, now.Add(-time.Hour), false),
			expected: true,
		},
		{
			name:     "due exactly now",
			schedule: scheduleAt(1, now, false),
			expected: true,
		},
		{
			name:     "due in the future",
			schedule: scheduleAt(1, now.Add(time.Hour), false),
			expected: false,
		},
		{
			name:     "suspended card is never due",
			schedule: scheduleAt(1, now.Add(-time.Hour), true),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDue(tt.schedule, now))
		})
	}
}

func TestDueCards_OrderingAndCorrectness(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	schedules := []models.CardSchedule{
		scheduleAt(1, now.Add(-time.Hour), false),
		scheduleAt(2, now.Add(time.Hour), false),     // not due yet
		scheduleAt(3, now.Add(-48*time.Hour), false), // earliest
		scheduleAt(4, now.Add(-time.Minute), true),   // suspended
		scheduleAt(5, now, false),
	}

	due := DueCards(schedules, now)

	require.Len(t, due, 3)
	assert.Equal(t, 3, due[0].CardID)
	assert.Equal(t, 1, due[1].CardID)
	assert.Equal(t, 5, due[2].CardID)

	for _, s := range due {
		assert.True(t, IsDue(s, now))
	}
}

func TestDueCards_StableForEqualDueDates(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)

	schedules := []models.CardSchedule{
		scheduleAt(7, due, false),
		scheduleAt(3, due, false),
		scheduleAt(9, due, false),
	}

	first := DueCards(schedules, now)
	second := DueCards(schedules, now)

	// Ties keep input order, and repeated queries agree.
	require.Len(t, first, 3)
	assert.Equal(t, []int{7, 3, 9}, []int{first[0].CardID, first[1].CardID, first[2].CardID})
	assert.Equal(t, first, second)
}

func TestDueCards_DoesNotMutateInput(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	schedules := []models.CardSchedule{
		scheduleAt(2, now.Add(-time.Hour), false),
		scheduleAt(1, now.Add(-2*time.Hour), false),
	}
	original := make([]models.CardSchedule, len(schedules))
	copy(original, schedules)

	DueCards(schedules, now)

	assert.Equal(t, original, schedules)
}

func TestDueCount_MatchesDueCards(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		schedules []models.CardSchedule
	}{
		{
			name:      "empty set",
			schedules: nil,
		},
		{
			name: "mixed set",
			schedules: []models.CardSchedule{
				scheduleAt(1, now.Add(-time.Hour), false),
				scheduleAt(2, now.Add(time.Hour), false),
				scheduleAt(3, now.Add(-time.Hour), true),
				scheduleAt(4, now, false),
			},
		},
		{
			name: "all suspended",
			schedules: []models.CardSchedule{
				scheduleAt(1, now.Add(-time.Hour), true),
				scheduleAt(2, now.Add(-time.Minute), true),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, len(DueCards(tt.schedules, now)), DueCount(tt.schedules, now))
		})
	}
}
