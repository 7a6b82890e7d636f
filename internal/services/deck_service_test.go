package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studydeck/backend/internal/models"
	"go.uber.org/zap"
)

// mockDeckCardRepository is a mock implementation of DeckCardRepository
type mockDeckCardRepository struct {
	decks     []models.Deck
	cards     []models.Card
	cardsByID map[int]models.Card
	err       error
}

func (m *mockDeckCardRepository) GetDecks(ctx context.Context) ([]models.Deck, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.decks, nil
}

func (m *mockDeckCardRepository) GetByDeckID(ctx context.Context, deckID int) ([]models.Card, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cards, nil
}

func (m *mockDeckCardRepository) GetByIDs(ctx context.Context, ids []int) (map[int]models.Card, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cardsByID, nil
}

// newTestDeckService wires a deck service with the given mocks and a fixed clock
func newTestDeckService(cardRepo *mockDeckCardRepository, scheduleRepo *mockCardScheduleRepository) *deckService {
	logger, _ := zap.NewDevelopment()
	svc := NewDeckService(cardRepo, scheduleRepo, logger)
	svc.now = func() time.Time { return testNow }
	return svc
}

func TestNewDeckService(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	cardRepo := &mockDeckCardRepository{}
	scheduleRepo := &mockCardScheduleRepository{}

	svc := NewDeckService(cardRepo, scheduleRepo, logger)

	assert.NotNil(t, svc)
	assert.Equal(t, cardRepo, svc.cardRepo)
	assert.Equal(t, scheduleRepo, svc.scheduleRepo)
	assert.Equal(t, logger, svc.logger)
	assert.NotNil(t, svc.now)
}

func TestDeckService_GetDecks(t *testing.T) {
	tests := []struct {
		name          string
		cardRepo      *mockDeckCardRepository
		expectedError bool
		expectedCount int
	}{
		{
			name: "success",
			cardRepo: &mockDeckCardRepository{
				decks: []models.Deck{
					{ID: 1, Title: "JLPT N5 Vocabulary", CardCount: 120},
					{ID: 2, Title: "Kanji Radicals", CardCount: 0},
				},
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name:          "database error",
			cardRepo:      &mockDeckCardRepository{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestDeckService(tt.cardRepo, &mockCardScheduleRepository{})

			decks, err := svc.GetDecks(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, decks)
			} else {
				assert.NoError(t, err)
				assert.Len(t, decks, tt.expectedCount)
			}
		})
	}
}

func TestDeckService_GetDeckCards(t *testing.T) {
	tests := []struct {
		name          string
		deckID        int
		cardRepo      *mockDeckCardRepository
		scheduleRepo  *mockCardScheduleRepository
		expectedError bool
		errorContains string
		expectedCount int
	}{
		{
			name:   "success - schedules ensured before cards are returned",
			deckID: 3,
			cardRepo: &mockDeckCardRepository{
				cards: []models.Card{
					{ID: 10, DeckID: 3, Front: "犬", Back: "dog"},
					{ID: 11, DeckID: 3, Front: "猫", Back: "cat"},
				},
			},
			scheduleRepo:  &mockCardScheduleRepository{},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name:          "zero deck id",
			deckID:        0,
			cardRepo:      &mockDeckCardRepository{},
			scheduleRepo:  &mockCardScheduleRepository{},
			expectedError: true,
			errorContains: "invalid deck id",
		},
		{
			name:          "negative deck id",
			deckID:        -1,
			cardRepo:      &mockDeckCardRepository{},
			scheduleRepo:  &mockCardScheduleRepository{},
			expectedError: true,
			errorContains: "invalid deck id",
		},
		{
			name:          "schedule creation error",
			deckID:        3,
			cardRepo:      &mockDeckCardRepository{},
			scheduleRepo:  &mockCardScheduleRepository{ensureErr: errors.New("database error")},
			expectedError: true,
			errorContains: "failed to prepare deck",
		},
		{
			name:          "card lookup error",
			deckID:        3,
			cardRepo:      &mockDeckCardRepository{err: errors.New("database error")},
			scheduleRepo:  &mockCardScheduleRepository{},
			expectedError: true,
			errorContains: "failed to get deck cards",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestDeckService(tt.cardRepo, tt.scheduleRepo)

			cards, err := svc.GetDeckCards(context.Background(), 1, tt.deckID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, cards)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				assert.NoError(t, err)
				assert.Len(t, cards, tt.expectedCount)
				assert.Equal(t, tt.deckID, tt.scheduleRepo.ensuredDeckID)
			}
		})
	}
}

func TestDeckService_GetDueCards(t *testing.T) {
	overdue := testNow.AddDate(0, 0, -2)
	dueNow := testNow
	future := testNow.AddDate(0, 0, 3)

	schedules := []models.CardSchedule{
		{UserID: 1, CardID: 10, Interval: 1, EaseFactor: 2.5, Repetitions: 1, NextReviewAt: dueNow},
		{UserID: 1, CardID: 11, Interval: 6, EaseFactor: 2.3, Repetitions: 4, NextReviewAt: overdue},
		{UserID: 1, CardID: 12, Interval: 6, EaseFactor: 2.5, Repetitions: 3, NextReviewAt: future},
		{UserID: 1, CardID: 13, Interval: 1, EaseFactor: 2.5, Repetitions: 1, NextReviewAt: overdue, Suspended: true},
	}
	cardsByID := map[int]models.Card{
		10: {ID: 10, DeckID: 3, Front: "犬", Back: "dog"},
		11: {ID: 11, DeckID: 3, Front: "猫", Back: "cat"},
	}

	t.Run("due cards ordered earliest first, suspended and future excluded", func(t *testing.T) {
		cardRepo := &mockDeckCardRepository{cardsByID: cardsByID}
		scheduleRepo := &mockCardScheduleRepository{schedules: schedules}
		svc := newTestDeckService(cardRepo, scheduleRepo)

		due, err := svc.GetDueCards(context.Background(), 1, nil)

		require.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, 11, due[0].CardID)
		assert.Equal(t, 10, due[1].CardID)
		assert.Equal(t, "猫", due[0].Front)
		assert.Equal(t, 6, due[0].Interval)
	})

	t.Run("orphaned schedule is skipped", func(t *testing.T) {
		cardRepo := &mockDeckCardRepository{
			cardsByID: map[int]models.Card{
				11: {ID: 11, DeckID: 3, Front: "猫", Back: "cat"},
			},
		}
		scheduleRepo := &mockCardScheduleRepository{schedules: schedules}
		svc := newTestDeckService(cardRepo, scheduleRepo)

		due, err := svc.GetDueCards(context.Background(), 1, nil)

		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, 11, due[0].CardID)
	})

	t.Run("nothing due returns an empty slice", func(t *testing.T) {
		cardRepo := &mockDeckCardRepository{}
		scheduleRepo := &mockCardScheduleRepository{
			schedules: []models.CardSchedule{
				{UserID: 1, CardID: 12, NextReviewAt: future},
			},
		}
		svc := newTestDeckService(cardRepo, scheduleRepo)

		due, err := svc.GetDueCards(context.Background(), 1, nil)

		require.NoError(t, err)
		assert.NotNil(t, due)
		assert.Empty(t, due)
	})

	t.Run("schedule lookup error", func(t *testing.T) {
		cardRepo := &mockDeckCardRepository{}
		scheduleRepo := &mockCardScheduleRepository{getErr: errors.New("database error")}
		svc := newTestDeckService(cardRepo, scheduleRepo)

		due, err := svc.GetDueCards(context.Background(), 1, nil)

		assert.Error(t, err)
		assert.Nil(t, due)
	})

	t.Run("card lookup error", func(t *testing.T) {
		cardRepo := &mockDeckCardRepository{err: errors.New("database error")}
		scheduleRepo := &mockCardScheduleRepository{schedules: schedules}
		svc := newTestDeckService(cardRepo, scheduleRepo)

		due, err := svc.GetDueCards(context.Background(), 1, nil)

		assert.Error(t, err)
		assert.Nil(t, due)
	})
}

func TestDeckService_GetDueCount(t *testing.T) {
	overdue := testNow.AddDate(0, 0, -2)
	future := testNow.AddDate(0, 0, 3)

	schedules := []models.CardSchedule{
		{UserID: 1, CardID: 10, NextReviewAt: testNow},
		{UserID: 1, CardID: 11, NextReviewAt: overdue},
		{UserID: 1, CardID: 12, NextReviewAt: future},
		{UserID: 1, CardID: 13, NextReviewAt: overdue, Suspended: true},
	}

	t.Run("count agrees with the due list", func(t *testing.T) {
		cardRepo := &mockDeckCardRepository{
			cardsByID: map[int]models.Card{
				10: {ID: 10, DeckID: 3},
				11: {ID: 11, DeckID: 3},
			},
		}
		scheduleRepo := &mockCardScheduleRepository{schedules: schedules}
		svc := newTestDeckService(cardRepo, scheduleRepo)

		count, err := svc.GetDueCount(context.Background(), 1, nil)
		require.NoError(t, err)

		due, err := svc.GetDueCards(context.Background(), 1, nil)
		require.NoError(t, err)

		assert.Equal(t, len(due), count)
		assert.Equal(t, 2, count)
	})

	t.Run("no schedules", func(t *testing.T) {
		svc := newTestDeckService(&mockDeckCardRepository{}, &mockCardScheduleRepository{})

		count, err := svc.GetDueCount(context.Background(), 1, nil)

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("database error", func(t *testing.T) {
		scheduleRepo := &mockCardScheduleRepository{getErr: errors.New("database error")}
		svc := newTestDeckService(&mockDeckCardRepository{}, scheduleRepo)

		count, err := svc.GetDueCount(context.Background(), 1, nil)

		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}
