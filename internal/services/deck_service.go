package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studydeck/backend/internal/models"
	"github.com/studydeck/backend/internal/srs"
	"go.uber.org/zap"
)

// DeckCardRepository is the interface that wraps methods for decks/cards table data access
type DeckCardRepository interface {
	// Method GetDecks retrieves all decks with their card counts.
	GetDecks(ctx context.Context) ([]models.Deck, error)
	// Method GetByDeckID retrieves all cards belonging to a deck.
	GetByDeckID(ctx context.Context, deckID int) ([]models.Card, error)
	// Method GetByIDs retrieves cards keyed by card ID.
	//
	// IDs without a matching card are simply absent from the result map.
	GetByIDs(ctx context.Context, ids []int) (map[int]models.Card, error)
}

// deckService implements deck browsing and the due queue
type deckService struct {
	cardRepo     DeckCardRepository
	scheduleRepo CardScheduleRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewDeckService creates a new deck service
func NewDeckService(cardRepo DeckCardRepository, scheduleRepo CardScheduleRepository, logger *zap.Logger) *deckService {
	return &deckService{
		cardRepo:     cardRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// GetDecks retrieves all decks
func (s *deckService) GetDecks(ctx context.Context) ([]models.Deck, error) {
	decks, err := s.cardRepo.GetDecks(ctx)
	if err != nil {
		s.logger.Error("failed to get decks", zap.Error(err))
		return nil, fmt.Errorf("failed to get decks: %w", err)
	}
	return decks, nil
}

// GetDeckCards retrieves the cards of a deck for a user. Opening a deck is
// what makes its cards visible, so default schedule rows are created here for
// any card the user has not seen before.
func (s *deckService) GetDeckCards(ctx context.Context, userID, deckID int) ([]models.Card, error) {
	if deckID <= 0 {
		return nil, fmt.Errorf("invalid deck id")
	}

	if err := s.scheduleRepo.EnsureForDeck(ctx, userID, deckID, s.now()); err != nil {
		s.logger.Error("failed to ensure card schedules", zap.Error(err),
			zap.Int("user_id", userID), zap.Int("deck_id", deckID))
		return nil, fmt.Errorf("failed to prepare deck: %w", err)
	}

	cards, err := s.cardRepo.GetByDeckID(ctx, deckID)
	if err != nil {
		s.logger.Error("failed to get deck cards", zap.Error(err), zap.Int("deck_id", deckID))
		return nil, fmt.Errorf("failed to get deck cards: %w", err)
	}
	return cards, nil
}

// GetDueCards retrieves the user's due cards ordered earliest-due first,
// optionally scoped to a deck.
func (s *deckService) GetDueCards(ctx context.Context, userID int, deckID *int) ([]models.DueCard, error) {
	schedules, err := s.scheduleRepo.GetByUser(ctx, userID, deckID)
	if err != nil {
		s.logger.Error("failed to get card schedules", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to get due cards: %w", err)
	}

	due := srs.DueCards(schedules, s.now())
	if len(due) == 0 {
		return []models.DueCard{}, nil
	}

	ids := make([]int, len(due))
	for i, schedule := range due {
		ids[i] = schedule.CardID
	}

	cards, err := s.cardRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("failed to get cards for due queue", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to get due cards: %w", err)
	}

	dueCards := make([]models.DueCard, 0, len(due))
	for _, schedule := range due {
		card, ok := cards[schedule.CardID]
		if !ok {
			// Card deleted between the two queries; skip the orphaned schedule.
			continue
		}
		dueCards = append(dueCards, models.DueCard{
			CardID:       card.ID,
			DeckID:       card.DeckID,
			Front:        card.Front,
			Back:         card.Back,
			Interval:     schedule.Interval,
			EaseFactor:   schedule.EaseFactor,
			Repetitions:  schedule.Repetitions,
			NextReviewAt: schedule.NextReviewAt,
		})
	}

	return dueCards, nil
}

// GetDueCount retrieves the number of cards currently due for the user,
// optionally scoped to a deck. The count uses the same predicate as
// GetDueCards, so the two always agree.
func (s *deckService) GetDueCount(ctx context.Context, userID int, deckID *int) (int, error) {
	schedules, err := s.scheduleRepo.GetByUser(ctx, userID, deckID)
	if err != nil {
		s.logger.Error("failed to get card schedules", zap.Error(err), zap.Int("user_id", userID))
		return 0, fmt.Errorf("failed to get due count: %w", err)
	}

	return srs.DueCount(schedules, s.now()), nil
}
