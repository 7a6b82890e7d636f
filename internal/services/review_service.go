package services

import (
	"context"
	"fmt"
	"time"

	"github.com/studydeck/backend/internal/models"
	"github.com/studydeck/backend/internal/srs"
	"go.uber.org/zap"
)

// CardScheduleRepository is the interface that wraps methods for card_schedules table data access
type CardScheduleRepository interface {
	// Method GetByUserAndCard retrieves the schedule row for one (user, card) pair.
	//
	// Returns (nil, nil) when the user has no row for the card yet; that is not an error,
	// it means the card has never been reviewed.
	GetByUserAndCard(ctx context.Context, userID, cardID int) (*models.CardSchedule, error)
	// Method GetByUser retrieves all schedule rows for a user, optionally scoped to a deck.
	//
	// "deckID" may be nil to retrieve rows across all decks.
	// If some error occurs during data retrieval, the error will be returned.
	GetByUser(ctx context.Context, userID int, deckID *int) ([]models.CardSchedule, error)
	// Method Upsert creates or replaces the schedule row keyed on (user_id, card_id).
	//
	// The keyed upsert is what serializes concurrent reviews of the same card.
	Upsert(ctx context.Context, schedule *models.CardSchedule) error
	// Method SetSuspended updates the suspended flag for one (user, card) pair.
	//
	// Returns an error when the user has no schedule row for the card.
	SetSuspended(ctx context.Context, userID, cardID int, suspended bool) error
	// Method EnsureForDeck creates default schedule rows for deck cards the user
	// has not seen yet.
	EnsureForDeck(ctx context.Context, userID, deckID int, now time.Time) error
}

// ReviewCardRepository is the interface for card lookups the review flow needs
type ReviewCardRepository interface {
	// Method GetByID retrieves a card by its ID.
	//
	// If the card does not exist, an error will be returned together with "nil" value.
	GetByID(ctx context.Context, id int) (*models.Card, error)
}

// ReviewLogRepository is the interface that wraps methods for review_logs table data access
type ReviewLogRepository interface {
	// Method Insert appends one review log entry and fills in its generated ID.
	Insert(ctx context.Context, log *models.ReviewLog) error
	// Method GetByUserID retrieves the most recent review log entries for a user.
	GetByUserID(ctx context.Context, userID, limit int) ([]models.ReviewLog, error)
}

// UserStatsRepository is the interface that wraps methods for user_stats table data access
type UserStatsRepository interface {
	// Method GetByUserID retrieves the stats row for a user.
	//
	// Returns (nil, nil) when the user has never reviewed anything.
	GetByUserID(ctx context.Context, userID int) (*models.UserStats, error)
	// Method Upsert creates or replaces the stats row keyed on user_id.
	Upsert(ctx context.Context, stats *models.UserStats) error
}

const historyLimit = 100

// reviewService implements the review submission flow: apply the scheduling
// transition, persist the new schedule, log the event and update user stats.
type reviewService struct {
	scheduleRepo CardScheduleRepository
	cardRepo     ReviewCardRepository
	logRepo      ReviewLogRepository
	statsRepo    UserStatsRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewReviewService creates a new review service
func NewReviewService(
	scheduleRepo CardScheduleRepository,
	cardRepo ReviewCardRepository,
	logRepo ReviewLogRepository,
	statsRepo UserStatsRepository,
	logger *zap.Logger,
) *reviewService {
	return &reviewService{
		scheduleRepo: scheduleRepo,
		cardRepo:     cardRepo,
		logRepo:      logRepo,
		statsRepo:    statsRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// SubmitReview applies a four-button rating (1=again, 2=hard, 3=good, 4=easy)
// to a card and returns the updated schedule.
//
// An out-of-range rating is rejected here, before the scheduler is invoked;
// it is never clamped to a plausible value, since that would silently corrupt
// the review schedule.
func (s *reviewService) SubmitReview(ctx context.Context, userID, cardID, rating int) (*models.CardSchedule, error) {
	r := srs.Rating(rating)
	if !r.Valid() {
		return nil, fmt.Errorf("invalid rating: must be between 1 (again) and 4 (easy)")
	}

	return s.applyRating(ctx, userID, cardID, r)
}

// SubmitAnswer applies a binary quiz outcome to a card. Correct answers
// schedule like "good", incorrect ones like "again".
func (s *reviewService) SubmitAnswer(ctx context.Context, userID, cardID int, correct bool) (*models.CardSchedule, error) {
	return s.applyRating(ctx, userID, cardID, srs.CorrectnessRating(correct))
}

// applyRating runs the full review transaction for a validated rating
func (s *reviewService) applyRating(ctx context.Context, userID, cardID int, rating srs.Rating) (*models.CardSchedule, error) {
	if _, err := s.cardRepo.GetByID(ctx, cardID); err != nil {
		return nil, err
	}

	now := s.now()

	schedule, err := s.scheduleRepo.GetByUserAndCard(ctx, userID, cardID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		created := models.NewCardSchedule(userID, cardID, now)
		schedule = &created
	}

	next := srs.Transition(schedule.Interval, schedule.EaseFactor, rating, now)

	log := models.ReviewLog{
		UserID:         userID,
		CardID:         cardID,
		Rating:         int(rating),
		IntervalBefore: schedule.Interval,
		IntervalAfter:  next.Interval,
		EaseBefore:     schedule.EaseFactor,
		EaseAfter:      next.EaseFactor,
		ReviewedAt:     now,
	}

	schedule.Interval = next.Interval
	schedule.EaseFactor = next.EaseFactor
	schedule.NextReviewAt = next.NextReviewAt
	schedule.Repetitions++

	if err := s.scheduleRepo.Upsert(ctx, schedule); err != nil {
		s.logger.Error("failed to persist card schedule", zap.Error(err),
			zap.Int("user_id", userID), zap.Int("card_id", cardID))
		return nil, err
	}

	if err := s.logRepo.Insert(ctx, &log); err != nil {
		// The schedule update already succeeded; a missing audit row must not
		// fail the review.
		s.logger.Warn("failed to insert review log", zap.Error(err),
			zap.Int("user_id", userID), zap.Int("card_id", cardID))
	}

	if err := s.updateStats(ctx, userID, now); err != nil {
		s.logger.Warn("failed to update user stats", zap.Error(err),
			zap.Int("user_id", userID))
	}

	return schedule, nil
}

// updateStats advances the streak and the monotonic counters after a review
func (s *reviewService) updateStats(ctx context.Context, userID int, now time.Time) error {
	stats, err := s.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &models.UserStats{UserID: userID}
	}

	stats.CurrentStreak = srs.NextStreak(stats.LastStudyDate, stats.CurrentStreak, now)
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.TotalReviews++
	studyDate := now
	stats.LastStudyDate = &studyDate

	return s.statsRepo.Upsert(ctx, stats)
}

// Suspend excludes a card from the user's due queue until it is resumed
func (s *reviewService) Suspend(ctx context.Context, userID, cardID int) error {
	return s.scheduleRepo.SetSuspended(ctx, userID, cardID, true)
}

// Resume puts a suspended card back into the user's due queue
func (s *reviewService) Resume(ctx context.Context, userID, cardID int) error {
	return s.scheduleRepo.SetSuspended(ctx, userID, cardID, false)
}

// GetHistory retrieves the user's most recent review log entries
func (s *reviewService) GetHistory(ctx context.Context, userID int) ([]models.ReviewLog, error) {
	logs, err := s.logRepo.GetByUserID(ctx, userID, historyLimit)
	if err != nil {
		s.logger.Error("failed to get review history", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to get review history: %w", err)
	}
	return logs, nil
}
