package services

import (
	"context"
	"fmt"

	"github.com/studydeck/backend/internal/models"
	"go.uber.org/zap"
)

// statsService implements read access to per-user review statistics.
// The stats themselves are written by the review service on every review.
type statsService struct {
	statsRepo UserStatsRepository
	logger    *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(statsRepo UserStatsRepository, logger *zap.Logger) *statsService {
	return &statsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// GetStats retrieves the user's review statistics. A user who has never
// reviewed gets a zero-valued row rather than an error.
func (s *statsService) GetStats(ctx context.Context, userID int) (*models.UserStats, error) {
	stats, err := s.statsRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user stats", zap.Error(err), zap.Int("user_id", userID))
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	if stats == nil {
		stats = &models.UserStats{UserID: userID}
	}
	return stats, nil
}
