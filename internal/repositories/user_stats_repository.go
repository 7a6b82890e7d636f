package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studydeck/backend/internal/models"
)

// userStatsRepository implements data access for per-user review statistics
type userStatsRepository struct {
	db *sql.DB
}

// NewUserStatsRepository creates a new user stats repository
func NewUserStatsRepository(db *sql.DB) *userStatsRepository {
	return &userStatsRepository{
		db: db,
	}
}

// GetByUserID retrieves the stats row for a user.
// Returns (nil, nil) when the user has never reviewed anything.
func (r *userStatsRepository) GetByUserID(ctx context.Context, userID int) (*models.UserStats, error) {
	query := `
		SELECT user_id, current_streak, longest_streak, total_reviews, last_study_date
		FROM user_stats
		WHERE user_id = ?
	`

	var stats models.UserStats
	var lastStudyDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.CurrentStreak,
		&stats.LongestStreak,
		&stats.TotalReviews,
		&lastStudyDate,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query user stats: %w", err)
	}

	if lastStudyDate.Valid {
		stats.LastStudyDate = &lastStudyDate.Time
	}

	return &stats, nil
}

// Upsert inserts or updates the stats row keyed on user_id
func (r *userStatsRepository) Upsert(ctx context.Context, stats *models.UserStats) error {
	query := `
		INSERT INTO user_stats
		(user_id, current_streak, longest_streak, total_reviews, last_study_date)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			current_streak = VALUES(current_streak),
			longest_streak = VALUES(longest_streak),
			total_reviews = VALUES(total_reviews),
			last_study_date = VALUES(last_study_date)
	`

	var lastStudyDate sql.NullTime
	if stats.LastStudyDate != nil {
		lastStudyDate = sql.NullTime{Time: *stats.LastStudyDate, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		stats.UserID,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.TotalReviews,
		lastStudyDate,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user stats: %w", err)
	}

	return nil
}
