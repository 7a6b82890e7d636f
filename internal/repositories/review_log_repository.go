package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/studydeck/backend/internal/models"
)

// reviewLogRepository implements data access for the review_logs audit table
type reviewLogRepository struct {
	db *sql.DB
}

// NewReviewLogRepository creates a new review log repository
func NewReviewLogRepository(db *sql.DB) *reviewLogRepository {
	return &reviewLogRepository{
		db: db,
	}
}

// Insert appends a review log entry
func (r *reviewLogRepository) Insert(ctx context.Context, log *models.ReviewLog) error {
	query := `
		INSERT INTO review_logs
		(user_id, card_id, rating, interval_before, interval_after, ease_before, ease_after, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		log.UserID,
		log.CardID,
		log.Rating,
		log.IntervalBefore,
		log.IntervalAfter,
		log.EaseBefore,
		log.EaseAfter,
		log.ReviewedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert review log: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID for review log: %w", err)
	}
	log.ID = int(id)

	return nil
}

// GetByUserID retrieves the most recent review log entries for a user
func (r *reviewLogRepository) GetByUserID(ctx context.Context, userID, limit int) ([]models.ReviewLog, error) {
	query := `
		SELECT id, user_id, card_id, rating, interval_before, interval_after, ease_before, ease_after, reviewed_at
		FROM review_logs
		WHERE user_id = ?
		ORDER BY reviewed_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query review logs: %w", err)
	}
	defer rows.Close()

	var logs []models.ReviewLog
	for rows.Next() {
		var log models.ReviewLog
		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.CardID,
			&log.Rating,
			&log.IntervalBefore,
			&log.IntervalAfter,
			&log.EaseBefore,
			&log.EaseAfter,
			&log.ReviewedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review log: %w", err)
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return logs, nil
}
