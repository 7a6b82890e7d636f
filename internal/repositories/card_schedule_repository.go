package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/studydeck/backend/internal/models"
)

// cardScheduleRepository implements CardScheduleRepository over the card_schedules table
type cardScheduleRepository struct {
	db *sql.DB
}

// NewCardScheduleRepository creates a new card schedule repository
func NewCardScheduleRepository(db *sql.DB) *cardScheduleRepository {
	return &cardScheduleRepository{
		db: db,
	}
}

// GetByUserAndCard retrieves the schedule row for one (user, card) pair.
// Returns (nil, nil) when the user has never seen the card.
func (r *cardScheduleRepository) GetByUserAndCard(ctx context.Context, userID, cardID int) (*models.CardSchedule, error) {
	query := `
		SELECT user_id, card_id, interval_days, ease_factor, repetitions, next_review_at, suspended
		FROM card_schedules
		WHERE user_id = ? AND card_id = ?
	`

	var schedule models.CardSchedule
	err := r.db.QueryRowContext(ctx, query, userID, cardID).Scan(
		&schedule.UserID,
		&schedule.CardID,
		&schedule.Interval,
		&schedule.EaseFactor,
		&schedule.Repetitions,
		&schedule.NextReviewAt,
		&schedule.Suspended,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query card schedule: %w", err)
	}

	return &schedule, nil
}

// GetByUser retrieves all schedule rows for a user, optionally scoped to one deck.
// The rows are the candidate set the due predicate is applied to; no due
// filtering happens here.
func (r *cardScheduleRepository) GetByUser(ctx context.Context, userID int, deckID *int) ([]models.CardSchedule, error) {
	query := `
		SELECT cs.user_id, cs.card_id, cs.interval_days, cs.ease_factor, cs.repetitions, cs.next_review_at, cs.suspended
		FROM card_schedules cs
	`
	args := []any{userID}

	if deckID != nil {
		query += `
		JOIN cards c ON c.id = cs.card_id
		WHERE cs.user_id = ? AND c.deck_id = ?
		ORDER BY cs.card_id`
		args = append(args, *deckID)
	} else {
		query += `
		WHERE cs.user_id = ?
		ORDER BY cs.card_id`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query card schedules: %w", err)
	}
	defer rows.Close()

	var schedules []models.CardSchedule
	for rows.Next() {
		var schedule models.CardSchedule
		err := rows.Scan(
			&schedule.UserID,
			&schedule.CardID,
			&schedule.Interval,
			&schedule.EaseFactor,
			&schedule.Repetitions,
			&schedule.NextReviewAt,
			&schedule.Suspended,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan card schedule: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return schedules, nil
}

// Upsert inserts or updates a schedule row keyed on (user_id, card_id).
// The unique key makes concurrent updates to the same pair serialize in the
// database instead of producing duplicate rows.
func (r *cardScheduleRepository) Upsert(ctx context.Context, schedule *models.CardSchedule) error {
	query := `
		INSERT INTO card_schedules
		(user_id, card_id, interval_days, ease_factor, repetitions, next_review_at, suspended)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			interval_days = VALUES(interval_days),
			ease_factor = VALUES(ease_factor),
			repetitions = VALUES(repetitions),
			next_review_at = VALUES(next_review_at),
			suspended = VALUES(suspended)
	`

	_, err := r.db.ExecContext(ctx, query,
		schedule.UserID,
		schedule.CardID,
		schedule.Interval,
		schedule.EaseFactor,
		schedule.Repetitions,
		schedule.NextReviewAt,
		schedule.Suspended,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert card schedule: %w", err)
	}

	return nil
}

// SetSuspended updates the suspended flag for one (user, card) pair
func (r *cardScheduleRepository) SetSuspended(ctx context.Context, userID, cardID int, suspended bool) error {
	query := `
		UPDATE card_schedules
		SET suspended = ?
		WHERE user_id = ? AND card_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, suspended, userID, cardID)
	if err != nil {
		return fmt.Errorf("failed to update suspended flag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		// No row either because the card is unknown to the user or the flag
		// already had this value; distinguish by probing for the row.
		existing, err := r.GetByUserAndCard(ctx, userID, cardID)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("card schedule not found")
		}
	}

	return nil
}

// EnsureForDeck creates default schedule rows for every card in a deck the
// user has no row for yet. Used when a deck becomes visible to the user so
// that new cards enter the due queue immediately.
func (r *cardScheduleRepository) EnsureForDeck(ctx context.Context, userID, deckID int, now time.Time) error {
	query := `
		INSERT INTO card_schedules
		(user_id, card_id, interval_days, ease_factor, repetitions, next_review_at, suspended)
		SELECT ?, c.id, 0, 2.5, 0, ?, FALSE
		FROM cards c
		LEFT JOIN card_schedules cs ON cs.card_id = c.id AND cs.user_id = ?
		WHERE c.deck_id = ? AND cs.card_id IS NULL
	`

	_, err := r.db.ExecContext(ctx, query, userID, now, userID, deckID)
	if err != nil {
		return fmt.Errorf("failed to create default card schedules: %w", err)
	}

	return nil
}
