package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studydeck/backend/internal/models"
)

// setupReviewLogTestRepository creates a review log repository with a mock database
func setupReviewLogTestRepository(t *testing.T) (*reviewLogRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewReviewLogRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewReviewLogRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewReviewLogRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestReviewLogRepository_Insert(t *testing.T) {
	reviewedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		log           *models.ReviewLog
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success",
			log: &models.ReviewLog{
				UserID:         1,
				CardID:         42,
				Rating:         3,
				IntervalBefore: 6,
				IntervalAfter:  15,
				EaseBefore:     2.5,
				EaseAfter:      2.5,
				ReviewedAt:     reviewedAt,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO review_logs`).
					WithArgs(1, 42, 3, 6, 15, 2.5, 2.5, reviewedAt).
					WillReturnResult(sqlmock.NewResult(7, 1))
			},
			expectedError: false,
			expectedID:    7,
		},
		{
			name: "database error",
			log: &models.ReviewLog{
				UserID:     1,
				CardID:     42,
				Rating:     1,
				ReviewedAt: reviewedAt,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO review_logs`).
					WithArgs(1, 42, 1, 0, 0, 0.0, 0.0, reviewedAt).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
		{
			name: "last insert id error",
			log: &models.ReviewLog{
				UserID:     1,
				CardID:     42,
				Rating:     4,
				ReviewedAt: reviewedAt,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO review_logs`).
					WithArgs(1, 42, 4, 0, 0, 0.0, 0.0, reviewedAt).
					WillReturnResult(sqlmock.NewErrorResult(errors.New("last insert id error")))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupReviewLogTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Insert(context.Background(), tt.log)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.log.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewLogRepository_GetByUserID(t *testing.T) {
	reviewedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userID        int
		limit         int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedCount int
	}{
		{
			name:   "success",
			userID: 1,
			limit:  100,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "user_id", "card_id", "rating", "interval_before", "interval_after", "ease_before", "ease_after", "reviewed_at"}).
					AddRow(2, 1, 42, 3, 6, 15, 2.5, 2.5, reviewedAt).
					AddRow(1, 1, 42, 1, 15, 1, 2.5, 2.3, reviewedAt.Add(-time.Hour))
				mock.ExpectQuery(`SELECT id, user_id, card_id, rating, interval_before, interval_after, ease_before, ease_after, reviewed_at`).
					WithArgs(1, 100).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 2,
		},
		{
			name:   "success - no history",
			userID: 2,
			limit:  100,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "user_id", "card_id", "rating", "interval_before", "interval_after", "ease_before", "ease_after", "reviewed_at"})
				mock.ExpectQuery(`SELECT id, user_id, card_id, rating, interval_before, interval_after, ease_before, ease_after, reviewed_at`).
					WithArgs(2, 100).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedCount: 0,
		},
		{
			name:   "database error",
			userID: 1,
			limit:  100,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, user_id, card_id, rating, interval_before, interval_after, ease_before, ease_after, reviewed_at`).
					WithArgs(1, 100).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupReviewLogTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByUserID(context.Background(), tt.userID, tt.limit)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.expectedCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
