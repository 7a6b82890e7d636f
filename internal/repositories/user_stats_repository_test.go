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

// setupUserStatsTestRepository creates a user stats repository with a mock database
func setupUserStatsTestRepository(t *testing.T) (*userStatsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewUserStatsRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestNewUserStatsRepository(t *testing.T) {
	db := &sql.DB{}

	repo := NewUserStatsRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestUserStatsRepository_GetByUserID(t *testing.T) {
	lastStudy := time.Date(2026, 3, 9, 22, 15, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userID        int
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedStats *models.UserStats
	}{
		{
			name:   "success",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"user_id", "current_streak", "longest_streak", "total_reviews", "last_study_date"}).
					AddRow(1, 4, 12, 250, lastStudy)
				mock.ExpectQuery(`SELECT user_id, current_streak, longest_streak, total_reviews, last_study_date`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedStats: &models.UserStats{
				UserID:        1,
				CurrentStreak: 4,
				LongestStreak: 12,
				TotalReviews:  250,
				LastStudyDate: &lastStudy,
			},
		},
		{
			name:   "success - null last study date",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"user_id", "current_streak", "longest_streak", "total_reviews", "last_study_date"}).
					AddRow(1, 0, 0, 0, nil)
				mock.ExpectQuery(`SELECT user_id, current_streak, longest_streak, total_reviews, last_study_date`).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedError: false,
			expectedStats: &models.UserStats{
				UserID: 1,
			},
		},
		{
			name:   "not found returns nil without error",
			userID: 999,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT user_id, current_streak, longest_streak, total_reviews, last_study_date`).
					WithArgs(999).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: false,
			expectedStats: nil,
		},
		{
			name:   "database error",
			userID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT user_id, current_streak, longest_streak, total_reviews, last_study_date`).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
			expectedStats: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserStatsTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStats, result)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserStatsRepository_Upsert(t *testing.T) {
	lastStudy := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		stats         *models.UserStats
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
	}{
		{
			name: "success",
			stats: &models.UserStats{
				UserID:        1,
				CurrentStreak: 5,
				LongestStreak: 12,
				TotalReviews:  251,
				LastStudyDate: &lastStudy,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_stats`).
					WithArgs(1, 5, 12, 251, sql.NullTime{Time: lastStudy, Valid: true}).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedError: false,
		},
		{
			name: "success - nil last study date",
			stats: &models.UserStats{
				UserID: 1,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_stats`).
					WithArgs(1, 0, 0, 0, sql.NullTime{}).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedError: false,
		},
		{
			name: "database error",
			stats: &models.UserStats{
				UserID:        1,
				CurrentStreak: 5,
				LongestStreak: 12,
				TotalReviews:  251,
				LastStudyDate: &lastStudy,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO user_stats`).
					WithArgs(1, 5, 12, 251, sql.NullTime{Time: lastStudy, Valid: true}).
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserStatsTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			err := repo.Upsert(context.Background(), tt.stats)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
