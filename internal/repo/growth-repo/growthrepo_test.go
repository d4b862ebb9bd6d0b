package growthrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/bdspro/platform/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		tracking  *domain.GrowthTracking
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create tracking record successfully",
			tracking: &domain.GrowthTracking{
				UserID:           1,
				DepositID:        5,
				OriginalAmount:   100.0,
				GrowthAmount:     6.0,
				GrowthPercentage: 6.0,
				Status:           "pending",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO growth_tracking")).
					WithArgs(1, 5, 100.0, 6.0, 6.0, "pending").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			tracking: &domain.GrowthTracking{
				UserID:           1,
				DepositID:        5,
				OriginalAmount:   100.0,
				GrowthAmount:     6.0,
				GrowthPercentage: 6.0,
				Status:           "pending",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO growth_tracking")).
					WithArgs(1, 5, 100.0, 6.0, 6.0, "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.tracking)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 3, result.ID)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		status    string
		mockSetup func()
		expectErr bool
	}{
		{
			name:   "Mark processed",
			status: "processed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE growth_tracking")).
					WithArgs("processed", 3).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name:   "Database error",
			status: "failed",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE growth_tracking")).
					WithArgs("failed", 3).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 3, tt.status)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cols := []string{"id", "user_id", "deposit_id", "original_amount", "growth_amount", "growth_percentage", "status", "processed_at", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Records found",
			mockSetup: func() {
				rows := pgxmock.NewRows(cols).
					AddRow(3, 1, 5, 100.0, 6.0, 6.0, "processed", &now, now)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
					WithArgs(1, 20, 0).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     1,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
					WithArgs(1, 20, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), 1, 20, 0)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}
