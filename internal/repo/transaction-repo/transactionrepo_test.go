package transactionrepo

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
		txn       *domain.Transaction
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create transaction successfully",
			txn: &domain.Transaction{
				UserID:      1,
				Type:        "deposit",
				Amount:      100.0,
				Balance:     100.0,
				Description: "Deposit of $100.00",
				Status:      "completed",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
					WithArgs(1, "deposit", 100.0, 100.0, "Deposit of $100.00", "completed", (*int)(nil), (*int)(nil)).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			txn: &domain.Transaction{
				UserID:      1,
				Type:        "deposit",
				Amount:      100.0,
				Balance:     100.0,
				Description: "Deposit of $100.00",
				Status:      "completed",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO transactions")).
					WithArgs(1, "deposit", 100.0, 100.0, "Deposit of $100.00", "completed", (*int)(nil), (*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.txn)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
				assert.Equal(t, now, result.CreatedAt)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	cols := []string{"id", "user_id", "type", "amount", "balance", "description", "status", "related_user_id", "related_transaction_id", "created_at"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Transactions found",
			mockSetup: func() {
				rows := pgxmock.NewRows(cols).
					AddRow(2, 1, "growth", 6.0, 106.0, "6.00% growth on deposit of $100.00", "completed", (*int)(nil), (*int)(nil), now).
					AddRow(1, 1, "deposit", 100.0, 100.0, "Deposit of $100.00", "completed", (*int)(nil), (*int)(nil), now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
					WithArgs(1, 10, 0).
					WillReturnRows(rows)
			},
			expectErr: false,
			count:     2,
		},
		{
			name: "No transactions",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
					WithArgs(1, 10, 0).
					WillReturnRows(pgxmock.NewRows(cols))
			},
			expectErr: false,
			count:     0,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
					WithArgs(1, 10, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			count:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), 1, 10, 0)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.count)
			}
		})
	}
}
