package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	depositrepo "github.com/bdspro/platform/internal/repo/deposit-repo"
	growthrepo "github.com/bdspro/platform/internal/repo/growth-repo"
	networkrepo "github.com/bdspro/platform/internal/repo/network-repo"
	referralrepo "github.com/bdspro/platform/internal/repo/referral-repo"
	transactionrepo "github.com/bdspro/platform/internal/repo/transaction-repo"
	userrepo "github.com/bdspro/platform/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.TransactionRepo)
	assert.NotNil(t, repo.DepositRepo)
	assert.NotNil(t, repo.GrowthRepo)
	assert.NotNil(t, repo.ReferralRepo)
	assert.NotNil(t, repo.NetworkRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &depositrepo.Repository{}, repo.DepositRepo)
	assert.IsType(t, &growthrepo.Repository{}, repo.GrowthRepo)
	assert.IsType(t, &referralrepo.Repository{}, repo.ReferralRepo)
	assert.IsType(t, &networkrepo.Repository{}, repo.NetworkRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
