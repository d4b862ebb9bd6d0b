package growthservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/pg"
)

type mocks struct {
	depositRepo    *MockDepositRepo
	growthRepo     *MockGrowthRepo
	txnRepo        *MockTransactionRepo
	balanceService *MockBalanceService
	referral       *MockReferralService
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		depositRepo:    NewMockDepositRepo(ctrl),
		growthRepo:     NewMockGrowthRepo(ctrl),
		txnRepo:        NewMockTransactionRepo(ctrl),
		balanceService: NewMockBalanceService(ctrl),
		referral:       NewMockReferralService(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	cfg := &config.Config{GrowthPercentage: 6.0}
	service := New(m.depositRepo, m.growthRepo, m.txnRepo, m.balanceService, m.referral, m.txManager, cfg)
	defer ctrl.Finish()
	return service, m
}

var testDeposit = domain.Deposit{
	ID:            5,
	UserID:        1,
	TransactionID: 10,
	Amount:        100.0,
	Status:        "active",
}

func expectGrowthSuccess(t *testing.T, m *mocks, deposit domain.Deposit, growthAmount float64) {
	m.growthRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tracking *domain.GrowthTracking) (*domain.GrowthTracking, error) {
			assert.Equal(t, deposit.ID, tracking.DepositID)
			assert.Equal(t, growthAmount, tracking.GrowthAmount)
			assert.Equal(t, StatusPending, tracking.Status)
			tracking.ID = 3
			return tracking, nil
		})
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	m.balanceService.EXPECT().Credit(gomock.Any(), deposit.UserID, growthAmount, growthAmount, 0.0).
		Return(deposit.Amount+growthAmount, nil)
	m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
			assert.Equal(t, "growth", txn.Type)
			assert.Equal(t, growthAmount, txn.Amount)
			assert.Equal(t, &deposit.TransactionID, txn.RelatedTransactionID)
			txn.ID = 20
			return txn, nil
		})
	m.depositRepo.EXPECT().MarkMatured(gomock.Any(), deposit.ID).Return(nil)
	m.growthRepo.EXPECT().UpdateStatus(gomock.Any(), 3, StatusProcessed).Return(nil)
	m.referral.EXPECT().Distribute(gomock.Any(), deposit.UserID, growthAmount, 20).
		Return(&domain.ReferralChain{}, nil)
}

func TestProcessDeposit(t *testing.T) {
	t.Run("Six percent growth credited on maturity", func(t *testing.T) {
		service, m := NewMock(t)
		expectGrowthSuccess(t, m, testDeposit, 6.0)

		result := service.ProcessDeposit(context.Background(), testDeposit)
		assert.True(t, result.Success)
		assert.Equal(t, 6.0, result.GrowthAmount)
		assert.Equal(t, 106.0, result.NewBalance)
		assert.Equal(t, 3, result.TrackingID)
	})

	t.Run("Tracking creation failure skips crediting", func(t *testing.T) {
		service, m := NewMock(t)
		m.growthRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		result := service.ProcessDeposit(context.Background(), testDeposit)
		assert.False(t, result.Success)
		assert.Equal(t, "database error", result.Error)
	})

	t.Run("Transaction failure marks tracking failed", func(t *testing.T) {
		service, m := NewMock(t)
		m.growthRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tracking *domain.GrowthTracking) (*domain.GrowthTracking, error) {
				tracking.ID = 3
				return tracking, nil
			})
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("tx failed"))
		m.growthRepo.EXPECT().UpdateStatus(gomock.Any(), 3, StatusFailed).Return(nil)

		result := service.ProcessDeposit(context.Background(), testDeposit)
		assert.False(t, result.Success)
		assert.Equal(t, "tx failed", result.Error)
	})

	t.Run("Committed payout is credited exactly once when the processed mark fails", func(t *testing.T) {
		service, m := NewMock(t)
		m.growthRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tracking *domain.GrowthTracking) (*domain.GrowthTracking, error) {
				tracking.ID = 3
				return tracking, nil
			})
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		m.balanceService.EXPECT().Credit(gomock.Any(), 1, 6.0, 6.0, 0.0).Return(106.0, nil).Times(1)
		m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				txn.ID = 20
				return txn, nil
			}).Times(1)
		// MarkMatured commits with the credit, so the deposit leaves the
		// eligibility query even though the tracking update below is lost.
		m.depositRepo.EXPECT().MarkMatured(gomock.Any(), 5).Return(nil).Times(1)
		m.growthRepo.EXPECT().UpdateStatus(gomock.Any(), 3, StatusProcessed).Return(errors.New("database error"))

		result := service.ProcessDeposit(context.Background(), testDeposit)
		assert.False(t, result.Success)
		assert.Equal(t, "database error", result.Error)
		assert.Equal(t, 106.0, result.NewBalance)
	})

	t.Run("Concurrent payout of the same deposit is skipped", func(t *testing.T) {
		service, _ := NewMock(t)

		inFlight.Store(testDeposit.ID, struct{}{})
		defer inFlight.Delete(testDeposit.ID)

		result := service.ProcessDeposit(context.Background(), testDeposit)
		assert.False(t, result.Success)
		assert.Equal(t, "deposit payout already in progress", result.Error)
	})

	t.Run("Referral distribution failure does not undo the payout", func(t *testing.T) {
		service, m := NewMock(t)
		m.growthRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tracking *domain.GrowthTracking) (*domain.GrowthTracking, error) {
				tracking.ID = 3
				return tracking, nil
			})
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		m.balanceService.EXPECT().Credit(gomock.Any(), 1, 6.0, 6.0, 0.0).Return(106.0, nil)
		m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				txn.ID = 20
				return txn, nil
			})
		m.depositRepo.EXPECT().MarkMatured(gomock.Any(), 5).Return(nil)
		m.growthRepo.EXPECT().UpdateStatus(gomock.Any(), 3, StatusProcessed).Return(nil)
		m.referral.EXPECT().Distribute(gomock.Any(), 1, 6.0, 20).Return(nil, errors.New("referral crediting failed"))

		result := service.ProcessDeposit(context.Background(), testDeposit)
		assert.True(t, result.Success)
	})
}

func TestProcessMaturedDeposits(t *testing.T) {
	t.Run("Processes every eligible deposit", func(t *testing.T) {
		service, m := NewMock(t)
		second := testDeposit
		second.ID = 6
		second.TransactionID = 11
		second.UserID = 2
		second.Amount = 50.0

		m.depositRepo.EXPECT().FindMaturedWithoutGrowth(gomock.Any(), uint32(1000)).
			Return([]domain.Deposit{testDeposit, second}, nil)
		expectGrowthSuccess(t, m, testDeposit, 6.0)

		m.growthRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tracking *domain.GrowthTracking) (*domain.GrowthTracking, error) {
				assert.Equal(t, 3.0, tracking.GrowthAmount)
				tracking.ID = 4
				return tracking, nil
			})
		m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		m.balanceService.EXPECT().Credit(gomock.Any(), 2, 3.0, 3.0, 0.0).Return(53.0, nil)
		m.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
				txn.ID = 21
				return txn, nil
			})
		m.depositRepo.EXPECT().MarkMatured(gomock.Any(), 6).Return(nil)
		m.growthRepo.EXPECT().UpdateStatus(gomock.Any(), 4, StatusProcessed).Return(nil)
		m.referral.EXPECT().Distribute(gomock.Any(), 2, 3.0, 21).Return(&domain.ReferralChain{}, nil)

		results, err := service.ProcessMaturedDeposits(context.Background())
		assert.NoError(t, err)
		assert.Len(t, results, 2)
		assert.True(t, results[0].Success)
		assert.True(t, results[1].Success)
	})

	t.Run("One failing deposit never aborts the sweep", func(t *testing.T) {
		service, m := NewMock(t)
		second := testDeposit
		second.ID = 6
		second.TransactionID = 11

		m.depositRepo.EXPECT().FindMaturedWithoutGrowth(gomock.Any(), uint32(1000)).
			Return([]domain.Deposit{testDeposit, second}, nil)
		m.growthRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
		expectGrowthSuccess(t, m, second, 6.0)

		results, err := service.ProcessMaturedDeposits(context.Background())
		assert.NoError(t, err)
		assert.Len(t, results, 2)
		assert.False(t, results[0].Success)
		assert.True(t, results[1].Success)
	})

	t.Run("Fetch failure aborts the sweep", func(t *testing.T) {
		service, m := NewMock(t)
		m.depositRepo.EXPECT().FindMaturedWithoutGrowth(gomock.Any(), uint32(1000)).
			Return(nil, errors.New("database error"))

		results, err := service.ProcessMaturedDeposits(context.Background())
		assert.Error(t, err)
		assert.Nil(t, results)
	})
}

func TestEligibleDeposits(t *testing.T) {
	service, m := NewMock(t)
	m.depositRepo.EXPECT().FindMaturedWithoutGrowth(gomock.Any(), uint32(500)).
		Return([]domain.Deposit{testDeposit}, nil)

	deposits, err := service.EligibleDeposits(context.Background(), 500)
	assert.NoError(t, err)
	assert.Len(t, deposits, 1)
}
