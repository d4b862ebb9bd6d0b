package growthservice

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/pg"
)

type DepositRepo interface {
	FindMaturedWithoutGrowth(ctx context.Context, limit uint32) ([]domain.Deposit, error)
	MarkMatured(ctx context.Context, depositID int) error
}

type GrowthRepo interface {
	Create(ctx context.Context, tracking *domain.GrowthTracking) (*domain.GrowthTracking, error)
	UpdateStatus(ctx context.Context, trackingID int, status string) error
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type BalanceService interface {
	Credit(ctx context.Context, userID int, amount, earningDelta, rewardDelta float64) (float64, error)
}

type ReferralService interface {
	Distribute(ctx context.Context, depositorID int, amount float64, sourceTxnID int) (*domain.ReferralChain, error)
}

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusFailed    = "failed"

	defaultFetchLimit = 1000
)

type Service struct {
	depositRepo    DepositRepo
	growthRepo     GrowthRepo
	txnRepo        TransactionRepo
	balanceService BalanceService
	referral       ReferralService
	txManager      pg.TXManager

	growthPercentage float64
}

func New(depositRepo DepositRepo, growthRepo GrowthRepo, txnRepo TransactionRepo, balanceService BalanceService, referral ReferralService, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		depositRepo:      depositRepo,
		growthRepo:       growthRepo,
		txnRepo:          txnRepo,
		balanceService:   balanceService,
		referral:         referral,
		txManager:        txManager,
		growthPercentage: cfg.GrowthPercentage,
	}
}

func (s *Service) EligibleDeposits(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
	return s.depositRepo.FindMaturedWithoutGrowth(ctx, limit)
}

// ProcessMaturedDeposits runs one growth sweep: every matured deposit
// without a processed growth record gets its payout. Each deposit is
// processed independently; one failure never aborts the sweep, and the
// per-deposit results let callers report partial completion.
func (s *Service) ProcessMaturedDeposits(ctx context.Context) ([]domain.GrowthResult, error) {
	deposits, err := s.EligibleDeposits(ctx, defaultFetchLimit)
	if err != nil {
		zap.L().Error("failed to fetch deposits for growth processing", zap.Error(err))
		return nil, err
	}

	results := make([]domain.GrowthResult, 0, len(deposits))
	for _, deposit := range deposits {
		if err := ctx.Err(); err != nil {
			zap.L().Info("growth sweep canceled", zap.Int("processed", len(results)))
			return results, err
		}
		results = append(results, *s.ProcessDeposit(ctx, deposit))
	}

	processed := 0
	for _, r := range results {
		if r.Success {
			processed++
		}
	}
	zap.L().Info("growth sweep completed", zap.Int("processed", processed), zap.Int("total", len(results)))

	return results, nil
}

// inFlight holds deposit ids currently being paid out. The scheduled sweep
// and the manual admin trigger can overlap on the same fetch result; only
// whichever caller stores the key first proceeds.
var inFlight sync.Map

// ProcessDeposit applies the growth payout for a single matured deposit.
// The deposit row flips to matured in the same transaction as the credit,
// which drops it out of the eligibility query for good; the tracking record
// carries the audit trail.
func (s *Service) ProcessDeposit(ctx context.Context, deposit domain.Deposit) *domain.GrowthResult {
	growthAmount := deposit.Amount * s.growthPercentage / 100

	result := &domain.GrowthResult{
		UserID:       deposit.UserID,
		DepositID:    deposit.ID,
		Amount:       deposit.Amount,
		GrowthAmount: growthAmount,
	}

	if _, loaded := inFlight.LoadOrStore(deposit.ID, struct{}{}); loaded {
		result.Error = "deposit payout already in progress"
		return result
	}
	defer inFlight.Delete(deposit.ID)

	tracking, err := s.growthRepo.Create(ctx, &domain.GrowthTracking{
		UserID:           deposit.UserID,
		DepositID:        deposit.ID,
		OriginalAmount:   deposit.Amount,
		GrowthAmount:     growthAmount,
		GrowthPercentage: s.growthPercentage,
		Status:           StatusPending,
	})
	if err != nil {
		zap.L().Error("failed to create growth tracking record", zap.Int("depositID", deposit.ID), zap.Error(err))
		result.Error = err.Error()
		return result
	}
	result.TrackingID = tracking.ID

	var growthTxnID int
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, err := s.balanceService.Credit(ctx, deposit.UserID, growthAmount, growthAmount, 0)
		if err != nil {
			return err
		}

		txn, err := s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:               deposit.UserID,
			Type:                 "growth",
			Amount:               growthAmount,
			Balance:              newBalance,
			Description:          fmt.Sprintf("%.2f%% growth on deposit of $%.2f", s.growthPercentage, deposit.Amount),
			Status:               "completed",
			RelatedTransactionID: &deposit.TransactionID,
		})
		if err != nil {
			return err
		}
		growthTxnID = txn.ID

		result.NewBalance = newBalance
		return s.depositRepo.MarkMatured(ctx, deposit.ID)
	})
	if err != nil {
		zap.L().Error("growth processing failed", zap.Int("depositID", deposit.ID), zap.Error(err))
		if updErr := s.growthRepo.UpdateStatus(ctx, tracking.ID, StatusFailed); updErr != nil {
			zap.L().Error("failed to mark growth tracking record failed", zap.Error(updErr))
		}
		result.Error = err.Error()
		return result
	}

	if err := s.growthRepo.UpdateStatus(ctx, tracking.ID, StatusProcessed); err != nil {
		zap.L().Error("failed to mark growth tracking record processed", zap.Error(err))
		result.Error = err.Error()
		return result
	}
	result.Success = true

	// Upline referrers earn their level percentages on the growth payout
	// too, same as on the original deposit.
	if _, err := s.referral.Distribute(ctx, deposit.UserID, growthAmount, growthTxnID); err != nil {
		zap.L().Error("referral distribution on growth failed", zap.Int("depositID", deposit.ID), zap.Error(err))
	}

	return result
}
