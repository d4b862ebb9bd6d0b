package referralservice

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/pg"
)

type UserRepo interface {
	GetReferrerID(ctx context.Context, userID int) (*int, error)
}

type TrackingRepo interface {
	Create(ctx context.Context, tracking *domain.ReferralIncomeTracking) (*domain.ReferralIncomeTracking, error)
	UpdateStatus(ctx context.Context, trackingID int, status string) error
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type NetworkRepo interface {
	AddIncome(ctx context.Context, userID, level int, income, business float64) error
}

type BalanceService interface {
	Credit(ctx context.Context, userID int, amount, earningDelta, rewardDelta float64) (float64, error)
}

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

type Service struct {
	userRepo       UserRepo
	trackingRepo   TrackingRepo
	txnRepo        TransactionRepo
	networkRepo    NetworkRepo
	balanceService BalanceService
	txManager      pg.TXManager

	levelPercentages [2]float64
}

func New(userRepo UserRepo, trackingRepo TrackingRepo, txnRepo TransactionRepo, networkRepo NetworkRepo, balanceService BalanceService, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		userRepo:         userRepo,
		trackingRepo:     trackingRepo,
		txnRepo:          txnRepo,
		networkRepo:      networkRepo,
		balanceService:   balanceService,
		txManager:        txManager,
		levelPercentages: [2]float64{cfg.Level1Percentage, cfg.Level2Percentage},
	}
}

// ResolveChain finds the level-1 and level-2 referrers of a user as two
// single-hop lookups over the parent pointer. Traversal depth is capped at
// two by construction, so cycles are never a concern here.
func (s *Service) ResolveChain(ctx context.Context, userID int) (*domain.ReferralChain, error) {
	chain := &domain.ReferralChain{}

	level1, err := s.userRepo.GetReferrerID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to resolve level 1 referrer", zap.Error(err))
		return nil, err
	}
	if level1 == nil {
		return chain, nil
	}
	chain.Level1ReferrerID = level1

	level2, err := s.userRepo.GetReferrerID(ctx, *level1)
	if err != nil {
		zap.L().Error("failed to resolve level 2 referrer", zap.Error(err))
		return nil, err
	}
	chain.Level2ReferrerID = level2

	return chain, nil
}

// Distribute credits upline commissions for a deposit-like event (a deposit
// or a growth payout). Each level is processed in its own transaction; one
// level failing never rolls back the source event or the other level.
func (s *Service) Distribute(ctx context.Context, depositorID int, amount float64, sourceTxnID int) (*domain.ReferralChain, error) {
	chain, err := s.ResolveChain(ctx, depositorID)
	if err != nil {
		return nil, err
	}

	if chain.Level1ReferrerID != nil {
		if err := s.creditLevel(ctx, *chain.Level1ReferrerID, depositorID, amount, 1, sourceTxnID); err != nil {
			zap.L().Error("level 1 referral crediting failed",
				zap.Int("referrerID", *chain.Level1ReferrerID),
				zap.Int("depositorID", depositorID),
				zap.Error(err),
			)
		}
	}
	if chain.Level2ReferrerID != nil {
		if err := s.creditLevel(ctx, *chain.Level2ReferrerID, depositorID, amount, 2, sourceTxnID); err != nil {
			zap.L().Error("level 2 referral crediting failed",
				zap.Int("referrerID", *chain.Level2ReferrerID),
				zap.Int("depositorID", depositorID),
				zap.Error(err),
			)
		}
	}

	return chain, nil
}

func (s *Service) creditLevel(ctx context.Context, referrerID, depositorID int, amount float64, level, sourceTxnID int) error {
	income := amount * s.levelPercentages[level-1] / 100

	// The pending tracking row is written before any crediting so a failure
	// leaves a reconcilable ground truth.
	tracking, err := s.trackingRepo.Create(ctx, &domain.ReferralIncomeTracking{
		ReferrerID:           referrerID,
		DepositorID:          depositorID,
		DepositTransactionID: sourceTxnID,
		Level:                level,
		ReferralIncome:       income,
		BusinessVolume:       amount,
		Status:               StatusPending,
	})
	if err != nil {
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, err := s.balanceService.Credit(ctx, referrerID, income, income, income)
		if err != nil {
			return err
		}

		_, err = s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:               referrerID,
			Type:                 fmt.Sprintf("level%d_income", level),
			Amount:               income,
			Balance:              newBalance,
			Description:          fmt.Sprintf("Level %d referral income from user %d deposit of $%.2f", level, depositorID, amount),
			Status:               "completed",
			RelatedUserID:        &depositorID,
			RelatedTransactionID: &sourceTxnID,
		})
		if err != nil {
			return err
		}

		return s.networkRepo.AddIncome(ctx, referrerID, level, income, amount)
	})
	if err != nil {
		if updErr := s.trackingRepo.UpdateStatus(ctx, tracking.ID, StatusFailed); updErr != nil {
			zap.L().Error("failed to mark referral tracking record failed", zap.Error(updErr))
		}
		return err
	}

	return s.trackingRepo.UpdateStatus(ctx, tracking.ID, StatusProcessed)
}
