package depositservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/pg"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	SetReferrer(ctx context.Context, userID, referrerID int) (bool, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
}

type BalanceService interface {
	Credit(ctx context.Context, userID int, amount, earningDelta, rewardDelta float64) (float64, error)
}

type ReferralService interface {
	Distribute(ctx context.Context, depositorID int, amount float64, sourceTxnID int) (*domain.ReferralChain, error)
}

var (
	ErrInvalidAmount = errors.New("invalid deposit amount")
	ErrUserNotFound  = errors.New("user not found")
)

type Service struct {
	userRepo        UserRepo
	txnRepo         TransactionRepo
	depositRepo     DepositRepo
	balanceService  BalanceService
	referralService ReferralService
	txManager       pg.TXManager

	maturityWindow time.Duration
}

func New(userRepo UserRepo, txnRepo TransactionRepo, depositRepo DepositRepo, balanceService BalanceService, referralService ReferralService, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		userRepo:        userRepo,
		txnRepo:         txnRepo,
		depositRepo:     depositRepo,
		balanceService:  balanceService,
		referralService: referralService,
		txManager:       txManager,
		maturityWindow:  time.Duration(cfg.MaturityWindowDays) * 24 * time.Hour,
	}
}

// ProcessDeposit credits a deposit to the user's account and distributes
// upline commissions. The deposit credit itself is one atomic transaction;
// referral crediting runs after commit and is best effort, so a broken
// referral link never blocks or rolls back a legitimate deposit.
func (s *Service) ProcessDeposit(ctx context.Context, userID int, amount float64, referrerCode string) (*domain.DepositResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load depositor", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if referrerCode != "" {
		s.attachReferrer(ctx, userID, referrerCode)
	}

	result := &domain.DepositResult{
		UserID:        userID,
		DepositAmount: amount,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, err := s.balanceService.Credit(ctx, userID, amount, 0, 0)
		if err != nil {
			return err
		}

		txn, err := s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        "deposit",
			Amount:      amount,
			Balance:     newBalance,
			Description: fmt.Sprintf("Deposit of $%.2f", amount),
			Status:      "completed",
		})
		if err != nil {
			return err
		}

		now := time.Now()
		_, err = s.depositRepo.Create(ctx, &domain.Deposit{
			UserID:        userID,
			TransactionID: txn.ID,
			Amount:        amount,
			DepositDate:   now,
			MaturityDate:  now.Add(s.maturityWindow),
			Status:        "active",
		})
		if err != nil {
			return err
		}

		result.NewBalance = newBalance
		result.TransactionID = txn.ID
		return nil
	})
	if err != nil {
		zap.L().Error("deposit transaction failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	chain, err := s.referralService.Distribute(ctx, userID, amount, result.TransactionID)
	if err != nil {
		zap.L().Error("referral distribution failed", zap.Int("userID", userID), zap.Error(err))
		return result, nil
	}
	result.ReferralApplied = chain.Level1ReferrerID != nil
	result.Level1Referrer = chain.Level1ReferrerID
	result.Level2Referrer = chain.Level2ReferrerID

	return result, nil
}

// attachReferrer links the depositor to the referrer behind the supplied
// code. Existing links are never overwritten and self-referral is ignored.
func (s *Service) attachReferrer(ctx context.Context, userID int, referrerCode string) {
	referrer, err := s.userRepo.FindByReferralCode(ctx, referrerCode)
	if err != nil {
		zap.L().Error("failed to look up referrer code", zap.String("code", referrerCode), zap.Error(err))
		return
	}
	if referrer == nil || referrer.ID == userID {
		zap.L().Warn("referrer code did not resolve to a distinct account", zap.String("code", referrerCode))
		return
	}

	attached, err := s.userRepo.SetReferrer(ctx, userID, referrer.ID)
	if err != nil {
		zap.L().Error("failed to attach referrer", zap.Error(err))
		return
	}
	if attached {
		zap.L().Info("referral relationship recorded", zap.Int("userID", userID), zap.Int("referrerID", referrer.ID))
	}
}
