package balanceservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/domain"
)

type UserRepo interface {
	GetForUpdate(ctx context.Context, userID int) (*domain.User, error)
	UpdateBalances(ctx context.Context, userID int, balance, totalEarning, rewards float64) error
}

// Service mutates account balances and earnings totals. It operates inside
// whatever transaction scope the caller's context carries; it never opens or
// retries transactions on its own.
type Service struct {
	userRepo UserRepo
}

func New(userRepo UserRepo) *Service {
	return &Service{
		userRepo: userRepo,
	}
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Credit adds amount to the user's balance and applies the earning and
// reward deltas. Returns the resulting balance.
func (s *Service) Credit(ctx context.Context, userID int, amount, earningDelta, rewardDelta float64) (float64, error) {
	user, err := s.userRepo.GetForUpdate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load user for credit", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	newBalance := user.AccountBalance + amount
	err = s.userRepo.UpdateBalances(ctx, userID, newBalance, user.TotalEarning+earningDelta, user.Rewards+rewardDelta)
	if err != nil {
		zap.L().Error("failed to credit user balance", zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}

// Debit subtracts amount from the user's balance. Fails without mutation if
// the balance would go negative.
func (s *Service) Debit(ctx context.Context, userID int, amount float64) (float64, error) {
	user, err := s.userRepo.GetForUpdate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load user for debit", zap.Error(err))
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}

	if user.AccountBalance < amount {
		return 0, ErrInsufficientBalance
	}

	newBalance := user.AccountBalance - amount
	err = s.userRepo.UpdateBalances(ctx, userID, newBalance, user.TotalEarning, user.Rewards)
	if err != nil {
		zap.L().Error("failed to debit user balance", zap.Error(err))
		return 0, err
	}
	return newBalance, nil
}
