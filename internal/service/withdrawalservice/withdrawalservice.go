package withdrawalservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/pg"
	"github.com/bdspro/platform/internal/service/balanceservice"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
}

type BalanceService interface {
	Debit(ctx context.Context, userID int, amount float64) (float64, error)
}

var (
	ErrInvalidAmount       = errors.New("invalid withdrawal amount")
	ErrBelowMinimum        = errors.New("withdrawal amount below minimum")
	ErrInvalidAddress      = errors.New("invalid withdrawal address")
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance for withdrawal")
)

const minAddressLength = 10

type Service struct {
	userRepo       UserRepo
	txnRepo        TransactionRepo
	balanceService BalanceService
	txManager      pg.TXManager

	minAmount float64
}

func New(userRepo UserRepo, txnRepo TransactionRepo, balanceService BalanceService, txManager pg.TXManager, cfg *config.Config) *Service {
	return &Service{
		userRepo:       userRepo,
		txnRepo:        txnRepo,
		balanceService: balanceService,
		txManager:      txManager,
		minAmount:      cfg.MinWithdrawalAmount,
	}
}

// ProcessWithdrawal debits the user's balance and records a pending
// withdrawal transaction in one atomic step. The actual payout to the
// address happens out of band; the transaction stays pending until then.
func (s *Service) ProcessWithdrawal(ctx context.Context, userID int, amount float64, address, note string) (*domain.WithdrawalResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount < s.minAmount {
		return nil, ErrBelowMinimum
	}
	if len(address) < minAddressLength {
		return nil, ErrInvalidAddress
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load user for withdrawal", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	description := fmt.Sprintf("Withdrawal to %s...", address[:minAddressLength])
	if note != "" {
		description += " - " + note
	}

	result := &domain.WithdrawalResult{
		UserID: userID,
		Amount: amount,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		newBalance, err := s.balanceService.Debit(ctx, userID, amount)
		if err != nil {
			return err
		}

		txn, err := s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:      userID,
			Type:        "withdrawal",
			Amount:      amount,
			Balance:     newBalance,
			Description: description,
			Status:      "pending",
		})
		if err != nil {
			return err
		}

		result.NewBalance = newBalance
		result.TransactionID = txn.ID
		return nil
	})
	if err != nil {
		if errors.Is(err, balanceservice.ErrInsufficientBalance) {
			return nil, ErrInsufficientBalance
		}
		zap.L().Error("withdrawal transaction failed", zap.Int("userID", userID), zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal recorded", zap.Int("userID", userID), zap.Float64("amount", amount))
	return result, nil
}
