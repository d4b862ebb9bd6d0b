package reportservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/domain"
)

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type TransactionRepo interface {
	FindByUserID(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error)
}

type ReferralRepo interface {
	FindByReferrerID(ctx context.Context, referrerID, limit, offset int) ([]domain.ReferralIncomeTracking, error)
}

type GrowthRepo interface {
	FindByUserID(ctx context.Context, userID, limit, offset int) ([]domain.GrowthTracking, error)
}

type NetworkRepo interface {
	Get(ctx context.Context, userID int) (*domain.NetworkStats, error)
	Create(ctx context.Context, userID int) (*domain.NetworkStats, error)
}

var ErrUserNotFound = errors.New("user not found")

const recentTransactionsLimit = 10

// Service serves read-only rollups derived from the ledger tables. It
// enforces no invariants of its own.
type Service struct {
	userRepo     UserRepo
	txnRepo      TransactionRepo
	referralRepo ReferralRepo
	growthRepo   GrowthRepo
	networkRepo  NetworkRepo
}

func New(userRepo UserRepo, txnRepo TransactionRepo, referralRepo ReferralRepo, growthRepo GrowthRepo, networkRepo NetworkRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		txnRepo:      txnRepo,
		referralRepo: referralRepo,
		growthRepo:   growthRepo,
		networkRepo:  networkRepo,
	}
}

func (s *Service) GetUserSummary(ctx context.Context, userID int) (*domain.UserSummary, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load user summary", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	txns, err := s.txnRepo.FindByUserID(ctx, userID, recentTransactionsLimit, 0)
	if err != nil {
		zap.L().Error("failed to load recent transactions", zap.Error(err))
		return nil, err
	}

	return &domain.UserSummary{
		User:               *user,
		RecentTransactions: txns,
	}, nil
}

// GetNetworkStats returns the cached per-user network aggregate, creating
// an empty row on first read.
func (s *Service) GetNetworkStats(ctx context.Context, userID int) (*domain.NetworkStats, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stats, err := s.networkRepo.Get(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get network stats", zap.Error(err))
		return nil, err
	}
	if stats == nil {
		return s.networkRepo.Create(ctx, userID)
	}
	return stats, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) ListReferralIncome(ctx context.Context, userID, limit, offset int) ([]domain.ReferralIncomeTracking, error) {
	trackings, err := s.referralRepo.FindByReferrerID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list referral income", zap.Error(err))
		return nil, err
	}
	return trackings, nil
}

func (s *Service) ListGrowthHistory(ctx context.Context, userID, limit, offset int) ([]domain.GrowthTracking, error) {
	trackings, err := s.growthRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list growth history", zap.Error(err))
		return nil, err
	}
	return trackings, nil
}
