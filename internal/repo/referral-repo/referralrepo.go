package referralrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, tracking *domain.ReferralIncomeTracking) (*domain.ReferralIncomeTracking, error) {
	query := `
		INSERT INTO referral_income_tracking (referrer_id, depositor_id, deposit_transaction_id, level, referral_income, business_volume, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tracking.ReferrerID, tracking.DepositorID, tracking.DepositTransactionID,
		tracking.Level, tracking.ReferralIncome, tracking.BusinessVolume, tracking.Status,
	).Scan(&tracking.ID, &tracking.CreatedAt)
	if err != nil {
		zap.L().Error("can't save referral income tracking record", zap.Error(err))
		return nil, err
	}
	return tracking, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, trackingID int, status string) error {
	query := `
		UPDATE referral_income_tracking
		SET status = $1, processed_at = now()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, status, trackingID)
	if err != nil {
		zap.L().Error("can't update referral income tracking status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByReferrerID(ctx context.Context, referrerID, limit, offset int) ([]domain.ReferralIncomeTracking, error) {
	query := `
		SELECT id, referrer_id, depositor_id, deposit_transaction_id, level, referral_income, business_volume, status, processed_at, created_at
		FROM referral_income_tracking
		WHERE referrer_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, referrerID, limit, offset)
	if err != nil {
		zap.L().Error("can't get referral income tracking records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var trackings []domain.ReferralIncomeTracking
	for rows.Next() {
		var tracking domain.ReferralIncomeTracking
		err := rows.Scan(
			&tracking.ID, &tracking.ReferrerID, &tracking.DepositorID,
			&tracking.DepositTransactionID, &tracking.Level, &tracking.ReferralIncome,
			&tracking.BusinessVolume, &tracking.Status, &tracking.ProcessedAt, &tracking.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan referral income tracking row", zap.Error(err))
			return nil, err
		}
		trackings = append(trackings, tracking)
	}
	return trackings, nil
}
