package networkrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

const networkColumns = `user_id, level1_income, level2_income, level1_business, level2_business, total_referral_income, total_business_volume, updated_at`

func (r *Repository) Get(ctx context.Context, userID int) (*domain.NetworkStats, error) {
	query := `SELECT ` + networkColumns + ` FROM network WHERE user_id = $1`
	var stats domain.NetworkStats
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&stats.UserID, &stats.Level1Income, &stats.Level2Income,
		&stats.Level1Business, &stats.Level2Business,
		&stats.TotalReferralIncome, &stats.TotalBusinessVolume, &stats.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get network stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.NetworkStats, error) {
	query := `
		INSERT INTO network (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't create network stats", zap.Error(err))
		return nil, err
	}
	return &domain.NetworkStats{UserID: userID}, nil
}

// AddIncome upserts a per-level income/business increment. Totals never
// decrease; there is no symmetric decrement operation.
func (r *Repository) AddIncome(ctx context.Context, userID, level int, income, business float64) error {
	var level1Income, level2Income, level1Business, level2Business float64
	switch level {
	case 1:
		level1Income, level1Business = income, business
	case 2:
		level2Income, level2Business = income, business
	}

	query := `
		INSERT INTO network (user_id, level1_income, level2_income, level1_business, level2_business, total_referral_income, total_business_volume)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET level1_income = network.level1_income + EXCLUDED.level1_income,
			level2_income = network.level2_income + EXCLUDED.level2_income,
			level1_business = network.level1_business + EXCLUDED.level1_business,
			level2_business = network.level2_business + EXCLUDED.level2_business,
			total_referral_income = network.total_referral_income + EXCLUDED.total_referral_income,
			total_business_volume = network.total_business_volume + EXCLUDED.total_business_volume,
			updated_at = now()
	`
	_, err := r.db.Exec(ctx, query, userID, level1Income, level2Income, level1Business, level2Business, income, business)
	if err != nil {
		zap.L().Error("can't update network stats", zap.Error(err))
		return err
	}
	return nil
}
