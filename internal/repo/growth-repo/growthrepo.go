package growthrepo

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

func (r *Repository) Create(ctx context.Context, tracking *domain.GrowthTracking) (*domain.GrowthTracking, error) {
	query := `
		INSERT INTO growth_tracking (user_id, deposit_id, original_amount, growth_amount, growth_percentage, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		tracking.UserID, tracking.DepositID, tracking.OriginalAmount,
		tracking.GrowthAmount, tracking.GrowthPercentage, tracking.Status,
	).Scan(&tracking.ID, &tracking.CreatedAt)
	if err != nil {
		zap.L().Error("can't save growth tracking record", zap.Error(err))
		return nil, err
	}
	return tracking, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, trackingID int, status string) error {
	query := `
		UPDATE growth_tracking
		SET status = $1, processed_at = now()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, status, trackingID)
	if err != nil {
		zap.L().Error("can't update growth tracking status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID, limit, offset int) ([]domain.GrowthTracking, error) {
	query := `
		SELECT id, user_id, deposit_id, original_amount, growth_amount, growth_percentage, status, processed_at, created_at
		FROM growth_tracking
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't get growth tracking records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var trackings []domain.GrowthTracking
	for rows.Next() {
		var tracking domain.GrowthTracking
		err := rows.Scan(
			&tracking.ID, &tracking.UserID, &tracking.DepositID,
			&tracking.OriginalAmount, &tracking.GrowthAmount, &tracking.GrowthPercentage,
			&tracking.Status, &tracking.ProcessedAt, &tracking.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan growth tracking row", zap.Error(err))
			return nil, err
		}
		trackings = append(trackings, tracking)
	}
	return trackings, nil
}
