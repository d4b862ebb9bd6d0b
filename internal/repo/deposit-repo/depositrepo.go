package depositrepo

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

func (r *Repository) Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	query := `
		INSERT INTO deposits (user_id, transaction_id, amount, deposit_date, maturity_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		deposit.UserID, deposit.TransactionID, deposit.Amount,
		deposit.DepositDate, deposit.MaturityDate, deposit.Status,
	).Scan(&deposit.ID)
	if err != nil {
		zap.L().Error("can't save deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// FindMaturedWithoutGrowth returns active deposits past their maturity date
// that have no processed growth record yet. The status filter matters: the
// payout transaction flips the deposit to matured atomically with the credit,
// so a deposit whose payout committed can never be paid again even when the
// tracking-record update after the commit was lost.
func (r *Repository) FindMaturedWithoutGrowth(ctx context.Context, limit uint32) ([]domain.Deposit, error) {
	query := `
		SELECT d.id, d.user_id, d.transaction_id, d.amount, d.deposit_date, d.maturity_date, d.status
		FROM deposits d
		WHERE d.maturity_date <= now()
		AND d.status = 'active'
		AND NOT EXISTS (
			SELECT 1 FROM growth_tracking gt
			WHERE gt.deposit_id = d.id AND gt.status = 'processed'
		)
		ORDER BY d.maturity_date ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get deposits for growth processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var deposits []domain.Deposit
	for rows.Next() {
		var deposit domain.Deposit
		err := rows.Scan(
			&deposit.ID, &deposit.UserID, &deposit.TransactionID, &deposit.Amount,
			&deposit.DepositDate, &deposit.MaturityDate, &deposit.Status,
		)
		if err != nil {
			zap.L().Error("can't scan deposit row", zap.Error(err))
			return nil, err
		}
		deposits = append(deposits, deposit)
	}
	return deposits, nil
}

func (r *Repository) MarkMatured(ctx context.Context, depositID int) error {
	query := `
		UPDATE deposits
		SET status = 'matured'
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, depositID)
	if err != nil {
		zap.L().Error("can't mark deposit matured", zap.Error(err))
		return err
	}
	return nil
}
