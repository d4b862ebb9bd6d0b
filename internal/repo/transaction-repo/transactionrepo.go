package transactionrepo

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

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, amount, balance, description, status, related_user_id, related_transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		txn.UserID, txn.Type, txn.Amount, txn.Balance, txn.Description,
		txn.Status, txn.RelatedUserID, txn.RelatedTransactionID,
	).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT id, user_id, type, amount, balance, description, status, related_user_id, related_transaction_id, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(
			&txn.ID, &txn.UserID, &txn.Type, &txn.Amount, &txn.Balance,
			&txn.Description, &txn.Status, &txn.RelatedUserID,
			&txn.RelatedTransactionID, &txn.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
