package userrepo

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

const userColumns = `id, name, email, password_hash, referral_code, referrer_id, account_balance, total_earning, rewards, created_at, updated_at`

func (r *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.ReferralCode, &user.ReferrerID, &user.AccountBalance,
		&user.TotalEarning, &user.Rewards, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't scan user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE referral_code = $1`
	return r.scanUser(r.db.QueryRow(ctx, query, code))
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, referral_code, referrer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash, user.ReferralCode, user.ReferrerID).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

// GetForUpdate locks the user row for the duration of the surrounding
// transaction so concurrent balance mutations serialize on the row.
func (r *Repository) GetForUpdate(ctx context.Context, userID int) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) UpdateBalances(ctx context.Context, userID int, balance, totalEarning, rewards float64) error {
	query := `
		UPDATE users
		SET account_balance = $1, total_earning = $2, rewards = $3, updated_at = now()
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, balance, totalEarning, rewards, userID)
	if err != nil {
		zap.L().Error("can't update user balances", zap.Error(err))
		return err
	}
	return nil
}

// GetReferrerID returns the direct upline of a user, nil when there is none.
func (r *Repository) GetReferrerID(ctx context.Context, userID int) (*int, error) {
	query := `SELECT referrer_id FROM users WHERE id = $1`
	var referrerID *int
	err := r.db.QueryRow(ctx, query, userID).Scan(&referrerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get referrer id", zap.Error(err))
		return nil, err
	}
	return referrerID, nil
}

// SetReferrer attaches a referrer to a user only if none is attached yet and
// the referrer is a different account. Returns whether the row was updated.
func (r *Repository) SetReferrer(ctx context.Context, userID, referrerID int) (bool, error) {
	query := `
		UPDATE users
		SET referrer_id = $1, updated_at = now()
		WHERE id = $2 AND referrer_id IS NULL AND id <> $1
	`
	tag, err := r.db.Exec(ctx, query, referrerID, userID)
	if err != nil {
		zap.L().Error("can't set referrer", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
