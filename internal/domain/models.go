package domain

import "time"

type User struct {
	ID             int       `db:"id"`
	Name           string    `db:"name"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	ReferralCode   string    `db:"referral_code"`
	ReferrerID     *int      `db:"referrer_id"`
	AccountBalance float64   `db:"account_balance"`
	TotalEarning   float64   `db:"total_earning"`
	Rewards        float64   `db:"rewards"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Transaction struct {
	ID                   int       `db:"id"`
	UserID               int       `db:"user_id"`
	Type                 string    `db:"type"`
	Amount               float64   `db:"amount"`
	Balance              float64   `db:"balance"`
	Description          string    `db:"description"`
	Status               string    `db:"status"`
	RelatedUserID        *int      `db:"related_user_id"`
	RelatedTransactionID *int      `db:"related_transaction_id"`
	CreatedAt            time.Time `db:"created_at"`
}

type Deposit struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	TransactionID int       `db:"transaction_id"`
	Amount        float64   `db:"amount"`
	DepositDate   time.Time `db:"deposit_date"`
	MaturityDate  time.Time `db:"maturity_date"`
	Status        string    `db:"status"`
}

type GrowthTracking struct {
	ID               int        `db:"id"`
	UserID           int        `db:"user_id"`
	DepositID        int        `db:"deposit_id"`
	OriginalAmount   float64    `db:"original_amount"`
	GrowthAmount     float64    `db:"growth_amount"`
	GrowthPercentage float64    `db:"growth_percentage"`
	Status           string     `db:"status"`
	ProcessedAt      *time.Time `db:"processed_at"`
	CreatedAt        time.Time  `db:"created_at"`
}

type ReferralIncomeTracking struct {
	ID                   int        `db:"id"`
	ReferrerID           int        `db:"referrer_id"`
	DepositorID          int        `db:"depositor_id"`
	DepositTransactionID int        `db:"deposit_transaction_id"`
	Level                int        `db:"level"`
	ReferralIncome       float64    `db:"referral_income"`
	BusinessVolume       float64    `db:"business_volume"`
	Status               string     `db:"status"`
	ProcessedAt          *time.Time `db:"processed_at"`
	CreatedAt            time.Time  `db:"created_at"`
}

type NetworkStats struct {
	UserID              int       `db:"user_id"`
	Level1Income        float64   `db:"level1_income"`
	Level2Income        float64   `db:"level2_income"`
	Level1Business      float64   `db:"level1_business"`
	Level2Business      float64   `db:"level2_business"`
	TotalReferralIncome float64   `db:"total_referral_income"`
	TotalBusinessVolume float64   `db:"total_business_volume"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// ReferralChain holds up to two levels of upline for a user. A nil pointer
// means the chain terminates before that level.
type ReferralChain struct {
	Level1ReferrerID *int
	Level2ReferrerID *int
}

type UserSummary struct {
	User               User
	RecentTransactions []Transaction
}

type DepositResult struct {
	UserID          int
	DepositAmount   float64
	NewBalance      float64
	TransactionID   int
	ReferralApplied bool
	Level1Referrer  *int
	Level2Referrer  *int
}

type WithdrawalResult struct {
	UserID        int
	Amount        float64
	NewBalance    float64
	TransactionID int
}

type GrowthResult struct {
	UserID       int
	DepositID    int
	Amount       float64
	GrowthAmount float64
	NewBalance   float64
	TrackingID   int
	Success      bool
	Error        string
}
