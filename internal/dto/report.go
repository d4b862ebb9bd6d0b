package dto

import "time"

type BalanceResponseDTO struct {
	UserID             int              `json:"user_id" example:"1"`
	Name               string           `json:"name" example:"Jane Doe"`
	Email              string           `json:"email" example:"jane@example.com"`
	AccountBalance     float64          `json:"account_balance" example:"2500.5"`
	TotalEarning       float64          `json:"total_earning" example:"150"`
	Rewards            float64          `json:"rewards" example:"40"`
	ReferralCode       string           `json:"referral_code" example:"BDS7F3A91C2"`
	RecentTransactions []TransactionDTO `json:"recent_transactions"`
}

type TransactionDTO struct {
	ID          int       `json:"id" example:"10"`
	Type        string    `json:"type" example:"deposit"`
	Amount      float64   `json:"amount" example:"1000"`
	Balance     float64   `json:"balance" example:"2500.5"`
	Description string    `json:"description" example:"Deposit of $1000.00"`
	Status      string    `json:"status" example:"completed"`
	CreatedAt   time.Time `json:"created_at" example:"2025-01-09T16:09:57+03:00"`
}

type NetworkResponseDTO struct {
	Level1Income        float64 `json:"level1_income" example:"20"`
	Level2Income        float64 `json:"level2_income" example:"10"`
	Level1Business      float64 `json:"level1_business" example:"2000"`
	Level2Business      float64 `json:"level2_business" example:"1000"`
	TotalReferralIncome float64 `json:"total_referral_income" example:"30"`
	TotalBusinessVolume float64 `json:"total_business_volume" example:"3000"`
}

type ReferralIncomeDTO struct {
	DepositorID    int        `json:"depositor_id" example:"2"`
	Level          int        `json:"level" example:"1"`
	ReferralIncome float64    `json:"referral_income" example:"20"`
	BusinessVolume float64    `json:"business_volume" example:"2000"`
	Status         string     `json:"status" example:"processed"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
}

type GrowthHistoryDTO struct {
	DepositID        int        `json:"deposit_id" example:"5"`
	OriginalAmount   float64    `json:"original_amount" example:"1000"`
	GrowthAmount     float64    `json:"growth_amount" example:"60"`
	GrowthPercentage float64    `json:"growth_percentage" example:"6"`
	Status           string     `json:"status" example:"processed"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
}
