package dto

type DepositRequestDTO struct {
	Amount       float64 `json:"amount" example:"1000"`
	ReferralCode string  `json:"referral_code,omitempty" example:"BDS7F3A91C2"`
}

type DepositResponseDTO struct {
	DepositAmount   float64 `json:"deposit_amount" example:"1000"`
	NewBalance      float64 `json:"new_balance" example:"2500.5"`
	ReferralApplied bool    `json:"referral_applied" example:"true"`
	Level1Referrer  *int    `json:"level1_referrer,omitempty" example:"42"`
	Level2Referrer  *int    `json:"level2_referrer,omitempty" example:"17"`
}
