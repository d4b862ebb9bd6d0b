package dto

type GrowthSweepResponseDTO struct {
	TotalProcessed int               `json:"total_processed" example:"10"`
	Successful     int               `json:"successful" example:"8"`
	Failed         int               `json:"failed" example:"2"`
	Results        []GrowthResultDTO `json:"results"`
}

type GrowthResultDTO struct {
	UserID       int     `json:"user_id" example:"1"`
	DepositID    int     `json:"deposit_id" example:"5"`
	Amount       float64 `json:"amount" example:"1000"`
	GrowthAmount float64 `json:"growth_amount" example:"60"`
	NewBalance   float64 `json:"new_balance,omitempty" example:"1060"`
	Success      bool    `json:"success" example:"true"`
	Error        string  `json:"error,omitempty"`
}
