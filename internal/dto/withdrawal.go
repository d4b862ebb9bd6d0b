package dto

type WithdrawalRequestDTO struct {
	Amount  float64 `json:"amount" example:"100"`
	Address string  `json:"address" example:"TXk4G1zvN8wq2hP9rLm5eYc3dAb7fJh6Qs"`
	Note    string  `json:"note,omitempty" example:"monthly payout"`
}

type WithdrawalResponseDTO struct {
	Amount        float64 `json:"amount" example:"100"`
	NewBalance    float64 `json:"new_balance" example:"2400.5"`
	TransactionID int     `json:"transaction_id" example:"77"`
	Status        string  `json:"status" example:"pending"`
}
