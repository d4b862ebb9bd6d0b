package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/dto"
	"github.com/bdspro/platform/internal/service/withdrawalservice"
	"github.com/bdspro/platform/pkg/auth"
	"github.com/bdspro/platform/pkg/utils"
)

type Service interface {
	ProcessWithdrawal(ctx context.Context, userID int, amount float64, address, note string) (*domain.WithdrawalResult, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// ProcessWithdrawal godoc
//
//	@Summary		Request a withdrawal
//	@Description	Debit the authenticated user's balance and record a pending withdrawal to the given address
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount, address, or insufficient balance"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/withdrawals [post]
func (h *WithdrawalHandler) ProcessWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.withdrawalService.ProcessWithdrawal(r.Context(), userID, req.Amount, req.Address, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrInvalidAmount),
			errors.Is(err, withdrawalservice.ErrBelowMinimum),
			errors.Is(err, withdrawalservice.ErrInvalidAddress),
			errors.Is(err, withdrawalservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, withdrawalservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponseDTO{
		Amount:        result.Amount,
		NewBalance:    result.NewBalance,
		TransactionID: result.TransactionID,
		Status:        "pending",
	})
}
