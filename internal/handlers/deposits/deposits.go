package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/dto"
	"github.com/bdspro/platform/internal/service/depositservice"
	"github.com/bdspro/platform/pkg/auth"
	"github.com/bdspro/platform/pkg/utils"
)

type Service interface {
	ProcessDeposit(ctx context.Context, userID int, amount float64, referrerCode string) (*domain.DepositResult, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// ProcessDeposit godoc
//
//	@Summary		Process a deposit
//	@Description	Credit a deposit to the authenticated user's account and distribute referral commissions up to two levels
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit request payload"
//	@Success		200		{object}	dto.DepositResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositHandler) ProcessDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.depositService.ProcessDeposit(r.Context(), userID, req.Amount, req.ReferralCode)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, depositservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		DepositAmount:   result.DepositAmount,
		NewBalance:      result.NewBalance,
		ReferralApplied: result.ReferralApplied,
		Level1Referrer:  result.Level1Referrer,
		Level2Referrer:  result.Level2Referrer,
	})
}
