package admin

import (
	"context"
	"net/http"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/dto"
	"github.com/bdspro/platform/pkg/utils"
)

type GrowthService interface {
	ProcessMaturedDeposits(ctx context.Context) ([]domain.GrowthResult, error)
}

type AdminHandler struct {
	growthService GrowthService
}

func New(growthService GrowthService) *AdminHandler {
	return &AdminHandler{
		growthService: growthService,
	}
}

// ProcessGrowth godoc
//
//	@Summary		Run the growth maturity sweep
//	@Description	Synchronously process all matured deposits that have not received growth yet; safe to re-run
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GrowthSweepResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Growth processing failed"
//	@Router			/api/admin/growth/process [post]
func (h *AdminHandler) ProcessGrowth(w http.ResponseWriter, r *http.Request) {
	results, err := h.growthService.ProcessMaturedDeposits(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Growth processing failed")
		return
	}

	response := dto.GrowthSweepResponseDTO{
		TotalProcessed: len(results),
		Results:        make([]dto.GrowthResultDTO, len(results)),
	}
	for i, result := range results {
		if result.Success {
			response.Successful++
		} else {
			response.Failed++
		}
		response.Results[i] = dto.GrowthResultDTO{
			UserID:       result.UserID,
			DepositID:    result.DepositID,
			Amount:       result.Amount,
			GrowthAmount: result.GrowthAmount,
			NewBalance:   result.NewBalance,
			Success:      result.Success,
			Error:        result.Error,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}
