package reports

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/bdspro/platform/internal/domain"
	"github.com/bdspro/platform/internal/dto"
	"github.com/bdspro/platform/internal/service/reportservice"
	"github.com/bdspro/platform/pkg/auth"
	"github.com/bdspro/platform/pkg/utils"
)

type Service interface {
	GetUserSummary(ctx context.Context, userID int) (*domain.UserSummary, error)
	GetNetworkStats(ctx context.Context, userID int) (*domain.NetworkStats, error)
	ListTransactions(ctx context.Context, userID, limit, offset int) ([]domain.Transaction, error)
	ListReferralIncome(ctx context.Context, userID, limit, offset int) ([]domain.ReferralIncomeTracking, error)
	ListGrowthHistory(ctx context.Context, userID, limit, offset int) ([]domain.GrowthTracking, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

const defaultPageSize = 50

func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= defaultPageSize {
		limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

// GetBalance godoc
//
//	@Summary		Get current user balance and earnings
//	@Description	Retrieve account balance, cumulative earnings, rewards and recent transactions
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *ReportHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	summary, err := h.reportService.GetUserSummary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, reportservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	recent := make([]dto.TransactionDTO, len(summary.RecentTransactions))
	for i, txn := range summary.RecentTransactions {
		recent[i] = toTransactionDTO(txn)
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		UserID:             summary.User.ID,
		Name:               summary.User.Name,
		Email:              summary.User.Email,
		AccountBalance:     summary.User.AccountBalance,
		TotalEarning:       summary.User.TotalEarning,
		Rewards:            summary.User.Rewards,
		ReferralCode:       summary.User.ReferralCode,
		RecentTransactions: recent,
	})
}

// GetNetwork godoc
//
//	@Summary		Get referral network stats
//	@Description	Per-level referral income and business volume for the authenticated user
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.NetworkResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/network [get]
func (h *ReportHandler) GetNetwork(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	stats, err := h.reportService.GetNetworkStats(r.Context(), userID)
	if err != nil {
		if errors.Is(err, reportservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.NetworkResponseDTO{
		Level1Income:        stats.Level1Income,
		Level2Income:        stats.Level2Income,
		Level1Business:      stats.Level1Business,
		Level2Business:      stats.Level2Business,
		TotalReferralIncome: stats.TotalReferralIncome,
		TotalBusinessVolume: stats.TotalBusinessVolume,
	})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	Paginated transaction listing for the authenticated user, newest first
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"page size (max 50)"
//	@Param			offset	query		int	false	"offset"
//	@Success		200		{array}		dto.TransactionDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *ReportHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit, offset := pagination(r)

	txns, err := h.reportService.ListTransactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(txns) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionDTO, len(txns))
	for i, txn := range txns {
		response[i] = toTransactionDTO(txn)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetReferralIncome godoc
//
//	@Summary		Get referral income history
//	@Description	Paginated referral income tracking records where the authenticated user is the referrer
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"page size (max 50)"
//	@Param			offset	query		int	false	"offset"
//	@Success		200		{array}		dto.ReferralIncomeDTO
//	@Success		204		{object}	utils.Response	"No referral income records"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/referrals/income [get]
func (h *ReportHandler) GetReferralIncome(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit, offset := pagination(r)

	trackings, err := h.reportService.ListReferralIncome(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch referral income")
		return
	}
	if len(trackings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Referral income records not found")
		return
	}

	response := make([]dto.ReferralIncomeDTO, len(trackings))
	for i, tr := range trackings {
		response[i] = dto.ReferralIncomeDTO{
			DepositorID:    tr.DepositorID,
			Level:          tr.Level,
			ReferralIncome: tr.ReferralIncome,
			BusinessVolume: tr.BusinessVolume,
			Status:         tr.Status,
			ProcessedAt:    tr.ProcessedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetGrowthHistory godoc
//
//	@Summary		Get growth payout history
//	@Description	Paginated growth tracking records for the authenticated user's deposits
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"page size (max 50)"
//	@Param			offset	query		int	false	"offset"
//	@Success		200		{array}		dto.GrowthHistoryDTO
//	@Success		204		{object}	utils.Response	"No growth records"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/growth [get]
func (h *ReportHandler) GetGrowthHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	limit, offset := pagination(r)

	trackings, err := h.reportService.ListGrowthHistory(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch growth history")
		return
	}
	if len(trackings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Growth records not found")
		return
	}

	response := make([]dto.GrowthHistoryDTO, len(trackings))
	for i, tr := range trackings {
		response[i] = dto.GrowthHistoryDTO{
			DepositID:        tr.DepositID,
			OriginalAmount:   tr.OriginalAmount,
			GrowthAmount:     tr.GrowthAmount,
			GrowthPercentage: tr.GrowthPercentage,
			Status:           tr.Status,
			ProcessedAt:      tr.ProcessedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toTransactionDTO(txn domain.Transaction) dto.TransactionDTO {
	return dto.TransactionDTO{
		ID:          txn.ID,
		Type:        txn.Type,
		Amount:      txn.Amount,
		Balance:     txn.Balance,
		Description: txn.Description,
		Status:      txn.Status,
		CreatedAt:   txn.CreatedAt,
	}
}
