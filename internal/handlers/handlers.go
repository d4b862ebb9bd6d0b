package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bdspro/platform/docs"
	adminhandlers "github.com/bdspro/platform/internal/handlers/admin"
	authhandlers "github.com/bdspro/platform/internal/handlers/auth"
	deposithandlers "github.com/bdspro/platform/internal/handlers/deposits"
	reporthandlers "github.com/bdspro/platform/internal/handlers/reports"
	withdrawalhandlers "github.com/bdspro/platform/internal/handlers/withdrawals"
	"github.com/bdspro/platform/internal/service"
	"github.com/bdspro/platform/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	ProcessDeposit(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetNetwork(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetReferralIncome(w http.ResponseWriter, r *http.Request)
	GetGrowthHistory(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	ProcessWithdrawal(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ProcessGrowth(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	DepositHandler    DepositHandler
	WithdrawalHandler WithdrawalHandler
	ReportHandler     ReportHandler
	AdminHandler      AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		DepositHandler:    deposithandlers.New(s.DepositService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		ReportHandler:     reporthandlers.New(s.ReportService),
		AdminHandler:      adminhandlers.New(s.GrowthService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(auth.AuthMiddleware)
				r.Get("/balance", h.ReportHandler.GetBalance)
				r.Get("/network", h.ReportHandler.GetNetwork)
				r.Get("/transactions", h.ReportHandler.GetTransactions)
				r.Get("/referrals/income", h.ReportHandler.GetReferralIncome)
				r.Get("/growth", h.ReportHandler.GetGrowthHistory)
			})
		})
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/deposits", h.DepositHandler.ProcessDeposit)
			r.Post("/withdrawals", h.WithdrawalHandler.ProcessWithdrawal)
			r.Post("/admin/growth/process", h.AdminHandler.ProcessGrowth)
		})
	})

	return r
}
