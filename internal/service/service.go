package service

import (
	"github.com/bdspro/platform/internal/config"
	"github.com/bdspro/platform/internal/handlers/admin"
	"github.com/bdspro/platform/internal/handlers/auth"
	"github.com/bdspro/platform/internal/handlers/deposits"
	"github.com/bdspro/platform/internal/handlers/reports"
	"github.com/bdspro/platform/internal/handlers/withdrawals"

	pkgauth "github.com/bdspro/platform/pkg/auth"

	"github.com/bdspro/platform/internal/pg"
	"github.com/bdspro/platform/internal/repo"
	"github.com/bdspro/platform/internal/service/authservice"
	"github.com/bdspro/platform/internal/service/balanceservice"
	"github.com/bdspro/platform/internal/service/depositservice"
	"github.com/bdspro/platform/internal/service/growthservice"
	"github.com/bdspro/platform/internal/service/referralservice"
	"github.com/bdspro/platform/internal/service/reportservice"
	"github.com/bdspro/platform/internal/service/withdrawalservice"
)

type Services struct {
	AuthService       auth.Service
	DepositService    deposits.Service
	WithdrawalService withdrawals.Service
	ReportService     reports.Service
	GrowthService     admin.GrowthService

	Growth *growthservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	balanceService := balanceservice.New(repo.UserRepo)
	referralService := referralservice.New(repo.UserRepo, repo.ReferralRepo, repo.TransactionRepo, repo.NetworkRepo, balanceService, txManager, cfg)
	depositService := depositservice.New(repo.UserRepo, repo.TransactionRepo, repo.DepositRepo, balanceService, referralService, txManager, cfg)
	withdrawalService := withdrawalservice.New(repo.UserRepo, repo.TransactionRepo, balanceService, txManager, cfg)
	growthService := growthservice.New(repo.DepositRepo, repo.GrowthRepo, repo.TransactionRepo, balanceService, referralService, txManager, cfg)
	reportService := reportservice.New(repo.UserRepo, repo.TransactionRepo, repo.ReferralRepo, repo.GrowthRepo, repo.NetworkRepo)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		DepositService:    depositService,
		WithdrawalService: withdrawalService,
		ReportService:     reportService,
		GrowthService:     growthService,
		Growth:            growthService,
	}
}
