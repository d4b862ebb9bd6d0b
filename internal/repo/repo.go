package repo

import (
	"github.com/bdspro/platform/internal/pg"
	depositrepo "github.com/bdspro/platform/internal/repo/deposit-repo"
	growthrepo "github.com/bdspro/platform/internal/repo/growth-repo"
	networkrepo "github.com/bdspro/platform/internal/repo/network-repo"
	referralrepo "github.com/bdspro/platform/internal/repo/referral-repo"
	transactionrepo "github.com/bdspro/platform/internal/repo/transaction-repo"
	userrepo "github.com/bdspro/platform/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo        *userrepo.Repository
	TransactionRepo *transactionrepo.Repository
	DepositRepo     *depositrepo.Repository
	GrowthRepo      *growthrepo.Repository
	ReferralRepo    *referralrepo.Repository
	NetworkRepo     *networkrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		TransactionRepo: transactionrepo.New(conn),
		DepositRepo:     depositrepo.New(conn),
		GrowthRepo:      growthrepo.New(conn),
		ReferralRepo:    referralrepo.New(conn),
		NetworkRepo:     networkrepo.New(conn),
	}
}
