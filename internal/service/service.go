package service

import (
	"github.com/GlebRadaev/paytrace/internal/background"
	"github.com/GlebRadaev/paytrace/internal/handlers/accounts"
	"github.com/GlebRadaev/paytrace/internal/handlers/claims"
	"github.com/GlebRadaev/paytrace/internal/handlers/payments"
	"github.com/GlebRadaev/paytrace/internal/handlers/reviews"
	"github.com/GlebRadaev/paytrace/internal/handlers/schedules"
	"github.com/GlebRadaev/paytrace/internal/handlers/transfers"
	"github.com/GlebRadaev/paytrace/internal/ledger"
	"github.com/GlebRadaev/paytrace/internal/mobilemoney"
	"github.com/GlebRadaev/paytrace/internal/repo"
	"github.com/GlebRadaev/paytrace/internal/service/accountservice"
	"github.com/GlebRadaev/paytrace/internal/service/claimservice"
	"github.com/GlebRadaev/paytrace/internal/service/paymentservice"
	"github.com/GlebRadaev/paytrace/internal/service/reviewservice"
	"github.com/GlebRadaev/paytrace/internal/service/scheduleservice"
	"github.com/GlebRadaev/paytrace/internal/service/transferservice"
	"github.com/GlebRadaev/paytrace/internal/vault"
	"github.com/GlebRadaev/paytrace/pkg/auth"
	"github.com/GlebRadaev/paytrace/pkg/pinning"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
)

type Services struct {
	AccountService  accounts.Service
	PaymentService  payments.Service
	ScheduleService schedules.Service
	ClaimService    claims.Service
	ReviewService   reviews.Service
	TransferService transfers.Service

	// PlatformKey is empty when no platform account is configured.
	PlatformKey string
}

// Deps are the external collaborators shared by the services.
type Deps struct {
	Vault    *vault.Vault
	Ledger   *ledger.Gateway
	Minter   *ledger.Minter
	Rail     *mobilemoney.Rail
	Pinner   *pinning.Pinner
	Pool     *background.Pool
	Notifier *background.Notifier
	Tokens   *auth.InviteService
	Platform *keypair.Full

	StartingBalance string
	Rate            decimal.Decimal
	Parallel        int
	Review          reviewservice.Config
}

func New(repo *repo.Repositories, deps Deps) *Services {
	accountService := accountservice.New(repo.WorkerRepo, deps.Vault, deps.Ledger, deps.Notifier, deps.Platform, deps.StartingBalance)
	paymentService := paymentservice.New(accountService, repo.WorkerRepo, deps.Vault, deps.Ledger)
	scheduleService := scheduleservice.New(repo.ScheduleRepo, repo.WorkerRepo, paymentService, deps.Ledger, repo.TxManager, deps.Parallel)
	claimService := claimservice.New(repo.ClaimRepo, repo.WorkerRepo, deps.Notifier)
	transferService := transferservice.New(repo.TransferRepo, accountService, paymentService, deps.Ledger,
		deps.Rail, deps.Notifier, deps.Platform, deps.Rate)
	reviewService := reviewservice.New(repo.ReviewRepo, repo.ScheduleRepo, repo.WorkerRepo, deps.Minter,
		deps.Pinner, deps.Pool, deps.Tokens, deps.Notifier, deps.Review)

	var platformKey string
	if deps.Platform != nil {
		platformKey = deps.Platform.Address()
	}

	return &Services{
		AccountService:  accountService,
		PaymentService:  paymentService,
		ScheduleService: scheduleService,
		ClaimService:    claimService,
		ReviewService:   reviewService,
		TransferService: transferService,
		PlatformKey:     platformKey,
	}
}
