package repo

import (
	"github.com/GlebRadaev/paytrace/internal/pg"
	claimrepo "github.com/GlebRadaev/paytrace/internal/repo/claim-repo"
	reviewrepo "github.com/GlebRadaev/paytrace/internal/repo/review-repo"
	schedulerepo "github.com/GlebRadaev/paytrace/internal/repo/schedule-repo"
	transferrepo "github.com/GlebRadaev/paytrace/internal/repo/transfer-repo"
	workerrepo "github.com/GlebRadaev/paytrace/internal/repo/worker-repo"
	"github.com/GlebRadaev/paytrace/internal/service/accountservice"
	"github.com/GlebRadaev/paytrace/internal/service/claimservice"
	"github.com/GlebRadaev/paytrace/internal/service/paymentservice"
	"github.com/GlebRadaev/paytrace/internal/service/reviewservice"
	"github.com/GlebRadaev/paytrace/internal/service/scheduleservice"
	"github.com/GlebRadaev/paytrace/internal/service/transferservice"
)

type WorkerRepo interface {
	accountservice.Repo
	paymentservice.SecretRepo
}

type ScheduleRepo interface {
	scheduleservice.Repo
	reviewservice.Relationships
}

type Repositories struct {
	WorkerRepo   WorkerRepo
	ScheduleRepo ScheduleRepo
	ClaimRepo    claimservice.Repo
	ReviewRepo   reviewservice.Repo
	TransferRepo transferservice.Repo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		WorkerRepo:   workerrepo.New(conn),
		ScheduleRepo: schedulerepo.New(conn),
		ClaimRepo:    claimrepo.New(conn),
		ReviewRepo:   reviewrepo.New(conn),
		TransferRepo: transferrepo.New(conn),
		TxManager:    txManager,
	}
}
