package scheduleservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCancelled = fmt.Errorf("%w: schedule is cancelled", domain.ErrConflict)
	ErrNotHeld   = fmt.Errorf("%w: schedule has no payment to reconcile", domain.ErrConflict)
	ErrTooEarly  = fmt.Errorf("%w: payment may still be in flight", domain.ErrConflict)

	errHoldLost = errors.New("schedule hold was taken over")
)

type Repo interface {
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	GetByID(ctx context.Context, scheduleID string) (*domain.Schedule, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.Schedule, error)
	ListForWorker(ctx context.Context, workerID string) ([]domain.Schedule, error)
	ListDue(ctx context.Context, asOf time.Time) ([]domain.Schedule, error)
	LockDue(ctx context.Context, scheduleID string, asOf time.Time) (*domain.Schedule, error)
	Hold(ctx context.Context, scheduleID string, due time.Time) (bool, error)
	RecordPayment(ctx context.Context, scheduleID string, due time.Time, txHash string) (bool, error)
	AdvanceNextDate(ctx context.Context, scheduleID string, from, to time.Time) (bool, error)
	Release(ctx context.Context, scheduleID string, due time.Time) (bool, error)
	UpdateStatus(ctx context.Context, scheduleID string, status domain.ScheduleStatus) (*domain.Schedule, error)
}

type Workers interface {
	FindByWorkerID(ctx context.Context, workerID string) (*domain.Worker, error)
}

type Payer interface {
	SendTracked(ctx context.Context, from, to, amount, memo string, before domain.BeforeSubmit) (*domain.PaymentResult, error)
}

type Ledger interface {
	TransactionStatus(ctx context.Context, hash string) (*domain.SubmitResult, error)
}

type Service struct {
	repo     Repo
	workers  Workers
	payer    Payer
	ledger   Ledger
	tx       pg.TXManager
	parallel int
	now      func() time.Time
}

func New(repo Repo, workers Workers, payer Payer, ledger Ledger, tx pg.TXManager, parallel int) *Service {
	if parallel < 1 {
		parallel = 1
	}
	return &Service{
		repo:     repo,
		workers:  workers,
		payer:    payer,
		ledger:   ledger,
		tx:       tx,
		parallel: parallel,
		now:      time.Now,
	}
}

type CreateParams struct {
	EmployerID string
	WorkerID   string
	Amount     string
	Frequency  domain.Frequency
	StartDate  *time.Time
	Memo       string
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*domain.Schedule, error) {
	amount, err := domain.ParseAmount("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	if !p.Frequency.Valid() {
		return nil, domain.NewValidationError("frequency", "must be weekly, biweekly or monthly")
	}
	if p.EmployerID == p.WorkerID {
		return nil, domain.NewValidationError("worker_id", "must differ from the employer")
	}

	today := domain.DateOf(s.now())
	start := today
	if p.StartDate != nil {
		start = domain.DateOf(*p.StartDate)
		if start.Before(today) {
			return nil, domain.NewValidationError("start_date", "must not be in the past")
		}
	}

	for _, id := range []string{p.EmployerID, p.WorkerID} {
		w, err := s.workers.FindByWorkerID(ctx, id)
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, domain.NewNotFoundError("worker", id)
		}
	}

	schedule, err := s.repo.Create(ctx, &domain.Schedule{
		ScheduleID:      domain.NewID(domain.SchedulePrefix),
		EmployerID:      p.EmployerID,
		WorkerID:        p.WorkerID,
		Amount:          domain.FormatAmount(amount),
		Frequency:       p.Frequency,
		NextPaymentDate: start,
		Status:          domain.ScheduleActive,
		Memo:            p.Memo,
	})
	if err != nil {
		zap.L().Error("failed to create schedule", zap.Error(err))
		return nil, err
	}
	return schedule, nil
}

func (s *Service) Get(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	schedule, err := s.repo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, domain.NewNotFoundError("schedule", scheduleID)
	}
	return schedule, nil
}

func (s *Service) ListByEmployer(ctx context.Context, employerID string) ([]domain.Schedule, error) {
	return s.repo.ListByEmployer(ctx, employerID)
}

func (s *Service) ListForWorker(ctx context.Context, workerID string) ([]domain.Schedule, error) {
	return s.repo.ListForWorker(ctx, workerID)
}

func (s *Service) ListDue(ctx context.Context, asOf time.Time) ([]domain.Schedule, error) {
	return s.repo.ListDue(ctx, domain.DateOf(asOf))
}

// UpdateStatus pauses, resumes or cancels a schedule. A cancelled schedule never changes again.
func (s *Service) UpdateStatus(ctx context.Context, scheduleID string, status domain.ScheduleStatus) (*domain.Schedule, error) {
	switch status {
	case domain.ScheduleActive, domain.SchedulePaused, domain.ScheduleCancelled:
	default:
		return nil, domain.NewValidationError("status", "must be active, paused or cancelled")
	}

	current, err := s.Get(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.ScheduleCancelled {
		return nil, ErrCancelled
	}

	updated, err := s.repo.UpdateStatus(ctx, scheduleID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrCancelled
	}
	zap.L().Info("schedule status changed", zap.String("schedule_id", scheduleID), zap.String("status", string(status)))
	return updated, nil
}

// RunDue pays every schedule due on asOf. One failing schedule never stops the others.
func (s *Service) RunDue(ctx context.Context, asOf time.Time) (*domain.RunReport, error) {
	asOf = domain.DateOf(asOf)
	due, err := s.repo.ListDue(ctx, asOf)
	if err != nil {
		zap.L().Error("failed to list due schedules", zap.Error(err))
		return nil, err
	}

	details := make([]domain.RunDetail, len(due))
	g := new(errgroup.Group)
	g.SetLimit(s.parallel)
	for i, schedule := range due {
		g.Go(func() error {
			details[i] = s.execute(ctx, schedule.ScheduleID, asOf)
			return nil
		})
	}
	_ = g.Wait()

	report := &domain.RunReport{AsOf: asOf, Details: make([]domain.RunDetail, 0, len(details))}
	for _, d := range details {
		report.Add(d)
	}
	return report, nil
}

// execute holds one due schedule and pays it. The hold is taken under the row lock and outlives
// the transaction, so neither a concurrent runner nor a later one pays the same date twice.
func (s *Service) execute(ctx context.Context, scheduleID string, asOf time.Time) domain.RunDetail {
	detail := domain.RunDetail{ScheduleID: scheduleID}

	var schedule *domain.Schedule
	err := s.tx.Begin(ctx, func(ctx context.Context) error {
		locked, err := s.repo.LockDue(ctx, scheduleID, asOf)
		if err != nil || locked == nil {
			return err
		}
		held, err := s.repo.Hold(ctx, scheduleID, locked.NextPaymentDate)
		if held {
			schedule = locked
		}
		return err
	})
	if err != nil {
		zap.L().Error("failed to hold schedule", zap.String("schedule_id", scheduleID), zap.Error(err))
		detail.Status = domain.RunFailed
		detail.Error = err.Error()
		return detail
	}
	if schedule == nil {
		detail.Status = domain.RunSkipped
		return detail
	}
	return s.pay(context.WithoutCancel(ctx), schedule)
}

// pay sends the payment of a held schedule and settles the hold. A payment whose outcome is unknown
// leaves the hold in place for Reconcile.
func (s *Service) pay(ctx context.Context, schedule *domain.Schedule) domain.RunDetail {
	detail := domain.RunDetail{ScheduleID: schedule.ScheduleID}
	due := schedule.NextPaymentDate

	record := func(hash string) error {
		ok, err := s.repo.RecordPayment(ctx, schedule.ScheduleID, due, hash)
		if err == nil && !ok {
			err = errHoldLost
		}
		return err
	}
	res, err := s.payer.SendTracked(ctx, schedule.EmployerID, schedule.WorkerID, schedule.Amount, "Scheduled "+schedule.ScheduleID, record)
	if err != nil {
		detail.Status = domain.RunFailed
		detail.Error = err.Error()
		switch {
		case errors.Is(err, domain.ErrSubmissionTimeout):
			detail.Error = "outcome unknown, schedule held for reconciliation: " + err.Error()
		case errors.Is(err, errHoldLost):
		default:
			s.release(ctx, schedule.ScheduleID, due)
		}
		zap.L().Warn("scheduled payment failed", zap.String("schedule_id", schedule.ScheduleID), zap.String("error", detail.Error))
		return detail
	}

	detail.Status = domain.RunExecuted
	detail.TxHash = res.TxHash
	next := domain.Advance(due, schedule.Frequency)
	advanced, err := s.repo.AdvanceNextDate(ctx, schedule.ScheduleID, due, next)
	if err == nil && !advanced {
		err = errHoldLost
	}
	if err != nil {
		zap.L().Error("scheduled payment sent but next date not recorded",
			zap.String("schedule_id", schedule.ScheduleID),
			zap.String("tx_hash", res.TxHash),
			zap.Error(err),
		)
		detail.Error = "paid, schedule held until reconciled: " + err.Error()
		return detail
	}
	detail.NextPaymentDate = &next
	return detail
}

func (s *Service) release(ctx context.Context, scheduleID string, due time.Time) {
	if _, err := s.repo.Release(ctx, scheduleID, due); err != nil {
		zap.L().Error("failed to release schedule hold", zap.String("schedule_id", scheduleID), zap.Error(err))
	}
}

// Reconcile settles a held schedule. A payment found on the ledger advances the schedule. One that
// failed, or is still missing after domain.ReconcileGrace, releases the hold so the date is paid again.
func (s *Service) Reconcile(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	schedule, err := s.Get(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if !schedule.Held() {
		return schedule, ErrNotHeld
	}
	ctx = context.WithoutCancel(ctx)
	due := *schedule.PayingFor
	settled := schedule.PayingSince != nil && s.now().Sub(*schedule.PayingSince) >= domain.ReconcileGrace

	paid := false
	if schedule.PayingTxHash != nil {
		res, err := s.ledger.TransactionStatus(ctx, *schedule.PayingTxHash)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return schedule, err
		default:
			paid = res.Successful
			settled = true
		}
	}
	if !settled {
		return schedule, ErrTooEarly
	}

	if paid {
		next := domain.Advance(due, schedule.Frequency)
		if _, err := s.repo.AdvanceNextDate(ctx, scheduleID, due, next); err != nil {
			return schedule, err
		}
		zap.L().Info("held schedule payment confirmed", zap.String("schedule_id", scheduleID), zap.String("tx_hash", *schedule.PayingTxHash))
	} else {
		if _, err := s.repo.Release(ctx, scheduleID, due); err != nil {
			return schedule, err
		}
		zap.L().Info("held schedule released", zap.String("schedule_id", scheduleID), zap.Time("due", due))
	}
	return s.Get(ctx, scheduleID)
}
