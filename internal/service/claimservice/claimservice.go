package claimservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrNotPending  = fmt.Errorf("%w: claim is no longer pending", domain.ErrConflict)
	ErrNotApproved = fmt.Errorf("%w: claim is not approved", domain.ErrConflict)
	ErrNotPaying   = fmt.Errorf("%w: claim has no payment in progress", domain.ErrConflict)
)

type Repo interface {
	Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error)
	GetByID(ctx context.Context, claimID string) (*domain.Claim, error)
	ListForEmployer(ctx context.Context, employerID string) ([]domain.Claim, error)
	ListForWorker(ctx context.Context, workerID string) ([]domain.Claim, error)
	TransitionStatus(ctx context.Context, claimID string, from, to domain.ClaimStatus) (*domain.Claim, error)
}

type Workers interface {
	FindByWorkerID(ctx context.Context, workerID string) (*domain.Worker, error)
}

type Notifier interface {
	Notify(phone, text string)
}

type Service struct {
	repo     Repo
	workers  Workers
	notifier Notifier
}

func New(repo Repo, workers Workers, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		workers:  workers,
		notifier: notifier,
	}
}

type CreateParams struct {
	WorkerID   string
	EmployerID string
	Amount     string
	Message    string
	ScheduleID *string
}

func (s *Service) Create(ctx context.Context, p CreateParams) (*domain.Claim, error) {
	amount, err := domain.ParseAmount("amount", p.Amount)
	if err != nil {
		return nil, err
	}
	if p.WorkerID == p.EmployerID {
		return nil, domain.NewValidationError("employer_id", "must differ from the worker")
	}

	if _, err := s.worker(ctx, p.WorkerID); err != nil {
		return nil, err
	}
	employer, err := s.worker(ctx, p.EmployerID)
	if err != nil {
		return nil, err
	}

	claim, err := s.repo.Create(ctx, &domain.Claim{
		ClaimID:    domain.NewID(domain.ClaimPrefix),
		ScheduleID: p.ScheduleID,
		WorkerID:   p.WorkerID,
		EmployerID: p.EmployerID,
		Amount:     domain.FormatAmount(amount),
		Message:    p.Message,
		Status:     domain.ClaimPending,
	})
	if err != nil {
		zap.L().Error("failed to create claim", zap.Error(err))
		return nil, err
	}

	s.notifier.Notify(employer.Phone, fmt.Sprintf("Payment request %s from %s for %s XLM.", claim.ClaimID, claim.WorkerID, claim.Amount))
	return claim, nil
}

func (s *Service) worker(ctx context.Context, id string) (*domain.Worker, error) {
	w, err := s.workers.FindByWorkerID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.NewNotFoundError("worker", id)
	}
	return w, nil
}

func (s *Service) Get(ctx context.Context, claimID string) (*domain.Claim, error) {
	claim, err := s.repo.GetByID(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, domain.NewNotFoundError("claim", claimID)
	}
	return claim, nil
}

func (s *Service) ListForEmployer(ctx context.Context, employerID string) ([]domain.Claim, error) {
	return s.repo.ListForEmployer(ctx, employerID)
}

func (s *Service) ListForWorker(ctx context.Context, workerID string) ([]domain.Claim, error) {
	return s.repo.ListForWorker(ctx, workerID)
}

// UpdateStatus approves or rejects a pending claim.
func (s *Service) UpdateStatus(ctx context.Context, claimID string, status domain.ClaimStatus) (*domain.Claim, error) {
	if status != domain.ClaimApproved && status != domain.ClaimRejected {
		return nil, domain.NewValidationError("status", "must be approved or rejected")
	}
	claim, err := s.Get(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != domain.ClaimPending {
		return nil, ErrNotPending
	}

	updated, err := s.repo.TransitionStatus(ctx, claimID, domain.ClaimPending, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotPending
	}
	zap.L().Info("claim reviewed", zap.String("claim_id", claimID), zap.String("status", string(status)))

	if w, err := s.workers.FindByWorkerID(ctx, updated.WorkerID); err == nil && w != nil {
		s.notifier.Notify(w.Phone, fmt.Sprintf("Your payment request %s was %s.", claimID, status))
	}
	return updated, nil
}

func (s *Service) transition(ctx context.Context, claimID string, from, to domain.ClaimStatus, conflict error) (*domain.Claim, error) {
	if _, err := s.Get(ctx, claimID); err != nil {
		return nil, err
	}
	updated, err := s.repo.TransitionStatus(ctx, claimID, from, to)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, conflict
	}
	zap.L().Info("claim payment status changed",
		zap.String("claim_id", claimID),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return updated, nil
}

// BeginPayment moves an approved claim to paying. Of any number of concurrent callers exactly one
// wins, the rest get ErrNotApproved.
func (s *Service) BeginPayment(ctx context.Context, claimID string) (*domain.Claim, error) {
	return s.transition(ctx, claimID, domain.ClaimApproved, domain.ClaimPaying, ErrNotApproved)
}

// AbortPayment returns a paying claim to approved after a payment that definitely did not happen.
func (s *Service) AbortPayment(ctx context.Context, claimID string) (*domain.Claim, error) {
	return s.transition(ctx, claimID, domain.ClaimPaying, domain.ClaimApproved, ErrNotPaying)
}

// MarkPaid records that the payment started by BeginPayment landed.
func (s *Service) MarkPaid(ctx context.Context, claimID string) (*domain.Claim, error) {
	return s.transition(ctx, claimID, domain.ClaimPaying, domain.ClaimPaid, ErrNotPaying)
}
