// Package transferservice moves value between the ledger and the mobile-money rail.
//
// An off-ramp burns the worker's funds into the platform account first and pays out on the rail
// second. An on-ramp collects on the rail first and credits the worker from the platform account
// second. Every status move is a conditional update on the previous status, so a retried or
// concurrent call can never run a second leg twice.
package transferservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/pkg/validate"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"go.uber.org/zap"
)

var (
	ErrStateChanged    = fmt.Errorf("%w: transfer changed concurrently", domain.ErrConflict)
	ErrNotReconcilable = fmt.Errorf("%w: only unconfirmed or stalled burns can be reconciled", domain.ErrConflict)
	ErrTooEarly        = fmt.Errorf("%w: burn may still be in flight", domain.ErrConflict)
	ErrRailRefused     = errors.New("mobile-money provider refused the request")
)

type Repo interface {
	Create(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error)
	GetByID(ctx context.Context, transferID string) (*domain.Transfer, error)
	FindByExternalID(ctx context.Context, externalID string) (*domain.Transfer, error)
	Advance(ctx context.Context, transferID string, from domain.TransferStatus, upd domain.TransferUpdate) (*domain.Transfer, error)
}

type Registry interface {
	Resolve(ctx context.Context, identifier string) (string, *domain.Worker, error)
}

type Payer interface {
	SendTracked(ctx context.Context, from, to, amount, memo string, before domain.BeforeSubmit) (*domain.PaymentResult, error)
}

type Ledger interface {
	TransferTracked(ctx context.Context, signer *keypair.Full, dest, amount, memo string, before domain.BeforeSubmit) (*domain.SubmitResult, error)
	TransactionStatus(ctx context.Context, hash string) (*domain.SubmitResult, error)
}

type Rail interface {
	Payout(ctx context.Context, phone string, amount decimal.Decimal) (*domain.RailResult, error)
	Collect(ctx context.Context, phone string, amount decimal.Decimal) (*domain.RailResult, error)
}

type Notifier interface {
	Notify(phone, text string)
}

type Service struct {
	repo     Repo
	registry Registry
	payer    Payer
	ledger   Ledger
	rail     Rail
	notifier Notifier
	platform *keypair.Full
	rate     decimal.Decimal
	now      func() time.Time
}

// New wires the bridge. rate converts one ledger unit into local currency. A nil platform
// account disables both directions with ErrNotConfigured.
func New(repo Repo, registry Registry, payer Payer, ledger Ledger, rail Rail, notifier Notifier, platform *keypair.Full, rate decimal.Decimal) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		payer:    payer,
		ledger:   ledger,
		rail:     rail,
		notifier: notifier,
		platform: platform,
		rate:     rate,
		now:      time.Now,
	}
}

func (s *Service) Get(ctx context.Context, transferID string) (*domain.Transfer, error) {
	t, err := s.repo.GetByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewNotFoundError("transfer", transferID)
	}
	return t, nil
}

func (s *Service) start(ctx context.Context, identifier, phone, amount string, dir domain.Direction, status domain.TransferStatus) (*domain.Transfer, error) {
	value, err := domain.ParseAmount("amount", amount)
	if err != nil {
		return nil, err
	}
	if s.platform == nil {
		return nil, fmt.Errorf("%w: platform account", domain.ErrNotConfigured)
	}

	_, w, err := s.registry.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.NewNotFoundError("worker", identifier)
	}

	target := w.Phone
	if phone != "" {
		normalized, ok := validate.NormalizePhone(phone)
		if !ok {
			return nil, domain.NewValidationError("phone", "must be a Kenyan mobile number")
		}
		target = normalized
	}

	return s.repo.Create(ctx, &domain.Transfer{
		TransferID:  domain.NewID(domain.TransferPrefix),
		Direction:   dir,
		WorkerID:    w.WorkerID,
		Phone:       target,
		Amount:      domain.FormatAmount(value),
		AmountLocal: value.Mul(s.rate).Round(2).StringFixed(2),
		Status:      status,
	})
}

// advance moves t from one status to another. A transfer that already left from yields ErrStateChanged.
func (s *Service) advance(ctx context.Context, t *domain.Transfer, from domain.TransferStatus, upd domain.TransferUpdate) (*domain.Transfer, error) {
	next, err := s.repo.Advance(ctx, t.TransferID, from, upd)
	if err != nil {
		zap.L().Error("failed to record transfer status",
			zap.String("transfer_id", t.TransferID),
			zap.String("from", string(from)),
			zap.String("to", string(upd.Status)),
			zap.Error(err),
		)
		return t, err
	}
	if next == nil {
		return t, ErrStateChanged
	}
	zap.L().Info("transfer advanced",
		zap.String("transfer_id", t.TransferID),
		zap.String("from", string(from)),
		zap.String("to", string(upd.Status)),
	)
	return next, nil
}

// fail records a terminal status for t and returns cause, joined with the recording error if any.
func (s *Service) fail(ctx context.Context, t *domain.Transfer, from domain.TransferStatus, upd domain.TransferUpdate, cause error) (*domain.Transfer, error) {
	next, err := s.advance(ctx, t, from, upd)
	if err != nil {
		return next, errors.Join(cause, err)
	}
	return next, cause
}

// Withdraw burns amount from the worker and pays its local value out to phone,
// or to the worker's own phone when phone is empty.
// Once the transfer row exists it is returned alongside any error. From then on the legs run
// detached from ctx so a client hang-up cannot strand the transfer between statuses.
func (s *Service) Withdraw(ctx context.Context, identifier, phone, amount string) (*domain.Transfer, error) {
	t, err := s.start(ctx, identifier, phone, amount, domain.DirectionOffRamp, domain.TransferBurnSubmitted)
	if err != nil {
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)

	record := func(hash string) error {
		var err error
		t, err = s.advance(ctx, t, domain.TransferBurnSubmitted, domain.TransferUpdate{
			Status:     domain.TransferBurnSubmitted,
			BurnTxHash: ptr(hash),
		})
		return err
	}
	res, err := s.payer.SendTracked(ctx, t.WorkerID, s.platform.Address(), t.Amount, "offramp "+t.TransferID, record)
	if err != nil {
		upd := domain.TransferUpdate{Status: domain.TransferBurnFailed, LastError: ptr(err.Error())}
		if errors.Is(err, domain.ErrSubmissionTimeout) {
			upd.Status = domain.TransferBurnUnconfirmed
			var le *domain.LedgerError
			if errors.As(err, &le) && le.TxHash != "" {
				upd.BurnTxHash = ptr(le.TxHash)
			}
		}
		return s.fail(ctx, t, domain.TransferBurnSubmitted, upd, err)
	}

	t, err = s.advance(ctx, t, domain.TransferBurnSubmitted, domain.TransferUpdate{
		Status:     domain.TransferPayoutPending,
		BurnTxHash: ptr(res.TxHash),
	})
	if err != nil {
		return t, err
	}
	return s.payout(ctx, t)
}

// payout runs the rail leg of a transfer in TransferPayoutPending. It is only ever
// reached by the caller that moved the transfer into that status.
func (s *Service) payout(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error) {
	burn := deref(t.BurnTxHash)
	amount, err := decimal.NewFromString(t.AmountLocal)
	if err != nil {
		return t, fmt.Errorf("transfer %s has unreadable local amount: %w", t.TransferID, err)
	}

	res, err := s.rail.Payout(ctx, t.Phone, amount)
	if err == nil && (!res.Success || res.Status == domain.RailFailed) {
		err = fmt.Errorf("%w: %s", ErrRailRefused, res.Message)
	}
	if err != nil {
		upd := domain.TransferUpdate{Status: domain.TransferPayoutFailed, LastError: ptr(err.Error())}
		if res != nil && res.Provider != "" {
			upd.Provider = ptr(res.Provider)
		}
		zap.L().Error("payout failed after burn",
			zap.String("transfer_id", t.TransferID),
			zap.String("burn_tx_hash", burn),
			zap.Error(err),
		)
		s.notifier.Notify(t.Phone, fmt.Sprintf("Withdrawal %s is delayed. Support will contact you.", t.TransferID))
		return s.fail(ctx, t, domain.TransferPayoutPending, upd,
			&domain.PartialFailureError{TransferID: t.TransferID, Stage: "payout", FirstLegHash: burn, Err: err})
	}

	upd := domain.TransferUpdate{Status: domain.TransferPayoutPending, Provider: ptr(res.Provider)}
	if res.ExternalID != "" {
		upd.ExternalID = ptr(res.ExternalID)
	}
	if res.Status == domain.RailCompleted {
		upd.Status = domain.TransferCompleted
	}
	t, err = s.advance(ctx, t, domain.TransferPayoutPending, upd)
	if err != nil {
		return t, err
	}
	if t.Status == domain.TransferCompleted {
		s.notifier.Notify(t.Phone, fmt.Sprintf("You received KES %s. Ref %s.", t.AmountLocal, t.TransferID))
	}
	return t, nil
}

// ConfirmPayout applies the provider's verdict on a payout it accepted as pending.
// Repeated callbacks are no-ops.
func (s *Service) ConfirmPayout(ctx context.Context, externalID string, success bool) (*domain.Transfer, error) {
	ctx = context.WithoutCancel(ctx)
	t, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Direction != domain.DirectionOffRamp {
		return nil, domain.NewNotFoundError("transfer", externalID)
	}
	if t.Status != domain.TransferPayoutPending {
		return t, nil
	}

	if success {
		t, err = s.advance(ctx, t, domain.TransferPayoutPending, domain.TransferUpdate{Status: domain.TransferCompleted})
		if err == nil {
			s.notifier.Notify(t.Phone, fmt.Sprintf("You received KES %s. Ref %s.", t.AmountLocal, t.TransferID))
		}
	} else {
		t, err = s.advance(ctx, t, domain.TransferPayoutPending, domain.TransferUpdate{
			Status:    domain.TransferPayoutFailed,
			LastError: ptr("payout declined by the provider"),
		})
		if err == nil {
			zap.L().Error("payout declined after burn",
				zap.String("transfer_id", t.TransferID),
				zap.String("burn_tx_hash", deref(t.BurnTxHash)),
			)
			s.notifier.Notify(t.Phone, fmt.Sprintf("Withdrawal %s is delayed. Support will contact you.", t.TransferID))
		}
	}
	if errors.Is(err, ErrStateChanged) {
		return s.Get(ctx, t.TransferID)
	}
	return t, err
}

// Reconcile settles a burn whose outcome is unknown: one whose submission timed out, or one left in
// TransferBurnSubmitted for longer than domain.ReconcileGrace. A burn found on the ledger is paid
// out once. A burn missing after the grace period, or never signed at all, is marked failed.
func (s *Service) Reconcile(ctx context.Context, transferID string) (*domain.Transfer, error) {
	t, err := s.Get(ctx, transferID)
	if err != nil {
		return nil, err
	}
	stalled := t.Status == domain.TransferBurnSubmitted && s.now().Sub(t.UpdatedAt) >= domain.ReconcileGrace
	if t.Status != domain.TransferBurnUnconfirmed && !stalled {
		return t, ErrNotReconcilable
	}
	ctx = context.WithoutCancel(ctx)
	from := t.Status

	if t.BurnTxHash == nil {
		if stalled {
			return s.advance(ctx, t, from, domain.TransferUpdate{
				Status:    domain.TransferBurnFailed,
				LastError: ptr("burn was never submitted"),
			})
		}
		return t, domain.NewValidationError("transfer", "has no burn transaction to look up")
	}

	res, err := s.ledger.TransactionStatus(ctx, *t.BurnTxHash)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if s.now().Sub(t.UpdatedAt) < domain.ReconcileGrace {
			return t, ErrTooEarly
		}
		return s.advance(ctx, t, from, domain.TransferUpdate{
			Status:    domain.TransferBurnFailed,
			LastError: ptr("burn transaction never reached the ledger"),
		})
	case err != nil:
		return t, err
	case !res.Successful:
		return s.advance(ctx, t, from, domain.TransferUpdate{
			Status:    domain.TransferBurnFailed,
			LastError: ptr("burn transaction failed on the ledger"),
		})
	}

	t, err = s.advance(ctx, t, from, domain.TransferUpdate{Status: domain.TransferPayoutPending})
	if err != nil {
		return t, err
	}
	return s.payout(ctx, t)
}

// Deposit collects the local value of amount from phone and credits the worker once the
// collection completes. A pending collection waits for ConfirmDeposit.
func (s *Service) Deposit(ctx context.Context, identifier, phone, amount string) (*domain.Transfer, error) {
	t, err := s.start(ctx, identifier, phone, amount, domain.DirectionOnRamp, domain.TransferCollectPending)
	if err != nil {
		return nil, err
	}
	ctx = context.WithoutCancel(ctx)

	local, err := decimal.NewFromString(t.AmountLocal)
	if err != nil {
		err = fmt.Errorf("transfer %s has unreadable local amount: %w", t.TransferID, err)
		return s.fail(ctx, t, domain.TransferCollectPending, domain.TransferUpdate{
			Status:    domain.TransferCollectFailed,
			LastError: ptr(err.Error()),
		}, err)
	}
	res, err := s.rail.Collect(ctx, t.Phone, local)
	if err == nil && (!res.Success || res.Status == domain.RailFailed) {
		err = fmt.Errorf("%w: %s", ErrRailRefused, res.Message)
	}
	if err != nil {
		return s.fail(ctx, t, domain.TransferCollectPending, domain.TransferUpdate{
			Status:    domain.TransferCollectFailed,
			LastError: ptr(err.Error()),
		}, err)
	}

	upd := domain.TransferUpdate{Status: domain.TransferCollectPending, Provider: ptr(res.Provider)}
	if res.ExternalID != "" {
		upd.ExternalID = ptr(res.ExternalID)
	}
	t, err = s.advance(ctx, t, domain.TransferCollectPending, upd)
	if err != nil {
		return t, err
	}
	if res.Status != domain.RailCompleted {
		return t, nil
	}
	return s.credit(ctx, t)
}

// ConfirmDeposit applies the provider's verdict on a pending collection. Repeated callbacks are no-ops.
func (s *Service) ConfirmDeposit(ctx context.Context, externalID string, success bool) (*domain.Transfer, error) {
	ctx = context.WithoutCancel(ctx)
	t, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Direction != domain.DirectionOnRamp {
		return nil, domain.NewNotFoundError("transfer", externalID)
	}
	if t.Status != domain.TransferCollectPending {
		return t, nil
	}

	if !success {
		t, err = s.advance(ctx, t, domain.TransferCollectPending, domain.TransferUpdate{
			Status:    domain.TransferCollectFailed,
			LastError: ptr("collection declined by the provider"),
		})
	} else {
		t, err = s.credit(ctx, t)
	}
	if errors.Is(err, ErrStateChanged) {
		return s.Get(ctx, t.TransferID)
	}
	return t, err
}

func (s *Service) credit(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error) {
	t, err := s.advance(ctx, t, domain.TransferCollectPending, domain.TransferUpdate{Status: domain.TransferCreditPending})
	if err != nil {
		return t, err
	}
	collected := deref(t.ExternalID)

	record := func(hash string) error {
		var err error
		t, err = s.advance(ctx, t, domain.TransferCreditPending, domain.TransferUpdate{
			Status:       domain.TransferCreditPending,
			CreditTxHash: ptr(hash),
		})
		return err
	}
	key, _, err := s.registry.Resolve(ctx, t.WorkerID)
	if err == nil {
		var res *domain.SubmitResult
		res, err = s.ledger.TransferTracked(ctx, s.platform, key, t.Amount, "onramp "+t.TransferID, record)
		if err == nil && !res.Successful {
			err = &domain.LedgerError{Op: "credit", Key: key, Kind: domain.ErrSubmissionRejected, TxHash: res.TxHash}
		}
		if err == nil {
			t, err = s.advance(ctx, t, domain.TransferCreditPending, domain.TransferUpdate{
				Status:       domain.TransferCompleted,
				CreditTxHash: ptr(res.TxHash),
			})
			if err == nil {
				s.notifier.Notify(t.Phone, fmt.Sprintf("Deposit %s of %s XLM completed.", t.TransferID, t.Amount))
			}
			return t, err
		}
	}

	zap.L().Error("credit failed after collection",
		zap.String("transfer_id", t.TransferID),
		zap.String("external_id", collected),
		zap.Error(err),
	)
	return s.fail(ctx, t, domain.TransferCreditPending, domain.TransferUpdate{
		Status:    domain.TransferCreditFailed,
		LastError: ptr(err.Error()),
	}, &domain.PartialFailureError{TransferID: t.TransferID, Stage: "credit", FirstLegHash: collected, Err: err})
}

func ptr(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
