package paymentservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stellar/go/keypair"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
	StatsWindow         = 200
	maxMemoBytes        = 28
)

var errKeyMismatch = errors.New("decrypted seed does not match the stored public key")

type Registry interface {
	Resolve(ctx context.Context, identifier string) (string, *domain.Worker, error)
}

type SecretRepo interface {
	EncryptedSecret(ctx context.Context, workerID string) (string, error)
	FindByPublicKeys(ctx context.Context, keys []string) (map[string]string, error)
}

type Vault interface {
	Decrypt(ciphertext string) (string, error)
}

type Ledger interface {
	TransferTracked(ctx context.Context, signer *keypair.Full, dest, amount, memo string, before domain.BeforeSubmit) (*domain.SubmitResult, error)
	Payments(ctx context.Context, key string, limit int, cursor string) (*domain.PaymentPage, error)
	ExplorerURL(hash string) string
}

type Service struct {
	registry Registry
	secrets  SecretRepo
	vault    Vault
	ledger   Ledger
}

func New(registry Registry, secrets SecretRepo, vault Vault, ledger Ledger) *Service {
	return &Service{
		registry: registry,
		secrets:  secrets,
		vault:    vault,
		ledger:   ledger,
	}
}

// Send moves amount from a registered worker to any identifier the registry can resolve.
func (s *Service) Send(ctx context.Context, from, to, amount, memo string) (*domain.PaymentResult, error) {
	return s.SendTracked(ctx, from, to, amount, memo, nil)
}

// SendTracked is Send with before handed the transaction hash once it is signed and before it is
// submitted. Callers use it to persist the hash so an interrupted payment can be reconciled.
func (s *Service) SendTracked(ctx context.Context, from, to, amount, memo string, before domain.BeforeSubmit) (*domain.PaymentResult, error) {
	value, err := domain.ParseAmount("amount", amount)
	if err != nil {
		return nil, err
	}
	if len(memo) > maxMemoBytes {
		return nil, domain.NewValidationError("memo", "must be at most 28 bytes")
	}

	fromKey, sender, err := s.registry.Resolve(ctx, from)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, domain.NewNotFoundError("worker", from)
	}
	toKey, recipient, err := s.registry.Resolve(ctx, to)
	if err != nil {
		return nil, err
	}
	if fromKey == toKey {
		return nil, domain.NewValidationError("to", "must differ from the sender")
	}

	signer, err := s.signer(ctx, sender)
	if err != nil {
		return nil, err
	}

	res, err := s.ledger.TransferTracked(ctx, signer, toKey, domain.FormatAmount(value), memo, before)
	if err != nil {
		zap.L().Warn("payment failed", zap.String("from", sender.WorkerID), zap.String("to", toKey), zap.Error(err))
		return nil, err
	}
	if !res.Successful {
		return nil, &domain.LedgerError{Op: "payment", Key: fromKey, Kind: domain.ErrSubmissionRejected, TxHash: res.TxHash}
	}

	result := &domain.PaymentResult{
		Successful:   true,
		TxHash:       res.TxHash,
		ExplorerURL:  s.ledger.ExplorerURL(res.TxHash),
		FromKey:      fromKey,
		ToKey:        toKey,
		FromWorkerID: sender.WorkerID,
	}
	if recipient != nil {
		result.ToWorkerID = recipient.WorkerID
	}
	zap.L().Info("payment sent",
		zap.String("from", sender.WorkerID),
		zap.String("to", toKey),
		zap.String("amount", domain.FormatAmount(value)),
		zap.String("tx_hash", res.TxHash),
	)
	return result, nil
}

func (s *Service) signer(ctx context.Context, w *domain.Worker) (*keypair.Full, error) {
	sealed, err := s.secrets.EncryptedSecret(ctx, w.WorkerID)
	if err != nil {
		return nil, err
	}
	seed, err := s.vault.Decrypt(sealed)
	if err != nil {
		return nil, err
	}
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, &domain.CryptoError{Op: "parse seed", Err: err}
	}
	if kp.Address() != w.PublicKey {
		zap.L().Error("custodial key mismatch", zap.String("worker_id", w.WorkerID))
		return nil, &domain.CryptoError{Op: "verify key", Err: errKeyMismatch}
	}
	return kp, nil
}

// History returns one page of payments with counterparties annotated by worker id.
func (s *Service) History(ctx context.Context, identifier string, limit int, cursor string) (*domain.PaymentPage, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, domain.NewValidationError("limit", "must be between 1 and 200")
	}
	key, _, err := s.registry.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	page, err := s.ledger.Payments(ctx, key, limit, cursor)
	if err != nil {
		return nil, err
	}
	if err := s.annotate(ctx, page.Records); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *Service) annotate(ctx context.Context, records []domain.PaymentRecord) error {
	if len(records) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(records)*2)
	keys := make([]string, 0, len(records)*2)
	for _, r := range records {
		for _, k := range []string{r.From, r.To} {
			if _, ok := seen[k]; ok || k == "" {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}

	ids, err := s.secrets.FindByPublicKeys(ctx, keys)
	if err != nil {
		return err
	}
	for i := range records {
		records[i].FromWorkerID = ids[records[i].From]
		records[i].ToWorkerID = ids[records[i].To]
	}
	return nil
}

// Stats aggregates the most recent StatsWindow records. Older history is not counted.
func (s *Service) Stats(ctx context.Context, identifier string) (*domain.PaymentStats, error) {
	key, _, err := s.registry.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}
	page, err := s.ledger.Payments(ctx, key, StatsWindow, "")
	if err != nil {
		return nil, err
	}

	received, sent := decimal.Zero, decimal.Zero
	senders := map[string]struct{}{}
	recipients := map[string]struct{}{}
	counterparties := map[string]struct{}{}
	stats := &domain.PaymentStats{PublicKey: key, WindowSize: len(page.Records)}

	for _, r := range page.Records {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			zap.L().Warn("skip payment with unreadable amount", zap.String("id", r.ID), zap.String("amount", r.Amount))
			continue
		}
		if r.To == key {
			received = received.Add(amount)
			stats.ReceivedCount++
			senders[r.From] = struct{}{}
			counterparties[r.From] = struct{}{}
		} else {
			sent = sent.Add(amount)
			stats.SentCount++
			recipients[r.To] = struct{}{}
			counterparties[r.To] = struct{}{}
		}
	}

	stats.TotalReceived = domain.FormatAmount(received)
	stats.TotalSent = domain.FormatAmount(sent)
	stats.UniqueSenders = len(senders)
	stats.UniqueRecipients = len(recipients)
	stats.UniqueCounterparties = len(counterparties)
	return stats, nil
}
