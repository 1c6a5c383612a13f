package accountservice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/pkg/validate"
	"github.com/stellar/go/keypair"
	"go.uber.org/zap"
)

type Repo interface {
	FindByWorkerID(ctx context.Context, workerID string) (*domain.Worker, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Worker, error)
	FindByPublicKey(ctx context.Context, key string) (*domain.Worker, error)
	Create(ctx context.Context, w *domain.Worker, encryptedSecret string) (*domain.Worker, error)
}

type Vault interface {
	Encrypt(plaintext string) (string, error)
}

type Ledger interface {
	CreateAccount(ctx context.Context, funder *keypair.Full, dest, startingBalance string) (*domain.SubmitResult, error)
}

type Notifier interface {
	Notify(phone, text string)
}

type Service struct {
	repo            Repo
	vault           Vault
	ledger          Ledger
	notifier        Notifier
	funder          *keypair.Full
	startingBalance string
}

// New builds the registry. A nil funder leaves new accounts unfunded until their first incoming payment.
func New(repo Repo, vault Vault, ledger Ledger, notifier Notifier, funder *keypair.Full, startingBalance string) *Service {
	return &Service{
		repo:            repo,
		vault:           vault,
		ledger:          ledger,
		notifier:        notifier,
		funder:          funder,
		startingBalance: startingBalance,
	}
}

// Resolve maps a worker id, a ledger public key or a phone number to a public key.
// The worker is nil for a key that no one registered.
func (s *Service) Resolve(ctx context.Context, identifier string) (string, *domain.Worker, error) {
	id := strings.TrimSpace(identifier)
	switch {
	case id == "":
		return "", nil, domain.NewValidationError("identifier", "is required")

	case strings.HasPrefix(strings.ToUpper(id), domain.WorkerPrefix):
		workerID := strings.ToUpper(id)
		w, err := s.repo.FindByWorkerID(ctx, workerID)
		if err != nil {
			return "", nil, err
		}
		if w == nil {
			return "", nil, domain.NewNotFoundError("worker", workerID)
		}
		return w.PublicKey, w, nil

	case validate.IsPublicKey(id):
		w, err := s.repo.FindByPublicKey(ctx, id)
		if err != nil {
			return "", nil, err
		}
		return id, w, nil
	}

	phone, ok := validate.NormalizePhone(id)
	if !ok {
		return "", nil, domain.NewValidationError("identifier", "is not a worker id, ledger key or phone number")
	}
	w, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return "", nil, err
	}
	if w == nil {
		return "", nil, domain.NewNotFoundError("worker", phone)
	}
	return w.PublicKey, w, nil
}

func (s *Service) Get(ctx context.Context, workerID string) (*domain.Worker, error) {
	w, err := s.repo.FindByWorkerID(ctx, strings.ToUpper(workerID))
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.NewNotFoundError("worker", workerID)
	}
	return w, nil
}

// CreateOrGet registers a worker with a fresh custodial keypair. A phone number that is already
// registered returns the existing worker unchanged with created=false.
func (s *Service) CreateOrGet(ctx context.Context, phone, name string, role domain.Role) (*domain.Worker, bool, error) {
	normalized, ok := validate.NormalizePhone(phone)
	if !ok {
		return nil, false, domain.NewValidationError("phone", "must be a Kenyan mobile number")
	}
	if role == "" {
		role = domain.RoleWorker
	}
	if !role.Valid() {
		return nil, false, domain.NewValidationError("role", "must be worker or employer")
	}

	existing, err := s.repo.FindByPhone(ctx, normalized)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	kp, err := keypair.Random()
	if err != nil {
		return nil, false, &domain.CryptoError{Op: "generate keypair", Err: err}
	}
	encrypted, err := s.vault.Encrypt(kp.Seed())
	if err != nil {
		return nil, false, err
	}

	w, err := s.repo.Create(ctx, &domain.Worker{
		WorkerID:  domain.NewID(domain.WorkerPrefix),
		Phone:     normalized,
		Name:      strings.TrimSpace(name),
		Role:      role,
		PublicKey: kp.Address(),
	}, encrypted)
	if errors.Is(err, domain.ErrConflict) {
		winner, ferr := s.repo.FindByPhone(ctx, normalized)
		if ferr == nil && winner != nil {
			return winner, false, nil
		}
	}
	if err != nil {
		zap.L().Error("failed to create worker", zap.Error(err))
		return nil, false, err
	}

	s.fund(ctx, w.PublicKey)
	s.notifier.Notify(w.Phone, fmt.Sprintf("Welcome to PayTrace! Your worker ID is %s.", w.WorkerID))
	zap.L().Info("worker registered", zap.String("worker_id", w.WorkerID), zap.String("role", string(w.Role)))
	return w, true, nil
}

func (s *Service) fund(ctx context.Context, key string) {
	if s.funder == nil {
		zap.L().Warn("platform account not configured, new account left unfunded", zap.String("public_key", key))
		return
	}
	res, err := s.ledger.CreateAccount(ctx, s.funder, key, s.startingBalance)
	if err != nil {
		zap.L().Warn("funding new account failed", zap.String("public_key", key), zap.Error(err))
		return
	}
	zap.L().Info("new account funded", zap.String("public_key", key), zap.String("tx_hash", res.TxHash))
}
