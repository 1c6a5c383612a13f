package workerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const workerColumns = "id, worker_id, phone, name, role, stellar_public_key, created_at"

const (
	queryByWorkerID  = "SELECT " + workerColumns + " FROM workers WHERE worker_id = $1"
	queryByPhone     = "SELECT " + workerColumns + " FROM workers WHERE phone = $1"
	queryByPublicKey = "SELECT " + workerColumns + " FROM workers WHERE stellar_public_key = $1"
	queryByKeys      = "SELECT stellar_public_key, worker_id FROM workers WHERE stellar_public_key = ANY($1)"
	querySecret      = "SELECT stellar_secret_encrypted FROM workers WHERE worker_id = $1"
	queryInsert      = `
		INSERT INTO workers (worker_id, phone, name, role, stellar_public_key, stellar_secret_encrypted)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) findOne(ctx context.Context, query, arg string) (*domain.Worker, error) {
	var w domain.Worker
	err := repo.db.QueryRow(ctx, query, arg).Scan(&w.ID, &w.WorkerID, &w.Phone, &w.Name, &w.Role, &w.PublicKey, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find worker", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (repo *Repository) FindByWorkerID(ctx context.Context, workerID string) (*domain.Worker, error) {
	return repo.findOne(ctx, queryByWorkerID, workerID)
}

func (repo *Repository) FindByPhone(ctx context.Context, phone string) (*domain.Worker, error) {
	return repo.findOne(ctx, queryByPhone, phone)
}

func (repo *Repository) FindByPublicKey(ctx context.Context, key string) (*domain.Worker, error) {
	return repo.findOne(ctx, queryByPublicKey, key)
}

// FindByPublicKeys maps each registered key among keys to its worker id. Unknown keys are absent.
func (repo *Repository) FindByPublicKeys(ctx context.Context, keys []string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}
	rows, err := repo.db.Query(ctx, queryByKeys, keys)
	if err != nil {
		zap.L().Error("can't look up workers by key", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, workerID string
		if err := rows.Scan(&key, &workerID); err != nil {
			zap.L().Error("failed to scan worker key", zap.Error(err))
			return nil, err
		}
		result[key] = workerID
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the worker together with its encrypted secret, the only time the secret is written.
func (repo *Repository) Create(ctx context.Context, w *domain.Worker, encryptedSecret string) (*domain.Worker, error) {
	err := repo.db.QueryRow(ctx, queryInsert, w.WorkerID, w.Phone, w.Name, w.Role, w.PublicKey, encryptedSecret).
		Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("worker with phone %s: %w", w.Phone, domain.ErrConflict)
		}
		zap.L().Error("can't save worker", zap.String("worker_id", w.WorkerID), zap.Error(err))
		return nil, err
	}
	return w, nil
}

// EncryptedSecret is the single read path for the stored ciphertext.
func (repo *Repository) EncryptedSecret(ctx context.Context, workerID string) (string, error) {
	var secret string
	err := repo.db.QueryRow(ctx, querySecret, workerID).Scan(&secret)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewNotFoundError("worker", workerID)
		}
		zap.L().Error("can't load worker secret", zap.String("worker_id", workerID), zap.Error(err))
		return "", err
	}
	return secret, nil
}
