package transferrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const transferColumns = "id, transfer_id, direction, worker_id, phone, amount, amount_local, status, " +
	"burn_tx_hash, credit_tx_hash, external_id, provider, last_error, created_at, updated_at"

const (
	queryInsert = `
		INSERT INTO transfers (transfer_id, direction, worker_id, phone, amount, amount_local, status, provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	queryByID         = "SELECT " + transferColumns + " FROM transfers WHERE transfer_id = $1"
	queryByExternalID = "SELECT " + transferColumns + " FROM transfers WHERE external_id = $1"
	queryAdvance      = `
		UPDATE transfers
		SET status = $3,
		    burn_tx_hash = COALESCE($4, burn_tx_hash),
		    credit_tx_hash = COALESCE($5, credit_tx_hash),
		    external_id = COALESCE($6, external_id),
		    provider = COALESCE($7, provider),
		    last_error = COALESCE($8, last_error),
		    updated_at = now()
		WHERE transfer_id = $1 AND status = $2
		RETURNING ` + transferColumns
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Transfer, error) {
	var t domain.Transfer
	err := row.Scan(&t.ID, &t.TransferID, &t.Direction, &t.WorkerID, &t.Phone, &t.Amount, &t.AmountLocal, &t.Status,
		&t.BurnTxHash, &t.CreditTxHash, &t.ExternalID, &t.Provider, &t.LastError, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Create(ctx context.Context, t *domain.Transfer) (*domain.Transfer, error) {
	err := r.db.QueryRow(ctx, queryInsert, t.TransferID, t.Direction, t.WorkerID, t.Phone, t.Amount, t.AmountLocal,
		t.Status, t.Provider).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save transfer", zap.String("transfer_id", t.TransferID), zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) get(ctx context.Context, query, id string) (*domain.Transfer, error) {
	t, err := scan(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transfer", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) GetByID(ctx context.Context, transferID string) (*domain.Transfer, error) {
	return r.get(ctx, queryByID, transferID)
}

func (r *Repository) FindByExternalID(ctx context.Context, externalID string) (*domain.Transfer, error) {
	return r.get(ctx, queryByExternalID, externalID)
}

// Advance moves a transfer out of status from. It returns nil when the transfer is no longer
// in that status, which is how a concurrent mover loses the race.
func (r *Repository) Advance(ctx context.Context, transferID string, from domain.TransferStatus, upd domain.TransferUpdate) (*domain.Transfer, error) {
	t, err := scan(r.db.QueryRow(ctx, queryAdvance, transferID, from, upd.Status,
		upd.BurnTxHash, upd.CreditTxHash, upd.ExternalID, upd.Provider, upd.LastError))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't advance transfer",
			zap.String("transfer_id", transferID),
			zap.String("from", string(from)),
			zap.String("to", string(upd.Status)),
			zap.Error(err),
		)
		return nil, err
	}
	return t, nil
}
