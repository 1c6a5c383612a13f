package claimrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const claimColumns = "id, claim_id, schedule_id, worker_id, employer_id, amount, message, status, created_at, updated_at"

const (
	queryInsert = `
		INSERT INTO claims (claim_id, schedule_id, worker_id, employer_id, amount, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	queryByID        = "SELECT " + claimColumns + " FROM claims WHERE claim_id = $1"
	queryForEmployer = "SELECT " + claimColumns + " FROM claims WHERE employer_id = $1 ORDER BY created_at DESC"
	queryForWorker   = "SELECT " + claimColumns + " FROM claims WHERE worker_id = $1 ORDER BY created_at DESC"
	queryTransition  = "UPDATE claims SET status = $3, updated_at = now() WHERE claim_id = $1 AND status = $2 RETURNING " + claimColumns
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Claim, error) {
	var c domain.Claim
	err := row.Scan(&c.ID, &c.ClaimID, &c.ScheduleID, &c.WorkerID, &c.EmployerID, &c.Amount, &c.Message,
		&c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Claim) (*domain.Claim, error) {
	err := r.db.QueryRow(ctx, queryInsert, c.ClaimID, c.ScheduleID, c.WorkerID, c.EmployerID, c.Amount, c.Message, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save claim", zap.String("claim_id", c.ClaimID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) GetByID(ctx context.Context, claimID string) (*domain.Claim, error) {
	c, err := scan(r.db.QueryRow(ctx, queryByID, claimID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find claim", zap.String("claim_id", claimID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *Repository) list(ctx context.Context, query, id string) ([]domain.Claim, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to list claims", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	claims := []domain.Claim{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			zap.L().Error("failed to scan claim", zap.Error(err))
			return nil, err
		}
		claims = append(claims, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *Repository) ListForEmployer(ctx context.Context, employerID string) ([]domain.Claim, error) {
	return r.list(ctx, queryForEmployer, employerID)
}

func (r *Repository) ListForWorker(ctx context.Context, workerID string) ([]domain.Claim, error) {
	return r.list(ctx, queryForWorker, workerID)
}

// TransitionStatus moves a claim from one status to another. It returns nil when the claim
// does not exist or is no longer in status from.
func (r *Repository) TransitionStatus(ctx context.Context, claimID string, from, to domain.ClaimStatus) (*domain.Claim, error) {
	c, err := scan(r.db.QueryRow(ctx, queryTransition, claimID, from, to))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update claim status", zap.String("claim_id", claimID), zap.Error(err))
		return nil, err
	}
	return c, nil
}
