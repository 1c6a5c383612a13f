package reviewrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const reviewColumns = "id, review_id, reviewer_id, reviewee_id, reviewer_role, rating, comment, schedule_id, " +
	"stellar_tx_hash, explorer_url, nft_asset_code, document_cid, created_at"

const (
	queryInsert = `
		INSERT INTO reviews (review_id, reviewer_id, reviewee_id, reviewer_role, rating, comment, schedule_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	queryUpdateNFT = `
		UPDATE reviews
		SET stellar_tx_hash = $2, explorer_url = $3, nft_asset_code = $4, document_cid = $5
		WHERE review_id = $1
	`
	queryByID    = "SELECT " + reviewColumns + " FROM reviews WHERE review_id = $1"
	queryFor     = "SELECT " + reviewColumns + " FROM reviews WHERE reviewee_id = $1 ORDER BY created_at DESC"
	queryBy      = "SELECT " + reviewColumns + " FROM reviews WHERE reviewer_id = $1 ORDER BY created_at DESC"
	queryAverage = "SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*) FROM reviews WHERE reviewee_id = $1"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scan(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review
	err := row.Scan(&rv.ID, &rv.ReviewID, &rv.ReviewerID, &rv.RevieweeID, &rv.ReviewerRole, &rv.Rating, &rv.Comment,
		&rv.ScheduleID, &rv.TxHash, &rv.ExplorerURL, &rv.AssetCode, &rv.DocumentCID, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Create stores a review. A second review of the same relationship in the same direction is ErrConflict.
func (r *Repository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	err := r.db.QueryRow(ctx, queryInsert, rv.ReviewID, rv.ReviewerID, rv.RevieweeID, rv.ReviewerRole, rv.Rating,
		rv.Comment, rv.ScheduleID).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, fmt.Errorf("review of %s by %s: %w", rv.RevieweeID, rv.ReviewerID, domain.ErrConflict)
		}
		zap.L().Error("can't save review", zap.String("review_id", rv.ReviewID), zap.Error(err))
		return nil, err
	}
	return rv, nil
}

func (r *Repository) UpdateNFT(ctx context.Context, reviewID, txHash, explorerURL, assetCode, documentCID string) error {
	tag, err := r.db.Exec(ctx, queryUpdateNFT, reviewID, txHash, explorerURL, assetCode, documentCID)
	if err != nil {
		zap.L().Error("can't attach certificate to review", zap.String("review_id", reviewID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("review", reviewID)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	rv, err := scan(r.db.QueryRow(ctx, queryByID, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find review", zap.String("review_id", reviewID), zap.Error(err))
		return nil, err
	}
	return rv, nil
}

func (r *Repository) list(ctx context.Context, query, id string) ([]domain.Review, error) {
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to list reviews", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		rv, err := scan(rows)
		if err != nil {
			zap.L().Error("failed to scan review", zap.Error(err))
			return nil, err
		}
		reviews = append(reviews, *rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *Repository) ListFor(ctx context.Context, revieweeID string) ([]domain.Review, error) {
	return r.list(ctx, queryFor, revieweeID)
}

func (r *Repository) ListBy(ctx context.Context, reviewerID string) ([]domain.Review, error) {
	return r.list(ctx, queryBy, reviewerID)
}

func (r *Repository) AverageRating(ctx context.Context, workerID string) (float64, int, error) {
	var (
		avg   float64
		count int
	)
	if err := r.db.QueryRow(ctx, queryAverage, workerID).Scan(&avg, &count); err != nil {
		zap.L().Error("can't compute rating", zap.String("worker_id", workerID), zap.Error(err))
		return 0, 0, err
	}
	return avg, count, nil
}
