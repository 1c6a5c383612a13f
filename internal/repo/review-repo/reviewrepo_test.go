package reviewrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func reviewRows() *pgxmock.Rows {
	code := "RVWABCDEF123"
	return pgxmock.NewRows([]string{"id", "review_id", "reviewer_id", "reviewee_id", "reviewer_role", "rating", "comment",
		"schedule_id", "stellar_tx_hash", "explorer_url", "nft_asset_code", "document_cid", "created_at"}).
		AddRow(1, "RV-00000001", "NW-EMPLOYER", "NW-WORKER1", domain.RoleEmployer, 5, "reliable",
			(*string)(nil), (*string)(nil), (*string)(nil), &code, (*string)(nil), created)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	newReview := func() *domain.Review {
		return &domain.Review{
			ReviewID:     "RV-00000001",
			ReviewerID:   "NW-EMPLOYER",
			RevieweeID:   "NW-WORKER1",
			ReviewerRole: domain.RoleEmployer,
			Rating:       5,
			Comment:      "reliable",
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "stored",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryInsert)).
					WithArgs("RV-00000001", "NW-EMPLOYER", "NW-WORKER1", domain.RoleEmployer, 5, "reliable", (*string)(nil)).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, created))
			},
		},
		{
			name: "duplicate relationship",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryInsert)).
					WithArgs("RV-00000001", "NW-EMPLOYER", "NW-WORKER1", domain.RoleEmployer, 5, "reliable", (*string)(nil)).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_relationship_unique"})
			},
			expectErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rv, err := repo.Create(context.Background(), newReview())
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, rv)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created, rv.CreatedAt)
		})
	}
}

func TestRepository_UpdateNFT(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta(queryUpdateNFT)).
		WithArgs("RV-00000001", "hash", "https://stellar.expert/explorer/testnet/tx/hash", "RVWABCDEF123", "bafy").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	err := repo.UpdateNFT(context.Background(), "RV-00000001", "hash", "https://stellar.expert/explorer/testnet/tx/hash", "RVWABCDEF123", "bafy")
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta(queryUpdateNFT)).
		WithArgs("RV-FFFFFFFF", "hash", "", "RVWABCDEF123", "").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	err = repo.UpdateNFT(context.Background(), "RV-FFFFFFFF", "hash", "", "RVWABCDEF123", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryFor)).WithArgs("NW-WORKER1").WillReturnRows(reviewRows())
	list, err := repo.ListFor(context.Background(), "NW-WORKER1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].Rating)
	require.NotNil(t, list[0].AssetCode)
	assert.Equal(t, "RVWABCDEF123", *list[0].AssetCode)
	assert.Nil(t, list[0].TxHash)

	mock.ExpectQuery(regexp.QuoteMeta(queryBy)).WithArgs("NW-EMPLOYER").WillReturnError(errors.New("database error"))
	_, err = repo.ListBy(context.Background(), "NW-EMPLOYER")
	assert.Error(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(queryByID)).WithArgs("RV-00000001").WillReturnError(pgx.ErrNoRows)
	rv, err := repo.GetByID(context.Background(), "RV-00000001")
	assert.NoError(t, err)
	assert.Nil(t, rv)
}

func TestRepository_AverageRating(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryAverage)).WithArgs("NW-WORKER1").
		WillReturnRows(pgxmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 2))
	avg, count, err := repo.AverageRating(context.Background(), "NW-WORKER1")
	require.NoError(t, err)
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, 2, count)
}
