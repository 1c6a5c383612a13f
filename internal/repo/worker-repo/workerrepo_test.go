package workerrepo

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
)

const key = "GBRPYHIL2CI3FNQ4BXLFMNDLFJUNPU2HY3ZMFSHONUCEOASW7QC7OX2H"

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func workerRows(created time.Time) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "worker_id", "phone", "name", "role", "stellar_public_key", "created_at"}).
		AddRow(1, "NW-0A1B2C3D", "254700000001", "Amina", domain.RoleEmployer, key, created)
}

func TestRepository_Find(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	expected := &domain.Worker{
		ID:        1,
		WorkerID:  "NW-0A1B2C3D",
		Phone:     "254700000001",
		Name:      "Amina",
		Role:      domain.RoleEmployer,
		PublicKey: key,
		CreatedAt: created,
	}

	tests := []struct {
		name      string
		mockSetup func()
		call      func() (*domain.Worker, error)
		expectErr bool
		result    *domain.Worker
	}{
		{
			name: "by worker id",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByWorkerID)).WithArgs("NW-0A1B2C3D").WillReturnRows(workerRows(created))
			},
			call:   func() (*domain.Worker, error) { return repo.FindByWorkerID(context.Background(), "NW-0A1B2C3D") },
			result: expected,
		},
		{
			name: "by phone",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByPhone)).WithArgs("254700000001").WillReturnRows(workerRows(created))
			},
			call:   func() (*domain.Worker, error) { return repo.FindByPhone(context.Background(), "254700000001") },
			result: expected,
		},
		{
			name: "by public key",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByPublicKey)).WithArgs(key).WillReturnRows(workerRows(created))
			},
			call:   func() (*domain.Worker, error) { return repo.FindByPublicKey(context.Background(), key) },
			result: expected,
		},
		{
			name: "absent",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByPhone)).WithArgs("254700000009").WillReturnError(pgx.ErrNoRows)
			},
			call:   func() (*domain.Worker, error) { return repo.FindByPhone(context.Background(), "254700000009") },
			result: nil,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryByWorkerID)).WithArgs("NW-0A1B2C3D").WillReturnError(errors.New("database error"))
			},
			call:      func() (*domain.Worker, error) { return repo.FindByWorkerID(context.Background(), "NW-0A1B2C3D") },
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := tt.call()
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByPublicKeys(t *testing.T) {
	repo, mock := NewMock(t)
	other := "GCEZWKCA5VLDNRLN3RPRJMRZOX3Z6G5CHCGSNFHEYVXM3XOJMDS674JZ"

	t.Run("empty input skips the query", func(t *testing.T) {
		result, err := repo.FindByPublicKeys(context.Background(), nil)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("only registered keys are returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(queryByKeys)).
			WithArgs([]string{key, other}).
			WillReturnRows(pgxmock.NewRows([]string{"stellar_public_key", "worker_id"}).AddRow(key, "NW-0A1B2C3D"))

		result, err := repo.FindByPublicKeys(context.Background(), []string{key, other})
		assert.NoError(t, err)
		assert.Equal(t, map[string]string{key: "NW-0A1B2C3D"}, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(queryByKeys)).WithArgs([]string{key}).WillReturnError(errors.New("boom"))
		_, err := repo.FindByPublicKeys(context.Background(), []string{key})
		assert.Error(t, err)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "inserted",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryInsert)).
					WithArgs("NW-0A1B2C3D", "254700000001", "Amina", domain.RoleWorker, key, "ciphertext").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, created))
			},
		},
		{
			name: "phone already registered",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryInsert)).
					WithArgs("NW-0A1B2C3D", "254700000001", "Amina", domain.RoleWorker, key, "ciphertext").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w := &domain.Worker{WorkerID: "NW-0A1B2C3D", Phone: "254700000001", Name: "Amina", Role: domain.RoleWorker, PublicKey: key}
			result, err := repo.Create(context.Background(), w, "ciphertext")
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 7, result.ID)
			assert.Equal(t, created, result.CreatedAt)
		})
	}
}

func TestRepository_EncryptedSecret(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(querySecret)).WithArgs("NW-0A1B2C3D").
		WillReturnRows(pgxmock.NewRows([]string{"stellar_secret_encrypted"}).AddRow("ciphertext"))
	secret, err := repo.EncryptedSecret(context.Background(), "NW-0A1B2C3D")
	assert.NoError(t, err)
	assert.Equal(t, "ciphertext", secret)

	mock.ExpectQuery(regexp.QuoteMeta(querySecret)).WithArgs("NW-FFFFFFFF").WillReturnError(pgx.ErrNoRows)
	_, err = repo.EncryptedSecret(context.Background(), "NW-FFFFFFFF")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
