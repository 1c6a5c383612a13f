package repo

import (
	"testing"

	"github.com/GlebRadaev/paytrace/internal/pg"
	claimrepo "github.com/GlebRadaev/paytrace/internal/repo/claim-repo"
	reviewrepo "github.com/GlebRadaev/paytrace/internal/repo/review-repo"
	schedulerepo "github.com/GlebRadaev/paytrace/internal/repo/schedule-repo"
	transferrepo "github.com/GlebRadaev/paytrace/internal/repo/transfer-repo"
	workerrepo "github.com/GlebRadaev/paytrace/internal/repo/worker-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.WorkerRepo)
	assert.NotNil(t, repo.ScheduleRepo)
	assert.NotNil(t, repo.ClaimRepo)
	assert.NotNil(t, repo.ReviewRepo)
	assert.NotNil(t, repo.TransferRepo)
	assert.NotNil(t, repo.TxManager)

	assert.IsType(t, &workerrepo.Repository{}, repo.WorkerRepo)
	assert.IsType(t, &schedulerepo.Repository{}, repo.ScheduleRepo)
	assert.IsType(t, &claimrepo.Repository{}, repo.ClaimRepo)
	assert.IsType(t, &reviewrepo.Repository{}, repo.ReviewRepo)
	assert.IsType(t, &transferrepo.Repository{}, repo.TransferRepo)
	assert.IsType(t, &pg.MockTXManager{}, repo.TxManager)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
