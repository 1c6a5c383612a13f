package claimrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 2, 14, 8, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func claimRows(status domain.ClaimStatus) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "claim_id", "schedule_id", "worker_id", "employer_id", "amount", "message",
		"status", "created_at", "updated_at"}).
		AddRow(1, "CL-00000001", (*string)(nil), "NW-WORKER1", "NW-EMPLOYER", "200", "fuel", status, created, created)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	scheduleID := "SP-00000001"
	c := &domain.Claim{
		ClaimID:    "CL-00000001",
		ScheduleID: &scheduleID,
		WorkerID:   "NW-WORKER1",
		EmployerID: "NW-EMPLOYER",
		Amount:     "200",
		Message:    "fuel",
		Status:     domain.ClaimPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(queryInsert)).
		WithArgs("CL-00000001", &scheduleID, "NW-WORKER1", "NW-EMPLOYER", "200", "fuel", domain.ClaimPending).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(4, created, created))

	result, err := repo.Create(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, 4, result.ID)
	assert.Equal(t, created, result.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryByID)).WithArgs("CL-00000001").WillReturnRows(claimRows(domain.ClaimPending))
	c, err := repo.GetByID(context.Background(), "CL-00000001")
	require.NoError(t, err)
	assert.Equal(t, &domain.Claim{
		ID:         1,
		ClaimID:    "CL-00000001",
		WorkerID:   "NW-WORKER1",
		EmployerID: "NW-EMPLOYER",
		Amount:     "200",
		Message:    "fuel",
		Status:     domain.ClaimPending,
		CreatedAt:  created,
		UpdatedAt:  created,
	}, c)

	mock.ExpectQuery(regexp.QuoteMeta(queryByID)).WithArgs("CL-FFFFFFFF").WillReturnError(pgx.ErrNoRows)
	c, err = repo.GetByID(context.Background(), "CL-FFFFFFFF")
	assert.NoError(t, err)
	assert.Nil(t, c)
}

func TestRepository_Lists(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryForEmployer)).WithArgs("NW-EMPLOYER").WillReturnRows(claimRows(domain.ClaimPending))
	list, err := repo.ListForEmployer(context.Background(), "NW-EMPLOYER")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	mock.ExpectQuery(regexp.QuoteMeta(queryForWorker)).WithArgs("NW-WORKER1").WillReturnError(errors.New("database error"))
	_, err = repo.ListForWorker(context.Background(), "NW-WORKER1")
	assert.Error(t, err)
}

func TestRepository_TransitionStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
		expectErr bool
	}{
		{
			name: "pending to approved",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryTransition)).
					WithArgs("CL-00000001", domain.ClaimPending, domain.ClaimApproved).
					WillReturnRows(claimRows(domain.ClaimApproved))
			},
		},
		{
			name: "no longer pending",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryTransition)).
					WithArgs("CL-00000001", domain.ClaimPending, domain.ClaimApproved).
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(queryTransition)).
					WithArgs("CL-00000001", domain.ClaimPending, domain.ClaimApproved).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			c, err := repo.TransitionStatus(context.Background(), "CL-00000001", domain.ClaimPending, domain.ClaimApproved)
			switch {
			case tt.expectErr:
				assert.Error(t, err)
			case tt.expectNil:
				assert.NoError(t, err)
				assert.Nil(t, c)
			default:
				assert.NoError(t, err)
				assert.Equal(t, domain.ClaimApproved, c.Status)
			}
		})
	}
}
