package reviewservice

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/pkg/auth"
	"github.com/GlebRadaev/paytrace/pkg/pinning"
	"github.com/golang-jwt/jwt"
	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	now      = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cutoff   = now.AddDate(0, 0, -90)
	employer = &domain.Worker{WorkerID: "NW-0000000E", Phone: "254700000001", Role: domain.RoleEmployer, PublicKey: "GEMPLOYER"}
	worker   = &domain.Worker{WorkerID: "NW-0000000W", Phone: "254700000002", Role: domain.RoleWorker, PublicKey: "GWORKER"}
	peer     = &domain.Worker{WorkerID: "NW-0000000P", Phone: "254700000003", Role: domain.RoleWorker, PublicKey: "GPEER"}
)

type mocks struct {
	repo          *MockRepo
	relationships *MockRelationships
	workers       *MockWorkers
	minter        *MockMinter
	pinner        *MockPinner
	dispatcher    *MockDispatcher
	tokens        *MockTokens
	notifier      *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:          NewMockRepo(ctrl),
		relationships: NewMockRelationships(ctrl),
		workers:       NewMockWorkers(ctrl),
		minter:        NewMockMinter(ctrl),
		pinner:        NewMockPinner(ctrl),
		dispatcher:    NewMockDispatcher(ctrl),
		tokens:        NewMockTokens(ctrl),
		notifier:      NewMockNotifier(ctrl),
	}
	for _, w := range []*domain.Worker{employer, worker, peer} {
		m.workers.EXPECT().FindByWorkerID(gomock.Any(), w.WorkerID).Return(w, nil).AnyTimes()
	}
	m.workers.EXPECT().FindByWorkerID(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	service := New(m.repo, m.relationships, m.workers, m.minter, m.pinner, m.dispatcher, m.tokens, m.notifier,
		Config{EligibilityDays: 90, InviteBaseURL: "https://paytrace.example/review"})
	service.now = func() time.Time { return now }
	return service, m
}

// runInline executes dispatched tasks synchronously.
func (m *mocks) runInline() {
	m.dispatcher.EXPECT().Go(gomock.Any(), gomock.Any()).DoAndReturn(func(_ string, task func(context.Context) error) bool {
		_ = task(context.Background())
		return true
	})
}

func TestSubmit(t *testing.T) {
	rel := &domain.Relationship{ScheduleID: "SP-1", EmployerID: employer.WorkerID, WorkerID: worker.WorkerID, StartedAt: now.AddDate(0, 0, -120)}
	created := func(_ context.Context, rv *domain.Review) (*domain.Review, error) {
		rv.ID = 1
		rv.CreatedAt = now
		return rv, nil
	}

	tests := []struct {
		name          string
		params        SubmitParams
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:   "Review is stored and its certificate minted",
			params: SubmitParams{ReviewerID: employer.WorkerID, RevieweeID: worker.WorkerID, Rating: 5, Comment: " great "},
			prepareMock: func(m *mocks) {
				m.relationships.EXPECT().FindRelationship(gomock.Any(), employer.WorkerID, worker.WorkerID, (*string)(nil), cutoff).Return(rel, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				m.runInline()
				m.pinner.EXPECT().Pin(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, name string, data []byte) (string, error) {
					var doc map[string]any
					require.NoError(t, json.Unmarshal(data, &doc))
					assert.Equal(t, "great", doc["comment"])
					assert.Equal(t, "120 days", doc["duration"])
					return "bafycid", nil
				})
				m.minter.EXPECT().MintReviewCertificate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.CertificateRequest) (*domain.Certificate, error) {
						assert.Equal(t, worker.PublicKey, req.Reviewee)
						assert.Equal(t, domain.RoleEmployer, req.ReviewerRole)
						assert.Equal(t, domain.RoleWorker, req.RevieweeRole)
						assert.Equal(t, "bafycid", req.DocumentCID)
						return &domain.Certificate{AssetCode: "RVW123456789", TxHash: "mint", ExplorerURL: "url/mint"}, nil
					})
				m.repo.EXPECT().UpdateNFT(gomock.Any(), gomock.Any(), "mint", "url/mint", "RVW123456789", "bafycid").Return(nil)
			},
		},
		{
			name:   "Pinning disabled falls back to the review id",
			params: SubmitParams{ReviewerID: worker.WorkerID, RevieweeID: employer.WorkerID, Rating: 3},
			prepareMock: func(m *mocks) {
				m.relationships.EXPECT().FindRelationship(gomock.Any(), worker.WorkerID, employer.WorkerID, (*string)(nil), cutoff).Return(rel, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				m.runInline()
				m.pinner.EXPECT().Pin(gomock.Any(), gomock.Any(), gomock.Any()).Return("", pinning.ErrDisabled)
				m.minter.EXPECT().MintReviewCertificate(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req domain.CertificateRequest) (*domain.Certificate, error) {
						assert.Regexp(t, `^RV-[0-9A-F]{8}$`, req.DocumentCID)
						return &domain.Certificate{AssetCode: "RVW1", TxHash: "mint"}, nil
					})
				m.repo.EXPECT().UpdateNFT(gomock.Any(), gomock.Any(), "mint", "", "RVW1", gomock.Any()).Return(nil)
			},
		},
		{
			name:   "Minting failure does not fail the review",
			params: SubmitParams{ReviewerID: employer.WorkerID, RevieweeID: worker.WorkerID, Rating: 4},
			prepareMock: func(m *mocks) {
				m.relationships.EXPECT().FindRelationship(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(rel, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(created)
				m.runInline()
				m.pinner.EXPECT().Pin(gomock.Any(), gomock.Any(), gomock.Any()).Return("cid", nil)
				m.minter.EXPECT().MintReviewCertificate(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNotConfigured)
			},
		},
		{
			name:          "Rating out of range",
			params:        SubmitParams{ReviewerID: employer.WorkerID, RevieweeID: worker.WorkerID, Rating: 6},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Self review",
			params:        SubmitParams{ReviewerID: worker.WorkerID, RevieweeID: worker.WorkerID, Rating: 5},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Unknown reviewee",
			params:        SubmitParams{ReviewerID: employer.WorkerID, RevieweeID: "NW-FFFFFFFF", Rating: 5},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "Same role",
			params:        SubmitParams{ReviewerID: worker.WorkerID, RevieweeID: peer.WorkerID, Rating: 5},
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrNotEligible,
		},
		{
			name:   "Relationship too recent",
			params: SubmitParams{ReviewerID: employer.WorkerID, RevieweeID: worker.WorkerID, Rating: 5},
			prepareMock: func(m *mocks) {
				m.relationships.EXPECT().FindRelationship(gomock.Any(), employer.WorkerID, worker.WorkerID, (*string)(nil), cutoff).Return(nil, nil)
			},
			expectedError: domain.ErrNotEligible,
		},
		{
			name:   "Duplicate review",
			params: SubmitParams{ReviewerID: employer.WorkerID, RevieweeID: worker.WorkerID, Rating: 5},
			prepareMock: func(m *mocks) {
				m.relationships.EXPECT().FindRelationship(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(rel, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflict)
			},
			expectedError: domain.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			review, err := service.Submit(context.Background(), tt.params)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SP-1", *review.ScheduleID)
			assert.Equal(t, tt.params.Rating, review.Rating)
		})
	}
}

func TestEligible(t *testing.T) {
	service, m := NewMock(t)
	sp1, sp2 := "SP-1", "SP-2"
	m.relationships.EXPECT().Counterparties(gomock.Any(), employer.WorkerID, cutoff).Return([]domain.EligibleReviewee{
		{WorkerID: worker.WorkerID, ScheduleID: sp1},
		{WorkerID: worker.WorkerID, ScheduleID: sp2},
		{WorkerID: peer.WorkerID, ScheduleID: "SP-3"},
	}, nil)
	m.repo.EXPECT().ListBy(gomock.Any(), employer.WorkerID).Return([]domain.Review{
		{RevieweeID: worker.WorkerID, ScheduleID: &sp1},
	}, nil)

	got, err := service.Eligible(context.Background(), employer.WorkerID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sp2, got[0].ScheduleID)
	assert.Equal(t, peer.WorkerID, got[1].WorkerID)

	_, err = service.Eligible(context.Background(), "NW-FFFFFFFF")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRating(t *testing.T) {
	service, m := NewMock(t)
	m.repo.EXPECT().AverageRating(gomock.Any(), worker.WorkerID).Return(4.666666, 3, nil)

	r, err := service.Rating(context.Background(), worker.WorkerID)
	require.NoError(t, err)
	assert.Equal(t, &domain.Rating{WorkerID: worker.WorkerID, Average: 4.7, Count: 3}, r)
}

func TestCertificates(t *testing.T) {
	service, m := NewMock(t)
	key := keypair.MustRandom().Address()
	m.minter.EXPECT().ReviewCertificates(gomock.Any(), worker.PublicKey).Return([]domain.Certificate{{AssetCode: "RVW1"}}, nil)
	m.minter.EXPECT().ReviewCertificates(gomock.Any(), key).Return(nil, nil)

	certs, err := service.Certificates(context.Background(), "nw-0000000w")
	require.NoError(t, err)
	assert.Len(t, certs, 1)

	_, err = service.Certificates(context.Background(), key)
	assert.NoError(t, err)
}

func TestInvite(t *testing.T) {
	schedule := &domain.Schedule{ScheduleID: "SP-1", EmployerID: employer.WorkerID, WorkerID: worker.WorkerID}
	expires := now.AddDate(0, 0, 7)

	t.Run("Party receives a link", func(t *testing.T) {
		service, m := NewMock(t)
		m.relationships.EXPECT().GetByID(gomock.Any(), "SP-1").Return(schedule, nil)
		m.tokens.EXPECT().Issue("SP-1", worker.WorkerID).Return("tok", expires, nil)
		m.notifier.EXPECT().Notify(worker.Phone, gomock.Any())

		inv, err := service.Invite(context.Background(), "SP-1", worker.WorkerID)
		require.NoError(t, err)
		assert.Equal(t, "https://paytrace.example/review?token=tok", inv.Link)
		assert.Equal(t, expires, inv.ExpiresAt)
	})

	t.Run("Outsider", func(t *testing.T) {
		service, m := NewMock(t)
		m.relationships.EXPECT().GetByID(gomock.Any(), "SP-1").Return(schedule, nil)
		_, err := service.Invite(context.Background(), "SP-1", peer.WorkerID)
		assert.ErrorIs(t, err, domain.ErrNotEligible)
	})

	t.Run("Unknown schedule", func(t *testing.T) {
		service, m := NewMock(t)
		m.relationships.EXPECT().GetByID(gomock.Any(), "SP-9").Return(nil, nil)
		_, err := service.Invite(context.Background(), "SP-9", worker.WorkerID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("No signing secret", func(t *testing.T) {
		service, m := NewMock(t)
		m.relationships.EXPECT().GetByID(gomock.Any(), "SP-1").Return(schedule, nil)
		m.tokens.EXPECT().Issue("SP-1", worker.WorkerID).Return("", time.Time{}, auth.ErrNoSecret)
		_, err := service.Invite(context.Background(), "SP-1", worker.WorkerID)
		assert.ErrorIs(t, err, domain.ErrNotConfigured)
	})
}

func TestVerifyInvite(t *testing.T) {
	service, m := NewMock(t)
	m.tokens.EXPECT().Parse("good").Return(&auth.InviteClaims{
		ScheduleID:     "SP-1",
		ReviewerID:     worker.WorkerID,
		StandardClaims: jwt.StandardClaims{ExpiresAt: now.Unix()},
	}, nil)
	m.tokens.EXPECT().Parse("bad").Return(nil, auth.ErrInvalidToken)

	inv, err := service.VerifyInvite(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, "SP-1", inv.ScheduleID)
	assert.Equal(t, now, inv.ExpiresAt)

	_, err = service.VerifyInvite(context.Background(), "bad")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
