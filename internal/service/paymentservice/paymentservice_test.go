package paymentservice

import (
	"context"
	"strings"
	"testing"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/stellar/go/keypair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	registry *MockRegistry
	secrets  *MockSecretRepo
	vault    *MockVault
	ledger   *MockLedger
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		registry: NewMockRegistry(ctrl),
		secrets:  NewMockSecretRepo(ctrl),
		vault:    NewMockVault(ctrl),
		ledger:   NewMockLedger(ctrl),
	}
	return New(m.registry, m.secrets, m.vault, m.ledger), m
}

func TestSend(t *testing.T) {
	senderKP := keypair.MustRandom()
	recipientKey := keypair.MustRandom().Address()
	sender := &domain.Worker{WorkerID: "NW-00000001", PublicKey: senderKP.Address()}
	recipient := &domain.Worker{WorkerID: "NW-00000002", PublicKey: recipientKey}

	resolveBoth := func(m *mocks) {
		m.registry.EXPECT().Resolve(gomock.Any(), "NW-00000001").Return(sender.PublicKey, sender, nil)
		m.registry.EXPECT().Resolve(gomock.Any(), "NW-00000002").Return(recipientKey, recipient, nil)
	}
	unseal := func(m *mocks, seed string) {
		m.secrets.EXPECT().EncryptedSecret(gomock.Any(), "NW-00000001").Return("sealed", nil)
		m.vault.EXPECT().Decrypt("sealed").Return(seed, nil)
	}

	tests := []struct {
		name          string
		amount        string
		memo          string
		to            string
		prepareMock   func(m *mocks)
		expected      *domain.PaymentResult
		expectedError error
	}{
		{
			name:   "Successful payment",
			amount: "10.50",
			memo:   "rent",
			to:     "NW-00000002",
			prepareMock: func(m *mocks) {
				resolveBoth(m)
				unseal(m, senderKP.Seed())
				m.ledger.EXPECT().TransferTracked(gomock.Any(), gomock.Any(), recipientKey, "10.5", "rent", gomock.Any()).DoAndReturn(
					func(_ context.Context, signer *keypair.Full, _, _, _ string, _ domain.BeforeSubmit) (*domain.SubmitResult, error) {
						assert.Equal(t, senderKP.Address(), signer.Address())
						return &domain.SubmitResult{Successful: true, TxHash: "abc"}, nil
					})
				m.ledger.EXPECT().ExplorerURL("abc").Return("https://stellar.expert/explorer/testnet/tx/abc")
			},
			expected: &domain.PaymentResult{
				Successful:   true,
				TxHash:       "abc",
				ExplorerURL:  "https://stellar.expert/explorer/testnet/tx/abc",
				FromKey:      senderKP.Address(),
				ToKey:        recipientKey,
				FromWorkerID: "NW-00000001",
				ToWorkerID:   "NW-00000002",
			},
		},
		{
			name:          "Invalid amount",
			amount:        "-1",
			to:            "NW-00000002",
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:          "Memo too long",
			amount:        "1",
			memo:          strings.Repeat("m", 29),
			to:            "NW-00000002",
			prepareMock:   func(m *mocks) {},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Sender is not registered",
			amount: "1",
			to:     "NW-00000002",
			prepareMock: func(m *mocks) {
				m.registry.EXPECT().Resolve(gomock.Any(), "NW-00000001").Return(sender.PublicKey, nil, nil)
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:   "Sender pays itself",
			amount: "1",
			to:     senderKP.Address(),
			prepareMock: func(m *mocks) {
				m.registry.EXPECT().Resolve(gomock.Any(), "NW-00000001").Return(sender.PublicKey, sender, nil)
				m.registry.EXPECT().Resolve(gomock.Any(), senderKP.Address()).Return(sender.PublicKey, sender, nil)
			},
			expectedError: domain.ErrValidation,
		},
		{
			name:   "Decrypted seed belongs to another account",
			amount: "1",
			to:     "NW-00000002",
			prepareMock: func(m *mocks) {
				resolveBoth(m)
				unseal(m, keypair.MustRandom().Seed())
			},
			expectedError: domain.ErrCrypto,
		},
		{
			name:   "Garbage seed",
			amount: "1",
			to:     "NW-00000002",
			prepareMock: func(m *mocks) {
				resolveBoth(m)
				unseal(m, "not-a-seed")
			},
			expectedError: domain.ErrCrypto,
		},
		{
			name:   "Ledger rejection passes through",
			amount: "1",
			to:     "NW-00000002",
			prepareMock: func(m *mocks) {
				resolveBoth(m)
				unseal(m, senderKP.Seed())
				m.ledger.EXPECT().TransferTracked(gomock.Any(), gomock.Any(), recipientKey, "1", "", gomock.Any()).
					Return(nil, &domain.LedgerError{Op: "submit", Kind: domain.ErrSubmissionRejected, Codes: []string{"op_underfunded"}})
			},
			expectedError: domain.ErrSubmissionRejected,
		},
		{
			name:   "Unsuccessful result",
			amount: "1",
			to:     "NW-00000002",
			prepareMock: func(m *mocks) {
				resolveBoth(m)
				unseal(m, senderKP.Seed())
				m.ledger.EXPECT().TransferTracked(gomock.Any(), gomock.Any(), recipientKey, "1", "", gomock.Any()).
					Return(&domain.SubmitResult{Successful: false, TxHash: "bad"}, nil)
			},
			expectedError: domain.ErrSubmissionRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)
			res, err := service.Send(context.Background(), "NW-00000001", tt.to, tt.amount, tt.memo)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res)
		})
	}
}

func TestSendTrackedHandsHashToCaller(t *testing.T) {
	service, m := NewMock(t)
	senderKP := keypair.MustRandom()
	recipientKey := keypair.MustRandom().Address()
	sender := &domain.Worker{WorkerID: "NW-00000001", PublicKey: senderKP.Address()}

	m.registry.EXPECT().Resolve(gomock.Any(), "NW-00000001").Return(sender.PublicKey, sender, nil)
	m.registry.EXPECT().Resolve(gomock.Any(), recipientKey).Return(recipientKey, nil, nil)
	m.secrets.EXPECT().EncryptedSecret(gomock.Any(), "NW-00000001").Return("sealed", nil)
	m.vault.EXPECT().Decrypt("sealed").Return(senderKP.Seed(), nil)
	m.ledger.EXPECT().TransferTracked(gomock.Any(), gomock.Any(), recipientKey, "3", "offramp t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *keypair.Full, _, _, _ string, before domain.BeforeSubmit) (*domain.SubmitResult, error) {
			require.NotNil(t, before)
			if err := before("h1"); err != nil {
				return nil, err
			}
			return &domain.SubmitResult{Successful: true, TxHash: "h1"}, nil
		})
	m.ledger.EXPECT().ExplorerURL("h1").Return("")

	var recorded string
	res, err := service.SendTracked(context.Background(), "NW-00000001", recipientKey, "3", "offramp t1", func(hash string) error {
		recorded = hash
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "h1", recorded)
	assert.Equal(t, "h1", res.TxHash)
}

func TestHistory(t *testing.T) {
	me := keypair.MustRandom().Address()
	friend := keypair.MustRandom().Address()
	stranger := keypair.MustRandom().Address()

	t.Run("Annotates known counterparties", func(t *testing.T) {
		service, m := NewMock(t)
		page := &domain.PaymentPage{
			Records: []domain.PaymentRecord{
				{ID: "1", From: friend, To: me, Amount: "5", Direction: domain.Incoming},
				{ID: "2", From: me, To: stranger, Amount: "2", Direction: domain.Outgoing},
			},
			NextCursor: "2",
		}
		m.registry.EXPECT().Resolve(gomock.Any(), "NW-00000001").Return(me, &domain.Worker{}, nil)
		m.ledger.EXPECT().Payments(gomock.Any(), me, DefaultHistoryLimit, "").Return(page, nil)
		m.secrets.EXPECT().FindByPublicKeys(gomock.Any(), []string{friend, me, stranger}).
			Return(map[string]string{me: "NW-00000001", friend: "NW-00000002"}, nil)

		got, err := service.History(context.Background(), "NW-00000001", 0, "")
		require.NoError(t, err)
		assert.Equal(t, "NW-00000002", got.Records[0].FromWorkerID)
		assert.Equal(t, "NW-00000001", got.Records[0].ToWorkerID)
		assert.Equal(t, "NW-00000001", got.Records[1].FromWorkerID)
		assert.Empty(t, got.Records[1].ToWorkerID)
		assert.Equal(t, "2", got.NextCursor)
	})

	t.Run("Empty history skips the lookup", func(t *testing.T) {
		service, m := NewMock(t)
		m.registry.EXPECT().Resolve(gomock.Any(), me).Return(me, nil, nil)
		m.ledger.EXPECT().Payments(gomock.Any(), me, 50, "cur").Return(&domain.PaymentPage{Records: []domain.PaymentRecord{}}, nil)

		got, err := service.History(context.Background(), me, 50, "cur")
		require.NoError(t, err)
		assert.Empty(t, got.Records)
	})

	t.Run("Limit out of range", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.History(context.Background(), me, 201, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = service.History(context.Background(), me, -1, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestStats(t *testing.T) {
	service, m := NewMock(t)
	me := keypair.MustRandom().Address()
	a := keypair.MustRandom().Address()
	b := keypair.MustRandom().Address()
	c := keypair.MustRandom().Address()

	m.registry.EXPECT().Resolve(gomock.Any(), me).Return(me, nil, nil)
	m.ledger.EXPECT().Payments(gomock.Any(), me, StatsWindow, "").Return(&domain.PaymentPage{Records: []domain.PaymentRecord{
		{From: a, To: me, Amount: "10.0000000"},
		{From: a, To: me, Amount: "2.5"},
		{From: b, To: me, Amount: "1"},
		{From: me, To: a, Amount: "3"},
		{From: me, To: c, Amount: "0.1234567"},
	}}, nil)

	stats, err := service.Stats(context.Background(), me)
	require.NoError(t, err)
	assert.Equal(t, &domain.PaymentStats{
		PublicKey:            me,
		TotalReceived:        "13.5",
		TotalSent:            "3.1234567",
		ReceivedCount:        3,
		SentCount:            2,
		UniqueSenders:        2,
		UniqueRecipients:     2,
		UniqueCounterparties: 3,
		WindowSize:           5,
	}, stats)
}
