package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PaymentHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestSend(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful payment",
			body: `{"from":"NW-1A2B3C4D","to":"0712345678","amount":"12.5","memo":"Wages"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "NW-1A2B3C4D", "0712345678", "12.5", "Wages").
					Return(&domain.PaymentResult{Successful: true, TxHash: "h1"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Memo too long",
			body:          `{"from":"NW-1A2B3C4D","to":"NW-5E6F7A8B","amount":"1","memo":"12345678901234567890123456789"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "memo: must be at most 28",
		},
		{
			name:          "Missing amount",
			body:          `{"from":"NW-1A2B3C4D","to":"NW-5E6F7A8B"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "amount: is required",
		},
		{
			name: "Rejected by ledger",
			body: `{"from":"NW-1A2B3C4D","to":"NW-5E6F7A8B","amount":"1000"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "NW-1A2B3C4D", "NW-5E6F7A8B", "1000", "").
					Return(nil, &domain.LedgerError{Op: "submit", Kind: domain.ErrSubmissionRejected, Codes: []string{"op_underfunded"}})
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: "op_underfunded",
		},
		{
			name: "Outcome unknown",
			body: `{"from":"NW-1A2B3C4D","to":"NW-5E6F7A8B","amount":"1"}`,
			prepareMock: func() {
				service.EXPECT().Send(gomock.Any(), "NW-1A2B3C4D", "NW-5E6F7A8B", "1", "").
					Return(nil, &domain.LedgerError{Op: "submit", Kind: domain.ErrSubmissionTimeout, TxHash: "h2"})
			},
			expectedCode:  http.StatusGatewayTimeout,
			expectedError: "h2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/payments/send", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Send(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestHistory(t *testing.T) {
	handler, service := NewMock(t)
	page := &domain.PaymentPage{
		Records: []domain.PaymentRecord{
			{ID: "1", Direction: domain.Incoming, Amount: "5"},
			{ID: "2", Direction: domain.Outgoing, Amount: "3"},
		},
		NextCursor: "c2",
	}

	t.Run("full page with limit and cursor", func(t *testing.T) {
		service.EXPECT().History(gomock.Any(), "NW-1A2B3C4D", 50, "c1").Return(page, nil)

		r := withParam(httptest.NewRequest(http.MethodGet, "/api/payments/NW-1A2B3C4D?limit=50&cursor=c1", nil), "identifier", "NW-1A2B3C4D")
		w := httptest.NewRecorder()
		handler.History(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var body domain.PaymentPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body.Records, 2)
		assert.Equal(t, "c2", body.NextCursor)
	})

	t.Run("incoming only", func(t *testing.T) {
		service.EXPECT().History(gomock.Any(), "NW-1A2B3C4D", 0, "").Return(page, nil)

		r := withParam(httptest.NewRequest(http.MethodGet, "/api/payments/NW-1A2B3C4D/incoming", nil), "identifier", "NW-1A2B3C4D")
		w := httptest.NewRecorder()
		handler.Incoming(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		var body domain.PaymentPage
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		require.Len(t, body.Records, 1)
		assert.Equal(t, "1", body.Records[0].ID)
	})

	t.Run("non-numeric limit", func(t *testing.T) {
		r := withParam(httptest.NewRequest(http.MethodGet, "/api/payments/NW-1A2B3C4D?limit=ten", nil), "identifier", "NW-1A2B3C4D")
		w := httptest.NewRecorder()
		handler.History(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("limit out of range", func(t *testing.T) {
		service.EXPECT().History(gomock.Any(), "NW-1A2B3C4D", 500, "").
			Return(nil, domain.NewValidationError("limit", "must be between 1 and 200"))

		r := withParam(httptest.NewRequest(http.MethodGet, "/api/payments/NW-1A2B3C4D?limit=500", nil), "identifier", "NW-1A2B3C4D")
		w := httptest.NewRecorder()
		handler.History(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "between 1 and 200")
	})
}

func TestStats(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Stats(gomock.Any(), "GKEY").Return(&domain.PaymentStats{PublicKey: "GKEY", TotalReceived: "10", ReceivedCount: 2}, nil)
	r := withParam(httptest.NewRequest(http.MethodGet, "/api/payments/GKEY/stats", nil), "identifier", "GKEY")
	w := httptest.NewRecorder()
	handler.Stats(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body domain.PaymentStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "10", body.TotalReceived)
	assert.Equal(t, 2, body.ReceivedCount)

	service.EXPECT().Stats(gomock.Any(), "GKEY").Return(nil, &domain.LedgerError{Op: "payments", Kind: domain.ErrNetwork})
	w = httptest.NewRecorder()
	handler.Stats(w, r)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
