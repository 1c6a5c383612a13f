package transfers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/internal/service/transferservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*TransferHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func strptr(s string) *string { return &s }

func TestWithdraw(t *testing.T) {
	handler, service := NewMock(t)
	body := `{"identifier":"NW-W","amount":"10"}`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedStage string
	}{
		{
			name: "Completed",
			body: body,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "NW-W", "", "10").
					Return(&domain.Transfer{TransferID: "TR-1", Status: domain.TransferCompleted, BurnTxHash: strptr("burn1")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Payout failed after burn",
			body: body,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "NW-W", "", "10").
					Return(&domain.Transfer{TransferID: "TR-1", Status: domain.TransferPayoutFailed, BurnTxHash: strptr("burn1")},
						&domain.PartialFailureError{TransferID: "TR-1", Stage: "payout", FirstLegHash: "burn1", Err: errors.New("rail down")})
			},
			expectedCode:  http.StatusBadGateway,
			expectedStage: "payout",
		},
		{
			name: "Burn outcome unknown",
			body: body,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "NW-W", "", "10").
					Return(&domain.Transfer{TransferID: "TR-1", Status: domain.TransferBurnUnconfirmed},
						&domain.LedgerError{Op: "submit", Kind: domain.ErrSubmissionTimeout, TxHash: "burn1"})
			},
			expectedCode:  http.StatusGatewayTimeout,
			expectedError: "burn_unconfirmed",
		},
		{
			name: "Invalid phone",
			body: `{"identifier":"NW-W","amount":"10","phone":"12"}`,
			prepareMock: func() {
				service.EXPECT().Withdraw(gomock.Any(), "NW-W", "12", "10").Return(nil, domain.NewValidationError("phone", "must be a Kenyan mobile number"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "phone",
		},
		{
			name:         "Missing amount",
			body:         `{"identifier":"NW-W"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.Withdraw(w, httptest.NewRequest(http.MethodPost, "/api/transfers/withdraw", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedStage != "" {
				var resp struct {
					Details struct {
						Stage        string          `json:"stage"`
						FirstLegHash string          `json:"first_leg_hash"`
						Transfer     domain.Transfer `json:"transfer"`
					} `json:"details"`
				}
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStage, resp.Details.Stage)
				assert.Equal(t, "burn1", resp.Details.FirstLegHash)
				assert.Equal(t, domain.TransferPayoutFailed, resp.Details.Transfer.Status)
			}
		})
	}
}

func TestDeposit(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Deposit(gomock.Any(), "NW-W", "0712345678", "5").
		Return(&domain.Transfer{TransferID: "TR-2", Status: domain.TransferCollectPending, ExternalID: strptr("EXT1")}, nil)
	w := httptest.NewRecorder()
	handler.Deposit(w, httptest.NewRequest(http.MethodPost, "/api/transfers/deposit", bytes.NewBufferString(`{"identifier":"NW-W","phone":"0712345678","amount":"5"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	var tr domain.Transfer
	require.NoError(t, json.NewDecoder(w.Body).Decode(&tr))
	assert.Equal(t, domain.TransferCollectPending, tr.Status)
	assert.Equal(t, "EXT1", *tr.ExternalID)
}

func TestDepositCallback(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().ConfirmDeposit(gomock.Any(), "EXT1", true).
		Return(&domain.Transfer{TransferID: "TR-2", Status: domain.TransferCompleted, CreditTxHash: strptr("credit1")}, nil)
	w := httptest.NewRecorder()
	handler.DepositCallback(w, httptest.NewRequest(http.MethodPost, "/api/transfers/deposit/callback", bytes.NewBufferString(`{"external_id":"EXT1","success":true}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "credit1")

	service.EXPECT().ConfirmDeposit(gomock.Any(), "EXT9", false).Return(nil, domain.NewNotFoundError("transfer", "EXT9"))
	w = httptest.NewRecorder()
	handler.DepositCallback(w, httptest.NewRequest(http.MethodPost, "/api/transfers/deposit/callback", bytes.NewBufferString(`{"external_id":"EXT9"}`)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	handler.DepositCallback(w, httptest.NewRequest(http.MethodPost, "/api/transfers/deposit/callback", bytes.NewBufferString(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayoutCallback(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		contains     string
	}{
		{
			name: "Confirmed payout",
			body: `{"external_id":"MPESA-P1","success":true}`,
			prepareMock: func() {
				service.EXPECT().ConfirmPayout(gomock.Any(), "MPESA-P1", true).
					Return(&domain.Transfer{TransferID: "TR-3", Status: domain.TransferCompleted}, nil)
			},
			expectedCode: http.StatusOK,
			contains:     string(domain.TransferCompleted),
		},
		{
			name: "Declined payout",
			body: `{"external_id":"MPESA-P2","success":false}`,
			prepareMock: func() {
				service.EXPECT().ConfirmPayout(gomock.Any(), "MPESA-P2", false).
					Return(&domain.Transfer{TransferID: "TR-4", Status: domain.TransferPayoutFailed}, nil)
			},
			expectedCode: http.StatusOK,
			contains:     string(domain.TransferPayoutFailed),
		},
		{
			name: "Unknown reference",
			body: `{"external_id":"MPESA-NOPE","success":true}`,
			prepareMock: func() {
				service.EXPECT().ConfirmPayout(gomock.Any(), "MPESA-NOPE", true).Return(nil, domain.NewNotFoundError("transfer", "MPESA-NOPE"))
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Missing reference",
			body:         `{"success":true}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.PayoutCallback(w, httptest.NewRequest(http.MethodPost, "/api/transfers/payout/callback", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.contains != "" {
				assert.Contains(t, w.Body.String(), tt.contains)
			}
		})
	}
}

func TestReconcile(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		transfer     *domain.Transfer
		err          error
		expectedCode int
	}{
		{"Paid out", &domain.Transfer{TransferID: "TR-1", Status: domain.TransferCompleted}, nil, http.StatusOK},
		{"Not reconcilable", &domain.Transfer{TransferID: "TR-1", Status: domain.TransferCompleted}, transferservice.ErrNotReconcilable, http.StatusConflict},
		{"Too early", &domain.Transfer{TransferID: "TR-1", Status: domain.TransferBurnUnconfirmed}, transferservice.ErrTooEarly, http.StatusConflict},
		{"Unknown", nil, domain.NewNotFoundError("transfer", "TR-1"), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service.EXPECT().Reconcile(gomock.Any(), "TR-1").Return(tt.transfer, tt.err)
			w := httptest.NewRecorder()
			handler.Reconcile(w, withParam(httptest.NewRequest(http.MethodPost, "/api/transfers/TR-1/reconcile", nil), "id", "TR-1"))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGet(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Get(gomock.Any(), "TR-1").Return(&domain.Transfer{TransferID: "TR-1", Status: domain.TransferPayoutPending}, nil)
	w := httptest.NewRecorder()
	handler.Get(w, withParam(httptest.NewRequest(http.MethodGet, "/api/transfers/TR-1", nil), "id", "TR-1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), string(domain.TransferPayoutPending))
}
