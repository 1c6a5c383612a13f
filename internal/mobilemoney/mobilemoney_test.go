package mobilemoney

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSimulationMode(t *testing.T) {
	rail := New(clients.NewHTTPClient(time.Second), "http://unused", "", "")
	assert.Equal(t, ModeSimulation, rail.Mode())

	payout, err := rail.Payout(context.Background(), "254700000002", decimal.RequireFromString("1000"))
	require.NoError(t, err)
	assert.True(t, payout.Success)
	assert.Equal(t, domain.RailCompleted, payout.Status)
	assert.Equal(t, "simulation", payout.Provider)
	assert.Regexp(t, `^MPESA-DEMO-[0-9A-F]{10}$`, payout.ExternalID)
	assert.Equal(t, "1000.00", payout.Amount)

	collect, err := rail.Collect(context.Background(), "254700000002", decimal.RequireFromString("50.5"))
	require.NoError(t, err)
	assert.Regexp(t, `^MPESA-COLLECT-[0-9A-F]{10}$`, collect.ExternalID)
	assert.Equal(t, "50.50", collect.Amount)
}

func TestLivePayout(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		expectedStatus domain.RailStatus
		expectedID     string
		success        bool
	}{
		{
			name:           "accepted",
			status:         http.StatusOK,
			body:           `{"tracking_id":"TRK123","status":"Preview and approve"}`,
			expectedStatus: domain.RailPending,
			expectedID:     "MPESA-TRK123",
			success:        true,
		},
		{
			name:           "refused",
			status:         http.StatusBadRequest,
			body:           `{"detail":"Insufficient wallet balance"}`,
			expectedStatus: domain.RailFailed,
			success:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, payoutPath, r.URL.Path)
				assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

				raw, _ := io.ReadAll(r.Body)
				var req map[string]any
				assert.NoError(t, json.Unmarshal(raw, &req))
				assert.Equal(t, "KES", req["currency"])
				txs := req["transactions"].([]any)
				assert.Equal(t, "254700000002", txs[0].(map[string]any)["account"])
				assert.Equal(t, 1000.0, txs[0].(map[string]any)["amount"])

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			rail := New(clients.NewHTTPClient(time.Second), srv.URL+"/", "key", "secret")
			assert.Equal(t, ModeLive, rail.Mode())

			res, err := rail.Payout(context.Background(), "254700000002", decimal.RequireFromString("1000"))
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, tt.expectedStatus, res.Status)
			assert.Equal(t, tt.expectedID, res.ExternalID)
			if !tt.success {
				assert.Contains(t, res.Message, "Insufficient wallet balance")
			}
		})
	}
}

func TestLiveCollect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, collectPath, r.URL.Path)
		_, _ = w.Write([]byte(`{"invoice":{"invoice_id":"INV9"}}`))
	}))
	defer srv.Close()

	rail := New(clients.NewHTTPClient(time.Second), srv.URL, "key", "secret")
	res, err := rail.Collect(context.Background(), "254700000002", decimal.RequireFromString("200"))
	require.NoError(t, err)
	assert.Equal(t, "MPESA-INV9", res.ExternalID)
	assert.Equal(t, domain.RailPending, res.Status)
	assert.Equal(t, ExternalID("INV9"), res.ExternalID)
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := clients.NewMockHTTPClientI(ctrl)
	client.EXPECT().PostJSON(gomock.Any(), "https://sandbox.intasend.com"+payoutPath, gomock.Any(), gomock.Any()).
		Return(0, nil, errors.New("dial tcp: i/o timeout"))
	client.EXPECT().PostJSON(gomock.Any(), "https://sandbox.intasend.com"+collectPath, gomock.Any(), gomock.Any()).
		Return(0, nil, context.DeadlineExceeded)

	rail := New(client, "https://sandbox.intasend.com", "key", "secret")

	_, err := rail.Payout(context.Background(), "254700000002", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNetwork)

	_, err = rail.Collect(context.Background(), "254700000002", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
