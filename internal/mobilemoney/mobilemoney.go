// Package mobilemoney talks to the IntaSend M-Pesa rail. Without credentials it runs in an
// explicit simulation mode that returns well-formed, completed results.
package mobilemoney

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/pkg/clients"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Mode string

const (
	ModeLive       Mode = "intasend"
	ModeSimulation Mode = "simulation"
)

const (
	payoutPath  = "/api/v1/send-money/mpesa/"
	collectPath = "/api/v1/payment/collect/mpesa/"

	simulatedPayoutPrefix  = "MPESA-DEMO-"
	simulatedCollectPrefix = "MPESA-COLLECT-"
	livePrefix             = "MPESA-"
)

type Rail struct {
	client  clients.HTTPClientI
	baseURL string
	secret  string
	mode    Mode
}

func New(client clients.HTTPClientI, baseURL, apiKey, secret string) *Rail {
	mode := ModeLive
	if apiKey == "" || secret == "" {
		mode = ModeSimulation
	}
	zap.L().Info("mobile money rail configured", zap.String("mode", string(mode)))
	return &Rail{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		mode:    mode,
	}
}

func (r *Rail) Mode() Mode {
	return r.mode
}

// ExternalID is the identifier stored for a live rail reference such as an IntaSend invoice id.
func ExternalID(reference string) string {
	return livePrefix + reference
}

type payoutTransaction struct {
	Name      string      `json:"name"`
	Account   string      `json:"account"`
	Amount    json.Number `json:"amount"`
	Narrative string      `json:"narrative"`
}

type payoutRequest struct {
	Currency     string              `json:"currency"`
	Transactions []payoutTransaction `json:"transactions"`
}

type payoutResponse struct {
	TrackingID string `json:"tracking_id"`
	FileID     string `json:"file_id"`
}

type collectRequest struct {
	Amount      json.Number `json:"amount"`
	PhoneNumber string      `json:"phone_number"`
	Email       string      `json:"email"`
	Narrative   string      `json:"narrative"`
}

type collectResponse struct {
	InvoiceID string `json:"invoice_id"`
	Invoice   struct {
		InvoiceID string `json:"invoice_id"`
	} `json:"invoice"`
}

type errorResponse struct {
	Errors json.RawMessage `json:"errors"`
	Detail string          `json:"detail"`
}

// Payout sends amount (local currency) to an M-Pesa number.
func (r *Rail) Payout(ctx context.Context, phone string, amount decimal.Decimal) (*domain.RailResult, error) {
	if r.mode == ModeSimulation {
		return simulated(simulatedPayoutPrefix, amount, fmt.Sprintf("Simulated payout of KES %s to %s", amount.StringFixed(2), phone)), nil
	}

	req := payoutRequest{
		Currency: "KES",
		Transactions: []payoutTransaction{{
			Name:      "Paytrace Withdrawal",
			Account:   phone,
			Amount:    json.Number(amount.StringFixed(2)),
			Narrative: "Paytrace off-ramp withdrawal",
		}},
	}
	status, body, err := r.client.PostJSON(ctx, r.baseURL+payoutPath, r.headers(), req)
	if err != nil {
		zap.L().Error("payout request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: intasend payout: %v", domain.ErrNetwork, err)
	}
	if status < 200 || status >= 300 {
		return r.failed(amount, "payout", status, body), nil
	}

	var resp payoutResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode payout response: %w", err)
	}
	reference := resp.TrackingID
	if reference == "" {
		reference = resp.FileID
	}
	if reference == "" {
		reference = uuid.NewString()
	}
	return &domain.RailResult{
		Success:    true,
		ExternalID: ExternalID(reference),
		Status:     domain.RailPending,
		Provider:   string(ModeLive),
		Amount:     amount.StringFixed(2),
		Message:    fmt.Sprintf("KES %s payout initiated to %s", amount.StringFixed(2), phone),
	}, nil
}

// Collect prompts the phone owner to pay amount (local currency). Live collections complete
// asynchronously through the provider callback.
func (r *Rail) Collect(ctx context.Context, phone string, amount decimal.Decimal) (*domain.RailResult, error) {
	if r.mode == ModeSimulation {
		return simulated(simulatedCollectPrefix, amount, fmt.Sprintf("Simulated collection of KES %s from %s", amount.StringFixed(2), phone)), nil
	}

	req := collectRequest{
		Amount:      json.Number(amount.StringFixed(2)),
		PhoneNumber: phone,
		Email:       "payments@paytrace.app",
		Narrative:   "Paytrace fund",
	}
	status, body, err := r.client.PostJSON(ctx, r.baseURL+collectPath, r.headers(), req)
	if err != nil {
		zap.L().Error("collect request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: intasend collect: %v", domain.ErrNetwork, err)
	}
	if status < 200 || status >= 300 {
		return r.failed(amount, "collect", status, body), nil
	}

	var resp collectResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode collect response: %w", err)
	}
	reference := resp.Invoice.InvoiceID
	if reference == "" {
		reference = resp.InvoiceID
	}
	if reference == "" {
		reference = uuid.NewString()
	}
	return &domain.RailResult{
		Success:    true,
		ExternalID: ExternalID(reference),
		Status:     domain.RailPending,
		Provider:   string(ModeLive),
		Amount:     amount.StringFixed(2),
		Message:    "M-Pesa prompt sent, enter PIN to complete",
	}, nil
}

func (r *Rail) headers() http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+r.secret)
	return h
}

func (r *Rail) failed(amount decimal.Decimal, op string, status int, body []byte) *domain.RailResult {
	var e errorResponse
	detail := ""
	if err := json.Unmarshal(body, &e); err == nil {
		detail = e.Detail
		if detail == "" && len(e.Errors) > 0 {
			detail = string(e.Errors)
		}
	}
	if detail == "" {
		detail = truncate(string(body), 200)
	}
	zap.L().Warn("mobile money request refused", zap.String("op", op), zap.Int("status", status), zap.String("detail", detail))
	return &domain.RailResult{
		Success:  false,
		Status:   domain.RailFailed,
		Provider: string(ModeLive),
		Amount:   amount.StringFixed(2),
		Message:  fmt.Sprintf("M-Pesa %s failed (%d): %s", op, status, detail),
	}
}

func simulated(prefix string, amount decimal.Decimal, message string) *domain.RailResult {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return &domain.RailResult{
		Success:    true,
		ExternalID: prefix + strings.ToUpper(id[:10]),
		Status:     domain.RailCompleted,
		Provider:   string(ModeSimulation),
		Amount:     amount.StringFixed(2),
		Message:    message,
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
