package domain

import "time"

// ReconcileGrace is how long an unsettled submission is left alone before a missing transaction is
// taken as final. It exceeds the transaction time bounds, after which the network can no longer apply it.
const ReconcileGrace = 45 * time.Second

// BeforeSubmit receives the hash of a signed transaction before it is sent to the network.
// Returning an error aborts the submission.
type BeforeSubmit func(txHash string) error

type SubmitResult struct {
	Successful bool   `json:"successful"`
	TxHash     string `json:"tx_hash"`
	Ledger     int32  `json:"ledger"`
}

type PaymentResult struct {
	Successful   bool   `json:"successful"`
	TxHash       string `json:"tx_hash"`
	ExplorerURL  string `json:"explorer_url"`
	FromKey      string `json:"from_key"`
	ToKey        string `json:"to_key"`
	FromWorkerID string `json:"from_worker_id,omitempty"`
	ToWorkerID   string `json:"to_worker_id,omitempty"`
}

type PaymentDirection string

const (
	Incoming PaymentDirection = "incoming"
	Outgoing PaymentDirection = "outgoing"
)

// PaymentRecord is a native payment or an account creation seen from one account.
type PaymentRecord struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"`
	From         string           `json:"from"`
	To           string           `json:"to"`
	Amount       string           `json:"amount"`
	AssetType    string           `json:"asset_type"`
	TxHash       string           `json:"tx_hash"`
	CreatedAt    time.Time        `json:"created_at"`
	PagingToken  string           `json:"paging_token"`
	Direction    PaymentDirection `json:"direction,omitempty"`
	FromWorkerID string           `json:"from_worker_id,omitempty"`
	ToWorkerID   string           `json:"to_worker_id,omitempty"`
	ExplorerURL  string           `json:"explorer_url,omitempty"`
}

type PaymentPage struct {
	Records    []PaymentRecord `json:"records"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

// PaymentStats is computed over the most recent WindowSize records only.
type PaymentStats struct {
	PublicKey            string `json:"public_key"`
	TotalReceived        string `json:"total_received"`
	TotalSent            string `json:"total_sent"`
	ReceivedCount        int    `json:"received_count"`
	SentCount            int    `json:"sent_count"`
	UniqueSenders        int    `json:"unique_senders"`
	UniqueRecipients     int    `json:"unique_recipients"`
	UniqueCounterparties int    `json:"unique_counterparties"`
	WindowSize           int    `json:"window_size"`
}

type CertificateRequest struct {
	Reviewee     string
	ReviewerID   string
	ReviewerRole Role
	RevieweeRole Role
	Rating       int
	Duration     string
	DocumentCID  string
	Seed         string
}

type Certificate struct {
	AssetCode   string            `json:"asset_code"`
	Issuer      string            `json:"issuer"`
	TxHash      string            `json:"tx_hash,omitempty"`
	ExplorerURL string            `json:"explorer_url,omitempty"`
	Claimed     bool              `json:"claimed"`
	BalanceID   string            `json:"balance_id,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
