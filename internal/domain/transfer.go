package domain

import "time"

type Direction string

const (
	DirectionOffRamp Direction = "offramp"
	DirectionOnRamp  Direction = "onramp"
)

type TransferStatus string

const (
	TransferBurnSubmitted   TransferStatus = "burn_submitted"
	TransferBurnUnconfirmed TransferStatus = "burn_unconfirmed"
	TransferBurnFailed      TransferStatus = "burn_failed"
	TransferPayoutPending   TransferStatus = "burn_ok_payout_pending"
	TransferPayoutFailed    TransferStatus = "burn_ok_payout_failed"

	TransferCollectPending TransferStatus = "collect_pending"
	TransferCollectFailed  TransferStatus = "collect_failed"
	TransferCreditPending  TransferStatus = "collect_ok_credit_pending"
	TransferCreditFailed   TransferStatus = "collect_ok_credit_failed"

	TransferCompleted TransferStatus = "completed"
)

// Transfer tracks a saga that spans the ledger and the mobile-money rail.
type Transfer struct {
	ID           int            `db:"id" json:"-"`
	TransferID   string         `db:"transfer_id" json:"transfer_id"`
	Direction    Direction      `db:"direction" json:"direction"`
	WorkerID     string         `db:"worker_id" json:"worker_id"`
	Phone        string         `db:"phone" json:"phone"`
	Amount       string         `db:"amount" json:"amount"`
	AmountLocal  string         `db:"amount_local" json:"amount_local"`
	Status       TransferStatus `db:"status" json:"status"`
	BurnTxHash   *string        `db:"burn_tx_hash" json:"burn_tx_hash,omitempty"`
	CreditTxHash *string        `db:"credit_tx_hash" json:"credit_tx_hash,omitempty"`
	ExternalID   *string        `db:"external_id" json:"external_id,omitempty"`
	Provider     string         `db:"provider" json:"provider"`
	LastError    string         `db:"last_error" json:"last_error"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// TransferUpdate lists the columns a status move may set. Nil fields are kept.
type TransferUpdate struct {
	Status       TransferStatus
	BurnTxHash   *string
	CreditTxHash *string
	ExternalID   *string
	Provider     *string
	LastError    *string
}

type RailStatus string

const (
	RailCompleted RailStatus = "completed"
	RailPending   RailStatus = "pending"
	RailFailed    RailStatus = "failed"
)

type RailResult struct {
	Success    bool       `json:"success"`
	ExternalID string     `json:"external_tx_id"`
	Status     RailStatus `json:"status"`
	Provider   string     `json:"provider"`
	Amount     string     `json:"amount"`
	Message    string     `json:"message,omitempty"`
}
