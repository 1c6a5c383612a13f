package domain

import "time"

type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
)

func (r Role) Valid() bool {
	return r == RoleWorker || r == RoleEmployer
}

type Worker struct {
	ID        int       `db:"id" json:"-"`
	WorkerID  string    `db:"worker_id" json:"worker_id"`
	Phone     string    `db:"phone" json:"phone"`
	Name      string    `db:"name" json:"name"`
	Role      Role      `db:"role" json:"role"`
	PublicKey string    `db:"stellar_public_key" json:"public_key"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Frequency string

const (
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Monthly  Frequency = "monthly"
)

func (f Frequency) Valid() bool {
	switch f {
	case Weekly, Biweekly, Monthly:
		return true
	}
	return false
}

type ScheduleStatus string

const (
	ScheduleActive    ScheduleStatus = "active"
	SchedulePaused    ScheduleStatus = "paused"
	ScheduleCancelled ScheduleStatus = "cancelled"
)

type Schedule struct {
	ID              int            `db:"id" json:"-"`
	ScheduleID      string         `db:"schedule_id" json:"schedule_id"`
	EmployerID      string         `db:"employer_id" json:"employer_id"`
	WorkerID        string         `db:"worker_id" json:"worker_id"`
	Amount          string         `db:"amount" json:"amount"`
	Frequency       Frequency      `db:"frequency" json:"frequency"`
	NextPaymentDate time.Time      `db:"next_payment_date" json:"next_payment_date"`
	Status          ScheduleStatus `db:"status" json:"status"`
	Memo            string         `db:"memo" json:"memo"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`

	// A held schedule has a payment for PayingFor in flight or unsettled and is never picked up
	// by a run until it is reconciled.
	PayingFor    *time.Time `db:"paying_for" json:"paying_for,omitempty"`
	PayingTxHash *string    `db:"paying_tx_hash" json:"paying_tx_hash,omitempty"`
	PayingSince  *time.Time `db:"paying_since" json:"paying_since,omitempty"`
}

func (s *Schedule) Held() bool {
	return s.PayingFor != nil
}

type ClaimStatus string

const (
	ClaimPending  ClaimStatus = "pending"
	ClaimApproved ClaimStatus = "approved"
	ClaimRejected ClaimStatus = "rejected"
	ClaimPaying   ClaimStatus = "paying"
	ClaimPaid     ClaimStatus = "paid"
)

type Claim struct {
	ID         int         `db:"id" json:"-"`
	ClaimID    string      `db:"claim_id" json:"claim_id"`
	ScheduleID *string     `db:"schedule_id" json:"schedule_id,omitempty"`
	WorkerID   string      `db:"worker_id" json:"worker_id"`
	EmployerID string      `db:"employer_id" json:"employer_id"`
	Amount     string      `db:"amount" json:"amount"`
	Message    string      `db:"message" json:"message"`
	Status     ClaimStatus `db:"status" json:"status"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
}

type Review struct {
	ID           int       `db:"id" json:"-"`
	ReviewID     string    `db:"review_id" json:"review_id"`
	ReviewerID   string    `db:"reviewer_id" json:"reviewer_id"`
	RevieweeID   string    `db:"reviewee_id" json:"reviewee_id"`
	ReviewerRole Role      `db:"reviewer_role" json:"reviewer_role"`
	Rating       int       `db:"rating" json:"rating"`
	Comment      string    `db:"comment" json:"comment"`
	ScheduleID   *string   `db:"schedule_id" json:"schedule_id,omitempty"`
	TxHash       *string   `db:"stellar_tx_hash" json:"stellar_tx_hash,omitempty"`
	ExplorerURL  *string   `db:"explorer_url" json:"explorer_url,omitempty"`
	AssetCode    *string   `db:"nft_asset_code" json:"nft_asset_code,omitempty"`
	DocumentCID  *string   `db:"document_cid" json:"document_cid,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Relationship is an employment link between two workers backed by a schedule.
type Relationship struct {
	ScheduleID string
	EmployerID string
	WorkerID   string
	Status     ScheduleStatus
	StartedAt  time.Time
	EndedAt    *time.Time
}

type EligibleReviewee struct {
	WorkerID   string    `json:"worker_id"`
	Name       string    `json:"name"`
	Role       Role      `json:"role"`
	ScheduleID string    `json:"schedule_id"`
	StartedAt  time.Time `json:"started_at"`
}

type Rating struct {
	WorkerID string  `json:"worker_id"`
	Average  float64 `json:"average"`
	Count    int     `json:"count"`
}

// Invitation is a signed link asking one party of a schedule to review the other.
type Invitation struct {
	ScheduleID string    `json:"schedule_id"`
	ReviewerID string    `json:"reviewer_id"`
	Token      string    `json:"token,omitempty"`
	Link       string    `json:"link,omitempty"`
	ExpiresAt  time.Time `json:"expires_at"`
}
