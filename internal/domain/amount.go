package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerScale is the number of fractional digits the ledger keeps for an amount.
const LedgerScale = 7

var maxAmount = decimal.RequireFromString("922337203685.4775807")

// ParseAmount accepts a positive decimal string with at most LedgerScale fractional digits.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, NewValidationError(field, "is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, NewValidationError(field, "must be a decimal number")
	}
	if !d.IsPositive() {
		return decimal.Zero, NewValidationError(field, "must be positive")
	}
	if !d.Equal(d.Truncate(LedgerScale)) {
		return decimal.Zero, NewValidationError(field, "has more than 7 decimal places")
	}
	if d.GreaterThan(maxAmount) {
		return decimal.Zero, NewValidationError(field, "exceeds the ledger maximum")
	}
	return d, nil
}

// FormatAmount renders d the way the ledger expects: no exponent, no trailing zeros.
func FormatAmount(d decimal.Decimal) string {
	return d.Truncate(LedgerScale).String()
}

const (
	WorkerPrefix   = "NW-"
	SchedulePrefix = "SP-"
	ClaimPrefix    = "CL-"
	ReviewPrefix   = "RV-"
	TransferPrefix = "TR-"
)

// NewID returns prefix followed by eight uppercase hex characters.
func NewID(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + strings.ToUpper(id[:8])
}
