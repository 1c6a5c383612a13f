package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrNotEligible        = errors.New("not eligible")
	ErrCrypto             = errors.New("credential failure")
	ErrNetwork            = errors.New("network unavailable")
	ErrSubmissionRejected = errors.New("transaction rejected")
	ErrSubmissionTimeout  = errors.New("transaction outcome unknown")
	ErrPartialFailure     = errors.New("partial failure")
	ErrNotConfigured      = errors.New("not configured")
)

type ValidationError struct {
	Field string
	Msg   string
}

func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return e.Field + ": " + e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type NotFoundError struct {
	Kind string
	ID   string
}

func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CryptoError means a stored secret could not be recovered. It is never the caller's fault.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCrypto, e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error { return e.Err }

func (e *CryptoError) Is(target error) bool {
	return target == ErrCrypto
}

// LedgerError is any failure talking to the ledger network. Kind is one of
// ErrNetwork, ErrSubmissionRejected, ErrSubmissionTimeout or ErrNotFound.
type LedgerError struct {
	Op     string
	Key    string
	Kind   error
	Codes  []string
	TxHash string
	Err    error
}

func (e *LedgerError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ledger %s for %s: %v", e.Op, e.Key, e.Kind)
	if len(e.Codes) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Codes, ","))
	}
	if e.TxHash != "" {
		fmt.Fprintf(&b, " tx=%s", e.TxHash)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *LedgerError) Unwrap() error { return e.Err }

func (e *LedgerError) Is(target error) bool {
	return target == e.Kind
}

// PartialFailureError reports a saga whose first leg committed and whose second leg did not.
type PartialFailureError struct {
	TransferID   string
	Stage        string
	FirstLegHash string
	Err          error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s: transfer %s failed at %s after ledger tx %s: %v",
		ErrPartialFailure, e.TransferID, e.Stage, e.FirstLegHash, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }

func (e *PartialFailureError) Is(target error) bool {
	return target == ErrPartialFailure
}
