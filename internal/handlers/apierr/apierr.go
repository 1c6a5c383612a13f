// Package apierr translates domain errors into HTTP responses.
package apierr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/GlebRadaev/paytrace/pkg/utils"
	"go.uber.org/zap"
)

const internalMessage = "Internal server error"

type PartialFailureDetails struct {
	TransferID   string `json:"transfer_id"`
	Stage        string `json:"stage"`
	FirstLegHash string `json:"first_leg_hash,omitempty"`
	Transfer     any    `json:"transfer,omitempty"`
}

type LedgerDetails struct {
	TxHash      string   `json:"tx_hash,omitempty"`
	ResultCodes []string `json:"result_codes,omitempty"`
	Resource    any      `json:"resource,omitempty"`
}

// Status returns the response status and the client-facing message for err.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrPartialFailure):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, domain.ErrCrypto):
		return http.StatusInternalServerError, internalMessage
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrSubmissionTimeout):
		return http.StatusGatewayTimeout, err.Error()
	case errors.Is(err, domain.ErrSubmissionRejected):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrNotEligible):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrNetwork), errors.Is(err, domain.ErrNotConfigured):
		return http.StatusServiceUnavailable, err.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

// Respond writes err. resource, when not nil, is the object the failed operation left behind,
// such as a transfer row, and is attached to ledger and saga failures.
func Respond(w http.ResponseWriter, err error, resource any) {
	status, msg := Status(err)
	if status == http.StatusInternalServerError {
		zap.L().Error("request failed", zap.Error(err))
	}

	var pf *domain.PartialFailureError
	if errors.As(err, &pf) {
		utils.RespondWithDetails(w, status, msg, PartialFailureDetails{
			TransferID:   pf.TransferID,
			Stage:        pf.Stage,
			FirstLegHash: pf.FirstLegHash,
			Transfer:     resource,
		})
		return
	}
	var le *domain.LedgerError
	if errors.As(err, &le) && (le.TxHash != "" || len(le.Codes) > 0 || resource != nil) {
		utils.RespondWithDetails(w, status, msg, LedgerDetails{TxHash: le.TxHash, ResultCodes: le.Codes, Resource: resource})
		return
	}
	if resource != nil && !errors.Is(err, domain.ErrCrypto) {
		utils.RespondWithDetails(w, status, msg, resource)
		return
	}
	utils.RespondWithError(w, status, msg)
}
