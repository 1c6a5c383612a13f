package ledger

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/GlebRadaev/paytrace/internal/domain"
	"github.com/stellar/go/clients/horizonclient"
)

func isNotFound(err error) bool {
	if horizonclient.IsNotFoundError(err) {
		return true
	}
	hErr := horizonclient.GetError(err)
	return hErr != nil && hErr.Problem.Status == http.StatusNotFound
}

// classify maps a horizon or transport error to a ledger error kind. When submitted is true the
// request may have reached the network, so an unanswered request is indeterminate instead of transient.
func classify(err error, submitted bool) error {
	if hErr := horizonclient.GetError(err); hErr != nil {
		status := hErr.Problem.Status
		switch {
		case status == http.StatusNotFound:
			return domain.ErrNotFound
		case status == http.StatusGatewayTimeout || strings.HasSuffix(hErr.Problem.Type, "/timeout"):
			if submitted {
				return domain.ErrSubmissionTimeout
			}
			return domain.ErrNetwork
		case status == http.StatusBadRequest:
			return domain.ErrSubmissionRejected
		default:
			return domain.ErrNetwork
		}
	}

	if !submitted || isDialError(err) {
		return domain.ErrNetwork
	}
	return domain.ErrSubmissionTimeout
}

func resultCodes(err error) []string {
	hErr := horizonclient.GetError(err)
	if hErr == nil {
		return nil
	}
	rc, err := hErr.ResultCodes()
	if err != nil || rc == nil {
		return nil
	}
	codes := make([]string, 0, len(rc.OperationCodes)+1)
	if rc.TransactionCode != "" {
		codes = append(codes, rc.TransactionCode)
	}
	return append(codes, rc.OperationCodes...)
}

// isDialError reports a failure to connect, which guarantees the request was never sent.
func isDialError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}
