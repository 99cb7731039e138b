package ingestors

import (
	"outlet-analytics/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeValidationFailed = "ING_1000"
)

// errValidationFailed returns an error for request-level validation failures.
// Event-level defects never produce one of these: they are recovered with
// defaults or routed to the fallback store.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}
