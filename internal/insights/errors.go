package insights

import (
	"fmt"

	"outlet-analytics/internal/shared/svcerrors"
)

const (
	codeInvalidTimeRange = "INS_1000"

	codeInternalEventQueryFailed   = "INS_9000"
	codeInternalSummaryStoreFailed = "INS_9001"
)

// NewInvalidTimeRangeError is used by the HTTP layer when the requested
// range is not one of today/7d/30d/90d.
func NewInvalidTimeRangeError(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimeRange, "invalid time range", cause)
}

func errInternalEventQueryFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventQueryFailed, fmt.Errorf("eventQueryFailed: %w", cause))
}

func errInternalSummaryStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalSummaryStoreFailed, fmt.Errorf("summaryStoreFailed: %w", cause))
}
