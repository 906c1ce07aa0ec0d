package httpapi

import (
	"context"

	"github.com/riskibarqy/racha-league/internal/platform/logging"
)

// withRequestID tags every context-aware log line of the request with its id.
func withRequestID(ctx context.Context, requestID string) context.Context {
	return logging.ContextWith(ctx, "request_id", requestID)
}
