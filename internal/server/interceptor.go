package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/avalette/metreur-tracker/internal/common"
)

// UnaryRequestID tags every call with a request ID and logs its outcome.
// The ID is available downstream via common.RequestIDFromContext.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		attrs := []any{
			"request_id", requestID,
			"method", info.FullMethod,
			"elapsed_ms", time.Since(start).Milliseconds(),
		}
		if err != nil {
			attrs = append(attrs, "code", status.Code(err).String(), "error", err)
			logger.Warn("rpc.failed", attrs...)
			return nil, err
		}
		logger.Info("rpc.ok", attrs...)
		return resp, nil
	}
}
