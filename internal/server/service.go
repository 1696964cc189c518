package server

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/status"

	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/extract"
	"github.com/avalette/metreur-tracker/internal/lifecycle"
)

// parseID parses a request UUID, naming the field in the error.
func parseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}

// rpcError maps domain failures onto gRPC status codes. Lifecycle and
// confidence failures are preconditions the caller can resolve; exhausted
// extraction is internal.
func rpcError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok && status.Code(err) != 0 {
		return err
	}
	var lcErr *lifecycle.LifecycleError
	if errors.As(err, &lcErr) {
		return common.FailedPreconditionError(lcErr.Error())
	}
	var confErr *extract.LowConfidenceError
	if errors.As(err, &confErr) {
		return common.FailedPreconditionError(confErr.Error())
	}
	var exErr *extract.ExtractionError
	if errors.As(err, &exErr) {
		return common.InternalError(exErr.Error())
	}
	if errors.Is(err, common.ErrNotFound) {
		return common.NotFoundError(err.Error())
	}
	return common.InternalError(err.Error())
}
