package extract

import "fmt"

// ExtractionError is the terminal failure after the retry budget is spent:
// transport, parse, or schema trouble on every attempt. No records exist
// when it is returned.
type ExtractionError struct {
	Attempts  int
	LastCause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed after %d attempts: %v", e.Attempts, e.LastCause)
}

func (e *ExtractionError) Unwrap() error {
	return e.LastCause
}

// LowConfidenceError means the extraction validated structurally but the
// model's confidence sits below the configured floor. Confidence is a
// property of the document, not a transient fault, so it is never retried;
// callers route the document to manual review.
type LowConfidenceError struct {
	Confidence float32
	Threshold  float32
}

func (e *LowConfidenceError) Error() string {
	return fmt.Sprintf("extraction confidence %.2f below threshold %.2f", e.Confidence, e.Threshold)
}
