package lifecycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
)

// LifecycleError rejects an illegal transition. Recoverable: the caller
// reports it and no state changes.
type LifecycleError struct {
	RecordID uuid.UUID
	Message  string
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("record %s: %s", e.RecordID, e.Message)
}

// StatusFor derives the lifecycle status from the record's flags rather than
// from transition history, so the status can never drift from the data.
func StatusFor(hasModifications, isValidated bool) constants.RecordStatus {
	switch {
	case isValidated:
		return constants.StatusValidated
	case hasModifications:
		return constants.StatusInProgress
	default:
		return constants.StatusImported
	}
}

// Refresh recomputes and stores the derived status on the record.
func Refresh(rec *entity.FixtureRecord) {
	rec.Status = StatusFor(rec.HasModifications(), rec.IsValidated)
}

// Validate marks the record validated at the given time.
//
// A record must carry at least one edit before it can be validated; signing
// off an untouched import is refused. Re-validating an already validated
// record is an idempotent no-op so duplicate or concurrent validation
// requests stay safe.
func Validate(rec *entity.FixtureRecord, now time.Time) error {
	if rec.IsValidated {
		return nil
	}
	if !rec.HasModifications() {
		return &LifecycleError{RecordID: rec.ID, Message: "cannot validate a record with no modifications"}
	}
	rec.IsValidated = true
	ts := now.UTC()
	rec.ValidatedAt = &ts
	Refresh(rec)
	return nil
}
