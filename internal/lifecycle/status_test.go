package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
)

func TestStatusForTruthTable(t *testing.T) {
	cases := []struct {
		hasModifications bool
		isValidated      bool
		want             constants.RecordStatus
	}{
		{false, false, constants.StatusImported},
		{true, false, constants.StatusInProgress},
		{false, true, constants.StatusValidated},
		{true, true, constants.StatusValidated},
	}

	for _, tc := range cases {
		got := StatusFor(tc.hasModifications, tc.isValidated)
		if got != tc.want {
			t.Errorf("StatusFor(%v, %v): expected %s, got %s", tc.hasModifications, tc.isValidated, tc.want, got)
		}
	}
}

func TestValidateWithoutModificationsFails(t *testing.T) {
	rec := &entity.FixtureRecord{
		ID:           uuid.New(),
		OriginalData: map[string]any{"largeur": 1200.0},
	}

	err := Validate(rec, time.Now())
	var lcErr *LifecycleError
	if !errors.As(err, &lcErr) {
		t.Fatalf("expected LifecycleError, got %v", err)
	}
	if lcErr.RecordID != rec.ID {
		t.Errorf("expected error to carry record id %s, got %s", rec.ID, lcErr.RecordID)
	}
	if rec.IsValidated || rec.ValidatedAt != nil {
		t.Error("rejected validation must not change state")
	}
}

func TestValidateSetsTimestampAndStatus(t *testing.T) {
	rec := &entity.FixtureRecord{
		ID:           uuid.New(),
		OriginalData: map[string]any{"largeur": 1200.0},
		ModifiedData: map[string]any{"largeur": 1250.0},
	}

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if err := Validate(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.IsValidated {
		t.Error("expected IsValidated to be set")
	}
	if rec.ValidatedAt == nil || !rec.ValidatedAt.Equal(now) {
		t.Errorf("expected ValidatedAt %v, got %v", now, rec.ValidatedAt)
	}
	if rec.Status != constants.StatusValidated {
		t.Errorf("expected status VALIDATED, got %s", rec.Status)
	}
}

func TestValidateTwiceIsIdempotent(t *testing.T) {
	rec := &entity.FixtureRecord{
		ID:           uuid.New(),
		OriginalData: map[string]any{"largeur": 1200.0},
		ModifiedData: map[string]any{"largeur": 1250.0},
	}

	first := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	if err := Validate(rec, first); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if err := Validate(rec, first.Add(time.Hour)); err != nil {
		t.Fatalf("second validation should be a no-op success, got %v", err)
	}
	if !rec.ValidatedAt.Equal(first) {
		t.Errorf("second validation must not move the timestamp: got %v", rec.ValidatedAt)
	}
}

func TestRefreshDerivesStatus(t *testing.T) {
	rec := &entity.FixtureRecord{OriginalData: map[string]any{"largeur": 900.0}}

	Refresh(rec)
	if rec.Status != constants.StatusImported {
		t.Errorf("expected IMPORTED, got %s", rec.Status)
	}

	rec.ModifiedData = map[string]any{"largeur": 950.0}
	Refresh(rec)
	if rec.Status != constants.StatusInProgress {
		t.Errorf("expected IN_PROGRESS, got %s", rec.Status)
	}
}
