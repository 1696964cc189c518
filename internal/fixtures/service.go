package fixtures

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/internal/classify"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/lifecycle"
	"github.com/avalette/metreur-tracker/internal/reconcile"
	"github.com/avalette/metreur-tracker/internal/repository"
)

// Service owns the edit workflow: every operator edit recomputes deviations
// against the immutable original and re-derives the lifecycle status.
//
// The service assumes the owning system serializes concurrent edits to the
// same record; two racing edits against a shared original could otherwise
// both succeed with divergent deviations.
type Service struct {
	fixtures   repository.FixtureRepository
	thresholds reconcile.Thresholds
	capacity   int
	logger     *slog.Logger
}

func NewService(fixtures repository.FixtureRepository, thresholds reconcile.Thresholds, capacity int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fixtures: fixtures, thresholds: thresholds, capacity: capacity, logger: logger}
}

// UpdateFixture merges the operator's changes into modifiedData, recomputes
// the full deviation set (never patched incrementally), refreshes the
// derived status, and persists the result.
func (s *Service) UpdateFixture(ctx context.Context, recordID uuid.UUID, changes map[string]any) (*entity.FixtureRecord, error) {
	rec, err := s.fixtures.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}

	modified := make(map[string]any, len(rec.ModifiedData)+len(changes))
	for k, v := range rec.ModifiedData {
		modified[k] = v
	}
	for k, v := range changes {
		modified[k] = v
	}
	rec.ModifiedData = modified
	rec.Deviations = reconcile.Reconcile(rec.OriginalData, rec.ModifiedData, s.thresholds)
	lifecycle.Refresh(rec)

	if err := s.fixtures.SaveEdits(ctx, rec); err != nil {
		return nil, err
	}

	alerts := reconcile.Alertable(rec.Deviations)
	if len(alerts) > 0 {
		for field, d := range alerts {
			s.logger.Warn("fixture.deviation_alert",
				"record_id", rec.ID,
				"field", field,
				"original", d.Original,
				"modified", d.Modified,
				"severity", d.Severity,
			)
		}
	}
	return rec, nil
}

// ValidateFixture signs the record off. Re-validation is an idempotent
// success; validating an unedited record fails with *lifecycle.LifecycleError.
func (s *Service) ValidateFixture(ctx context.Context, recordID uuid.UUID) (*entity.FixtureRecord, error) {
	rec, err := s.fixtures.Get(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rec.IsValidated {
		// duplicate request, nothing to persist
		return rec, nil
	}
	if err := lifecycle.Validate(rec, time.Now()); err != nil {
		return nil, err
	}
	if err := s.fixtures.SaveValidation(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// PlanBatches classifies the survey's validated records and chunks them into
// document batches. Reads a snapshot; records are not mutated.
func (s *Service) PlanBatches(ctx context.Context, surveyID uuid.UUID) ([]entity.DocumentBatch, error) {
	recs, err := s.fixtures.ListValidated(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		classify.LogFallback(s.logger, rec, classify.Classify(rec))
	}
	batches := classify.Batch(recs, s.capacity)
	s.logger.Info("fixture.batches_planned", "survey_id", surveyID, "records", len(recs), "batches", len(batches))
	return batches, nil
}
