package fixtures

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/lifecycle"
	"github.com/avalette/metreur-tracker/internal/reconcile"
)

// fakeFixtureRepo keeps records in memory and counts writes.
type fakeFixtureRepo struct {
	records         map[uuid.UUID]*entity.FixtureRecord
	editSaves       int
	validationSaves int
}

func newFakeRepo(recs ...*entity.FixtureRecord) *fakeFixtureRepo {
	m := make(map[uuid.UUID]*entity.FixtureRecord)
	for _, r := range recs {
		m[r.ID] = r
	}
	return &fakeFixtureRepo{records: m}
}

func (f *fakeFixtureRepo) Get(_ context.Context, id uuid.UUID) (*entity.FixtureRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeFixtureRepo) ListBySurvey(_ context.Context, surveyID uuid.UUID) ([]*entity.FixtureRecord, error) {
	return f.list(surveyID, false), nil
}

func (f *fakeFixtureRepo) ListValidated(_ context.Context, surveyID uuid.UUID) ([]*entity.FixtureRecord, error) {
	return f.list(surveyID, true), nil
}

func (f *fakeFixtureRepo) list(surveyID uuid.UUID, validatedOnly bool) []*entity.FixtureRecord {
	var out []*entity.FixtureRecord
	for _, r := range f.records {
		if r.SurveyID == surveyID && (!validatedOnly || r.IsValidated) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeFixtureRepo) SaveEdits(_ context.Context, rec *entity.FixtureRecord) error {
	f.editSaves++
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeFixtureRepo) SaveValidation(_ context.Context, rec *entity.FixtureRecord) error {
	f.validationSaves++
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeFixtureRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

func imported() *entity.FixtureRecord {
	return &entity.FixtureRecord{
		ID:       uuid.New(),
		SurveyID: uuid.New(),
		Title:    "Fenêtre 2 vantaux",
		OriginalData: map[string]any{
			constants.FieldLargeur: 4200.0,
			constants.FieldHauteur: 2400.0,
			constants.FieldGamme:   "PVC",
		},
		Status: constants.StatusImported,
	}
}

func TestUpdateFixtureRecomputesDeviationsAndStatus(t *testing.T) {
	rec := imported()
	repo := newFakeRepo(rec)
	svc := NewService(repo, reconcile.DefaultThresholds, 3, nil)

	out, err := svc.UpdateFixture(context.Background(), rec.ID, map[string]any{
		constants.FieldLargeur: 4250.0,
	})
	require.NoError(t, err)
	assert.Equal(t, constants.StatusInProgress, out.Status)
	require.Len(t, out.Deviations, 1)
	dev := out.Deviations[constants.FieldLargeur]
	require.NotNil(t, dev.Difference)
	assert.Equal(t, 50.0, *dev.Difference)
	assert.Equal(t, constants.SeverityLow, dev.Severity)
	assert.Equal(t, 1, repo.editSaves)

	// original stays immutable
	assert.Equal(t, 4200.0, out.OriginalData[constants.FieldLargeur])
}

func TestUpdateFixtureFullRecomputeDropsStaleDeviations(t *testing.T) {
	rec := imported()
	repo := newFakeRepo(rec)
	svc := NewService(repo, reconcile.DefaultThresholds, 3, nil)

	_, err := svc.UpdateFixture(context.Background(), rec.ID, map[string]any{
		constants.FieldLargeur: 4250.0,
	})
	require.NoError(t, err)

	// reverting the edit removes the deviation entirely
	out, err := svc.UpdateFixture(context.Background(), rec.ID, map[string]any{
		constants.FieldLargeur: 4200.0,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Deviations)
	assert.Equal(t, constants.StatusInProgress, out.Status, "the edit history keeps the record in progress")
}

func TestValidateFixtureRequiresEdits(t *testing.T) {
	rec := imported()
	repo := newFakeRepo(rec)
	svc := NewService(repo, reconcile.DefaultThresholds, 3, nil)

	_, err := svc.ValidateFixture(context.Background(), rec.ID)
	var lcErr *lifecycle.LifecycleError
	require.ErrorAs(t, err, &lcErr)
	assert.Equal(t, 0, repo.validationSaves)
}

func TestValidateFixtureIdempotent(t *testing.T) {
	rec := imported()
	rec.ModifiedData = map[string]any{constants.FieldLargeur: 4300.0}
	repo := newFakeRepo(rec)
	svc := NewService(repo, reconcile.DefaultThresholds, 3, nil)

	first, err := svc.ValidateFixture(context.Background(), rec.ID)
	require.NoError(t, err)
	require.True(t, first.IsValidated)
	require.NotNil(t, first.ValidatedAt)

	second, err := svc.ValidateFixture(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.True(t, second.ValidatedAt.Equal(*first.ValidatedAt))
	assert.Equal(t, 1, repo.validationSaves, "duplicate validation must not write again")
}

func TestPlanBatchesOnlyValidatedRecords(t *testing.T) {
	surveyID := uuid.New()
	var recs []*entity.FixtureRecord
	for i := 0; i < 5; i++ {
		r := imported()
		r.SurveyID = surveyID
		r.Position = i
		r.ModifiedData = map[string]any{constants.FieldLargeur: 4300.0}
		r.IsValidated = i < 4 // last one not validated
		recs = append(recs, r)
	}
	repo := newFakeRepo(recs...)
	svc := NewService(repo, reconcile.DefaultThresholds, 3, nil)

	batches, err := svc.PlanBatches(context.Background(), surveyID)
	require.NoError(t, err)

	total := 0
	for _, b := range batches {
		assert.LessOrEqual(t, len(b.Records), 3)
		total += len(b.Records)
	}
	assert.Equal(t, 4, total)
}
