package export

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/repository"
)

type stubSurveys struct{ survey *entity.Survey }

func (s *stubSurveys) CreateWithRecords(context.Context, *repository.CreateSurveyRequest) (*entity.Survey, error) {
	panic("unused in export tests")
}

func (s *stubSurveys) Get(context.Context, uuid.UUID) (*entity.Survey, error) {
	return s.survey, nil
}

func (s *stubSurveys) List(context.Context) ([]*entity.Survey, error) { return nil, nil }

func (s *stubSurveys) Delete(context.Context, uuid.UUID) error { return nil }

type stubFixtures struct{ recs []*entity.FixtureRecord }

func (s *stubFixtures) Get(context.Context, uuid.UUID) (*entity.FixtureRecord, error) {
	panic("unused in export tests")
}

func (s *stubFixtures) ListBySurvey(context.Context, uuid.UUID) ([]*entity.FixtureRecord, error) {
	return s.recs, nil
}

func (s *stubFixtures) ListValidated(context.Context, uuid.UUID) ([]*entity.FixtureRecord, error) {
	return nil, nil
}

func (s *stubFixtures) SaveEdits(context.Context, *entity.FixtureRecord) error { return nil }

func (s *stubFixtures) SaveValidation(context.Context, *entity.FixtureRecord) error { return nil }

func (s *stubFixtures) Delete(context.Context, uuid.UUID) error { return nil }

func newTestService(survey *entity.Survey, recs []*entity.FixtureRecord) *Service {
	return NewService(&stubSurveys{survey: survey}, &stubFixtures{recs: recs}, nil)
}

func TestExportSurveyXLSX(t *testing.T) {
	surveyID := uuid.New()
	pct := 1.19
	diff := 50.0
	recs := []*entity.FixtureRecord{
		{
			ID:       uuid.New(),
			SurveyID: surveyID,
			Title:    "Fenêtre 2 vantaux",
			OriginalData: map[string]any{
				constants.FieldIntitule: "Fenêtre 2 vantaux",
				constants.FieldLargeur:  4200.0,
				constants.FieldHauteur:  2400.0,
				constants.FieldGamme:    "PVC",
			},
			ModifiedData: map[string]any{constants.FieldLargeur: 4250.0},
			Deviations: map[string]entity.Deviation{
				constants.FieldLargeur: {
					Field:      constants.FieldLargeur,
					Original:   4200.0,
					Modified:   4250.0,
					Difference: &diff,
					Percentage: &pct,
					Severity:   constants.SeverityLow,
				},
			},
			Status: constants.StatusInProgress,
		},
		{
			ID:       uuid.New(),
			SurveyID: surveyID,
			Title:    "Porte d'entrée",
			OriginalData: map[string]any{
				constants.FieldIntitule: "Porte d'entrée",
				constants.FieldLargeur:  900.0,
				constants.FieldHauteur:  2150.0,
			},
			Status: constants.StatusImported,
		},
	}
	svc := newTestService(&entity.Survey{ID: surveyID, Reference: "METRE-2026-007"}, recs)

	data, filename, err := svc.ExportSurveyXLSX(context.Background(), surveyID)
	require.NoError(t, err)
	assert.Equal(t, "METRE-2026-007.xlsx", filename)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows("Menuiseries")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Repère", rows[0][0])

	// effective value wins over the original
	assert.Equal(t, "4250", rows[1][2])
	assert.Contains(t, rows[1][10], "largeur: 4200 → 4250")
	assert.Contains(t, rows[1][10], "[low]")
	assert.Equal(t, string(constants.StatusInProgress), rows[1][9])

	// untouched record exports with empty deviations
	assert.Equal(t, string(constants.StatusImported), rows[2][9])
}

func TestDeviationSummaryDeterministicOrder(t *testing.T) {
	devs := map[string]entity.Deviation{
		"largeur": {Field: "largeur", Original: 100.0, Modified: 120.0, Severity: constants.SeverityHigh},
		"hauteur": {Field: "hauteur", Original: 200.0, Modified: 210.0, Severity: constants.SeverityMedium},
	}
	got := deviationSummary(devs)
	assert.Equal(t, "hauteur: 200 → 210 [medium]; largeur: 100 → 120 [high]", got)
}
