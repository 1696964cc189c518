package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalette/metreur-tracker/gen/ent"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/extract"
	"github.com/avalette/metreur-tracker/internal/repository"
)

type fakeExtractor struct {
	result *entity.ExtractionResult
	err    error
}

func (f *fakeExtractor) Extract(context.Context, extract.DocumentInput) (*entity.ExtractionResult, error) {
	return f.result, f.err
}

type fakeSurveys struct {
	created *repository.CreateSurveyRequest
	err     error
}

func (f *fakeSurveys) CreateWithRecords(_ context.Context, req *repository.CreateSurveyRequest) (*entity.Survey, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = req
	return &entity.Survey{ID: uuid.New(), Reference: req.Reference}, nil
}

func (f *fakeSurveys) Get(context.Context, uuid.UUID) (*entity.Survey, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeSurveys) List(context.Context) ([]*entity.Survey, error) { return nil, nil }

func (f *fakeSurveys) Delete(context.Context, uuid.UUID) error { return nil }

type fakeJobs struct {
	started   int
	successes int
	failures  []string
}

func (f *fakeJobs) Start(context.Context, string, string) (*ent.ExtractionJob, error) {
	f.started++
	return &ent.ExtractionJob{ID: uuid.New()}, nil
}

func (f *fakeJobs) FinishSuccess(_ context.Context, _, _ uuid.UUID, _ float32, _ int, _ string, _ int, _ json.RawMessage) error {
	f.successes++
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, message string) error {
	f.failures = append(f.failures, message)
	return nil
}

func goodResult() *entity.ExtractionResult {
	repere := "R1"
	return &entity.ExtractionResult{
		Records: []entity.RecordSeed{
			{Repere: &repere, Title: "Fenêtre 1 vantail", Position: 0, Fields: map[string]any{"largeur": 900.0, "hauteur": 1200.0}},
		},
		IsValid:    true,
		Confidence: 0.92,
		ModelName:  "gpt-4o-mini",
	}
}

func TestIngestDocumentHappyPath(t *testing.T) {
	surveys := &fakeSurveys{}
	jobs := &fakeJobs{}
	svc := NewService(&fakeExtractor{result: goodResult()}, surveys, jobs, nil)

	out, err := svc.IngestDocument(context.Background(), "METRE-2026-001", "releve.pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	require.NotNil(t, out.Survey)
	assert.Equal(t, "METRE-2026-001", surveys.created.Reference)
	assert.Len(t, surveys.created.Seeds, 1)
	assert.Equal(t, 1, jobs.started)
	assert.Equal(t, 1, jobs.successes)
	assert.Empty(t, jobs.failures)
}

func TestIngestDocumentDefaultsReferenceFromFilename(t *testing.T) {
	surveys := &fakeSurveys{}
	svc := NewService(&fakeExtractor{result: goodResult()}, surveys, &fakeJobs{}, nil)

	_, err := svc.IngestDocument(context.Background(), "", "chantier-12.pdf", []byte("%PDF-1.7"))
	require.NoError(t, err)
	assert.Equal(t, "METRE-chantier-12", surveys.created.Reference)
}

func TestIngestDocumentExtractionFailureRecordsJob(t *testing.T) {
	jobs := &fakeJobs{}
	cause := &extract.ExtractionError{Attempts: 3, LastCause: errors.New("model unreachable")}
	svc := NewService(&fakeExtractor{err: cause}, &fakeSurveys{}, jobs, nil)

	_, err := svc.IngestDocument(context.Background(), "", "releve.pdf", []byte("%PDF-1.7"))
	require.Error(t, err)
	assert.True(t, IsRetryExhaustion(err))
	require.Len(t, jobs.failures, 1)
	assert.Equal(t, 0, jobs.successes)
}

func TestIngestDocumentRejectsUnknownExtension(t *testing.T) {
	jobs := &fakeJobs{}
	svc := NewService(&fakeExtractor{result: goodResult()}, &fakeSurveys{}, jobs, nil)

	_, err := svc.IngestDocument(context.Background(), "", "releve.docx", []byte("PK"))
	require.Error(t, err)
	assert.Equal(t, 0, jobs.started, "no job is opened for an unsupported format")
}

func TestIngestDocumentPersistenceFailureRecordsJob(t *testing.T) {
	jobs := &fakeJobs{}
	surveys := &fakeSurveys{err: errors.New("connection reset")}
	svc := NewService(&fakeExtractor{result: goodResult()}, surveys, jobs, nil)

	_, err := svc.IngestDocument(context.Background(), "", "releve.pdf", []byte("%PDF-1.7"))
	require.Error(t, err)
	require.Len(t, jobs.failures, 1)
	assert.Contains(t, jobs.failures[0], "connection reset")
}
