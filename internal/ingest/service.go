package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/extract"
	"github.com/avalette/metreur-tracker/internal/repository"
)

// Extractor is the slice of the orchestrator the ingest flow needs.
type Extractor interface {
	Extract(ctx context.Context, doc extract.DocumentInput) (*entity.ExtractionResult, error)
}

// Service ties one extraction run to its persistence: an extraction job row
// tracks the attempt, and on success the survey plus its fixture records land
// in a single transaction.
type Service struct {
	extractor Extractor
	surveys   repository.SurveyRepository
	jobs      repository.ExtractionJobRepository
	logger    *slog.Logger
}

func NewService(extractor Extractor, surveys repository.SurveyRepository, jobs repository.ExtractionJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{extractor: extractor, surveys: surveys, jobs: jobs, logger: logger}
}

// Output carries everything the caller needs after a successful ingest.
type Output struct {
	Survey *entity.Survey
	Result *entity.ExtractionResult
}

// IngestDocument runs the full pipeline for one uploaded scan: job start,
// extraction with retries, transactional persistence, job completion. The
// job row survives failed extractions so operators can see what was tried.
func (s *Service) IngestDocument(ctx context.Context, reference, filename string, content []byte) (*Output, error) {
	if len(content) == 0 {
		return nil, common.InvalidArgumentError("empty document")
	}
	ext := filepath.Ext(filename)
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return nil, common.InvalidArgumentErrorf("unsupported file extension %q", ext)
	}

	job, err := s.jobs.Start(ctx, filename, format)
	if err != nil {
		return nil, common.WrapError(err, "starting extraction job")
	}

	result, err := s.extractor.Extract(ctx, extract.DocumentInput{
		Data:     content,
		MimeType: constants.MimeTypeForExt(ext),
		Filename: filename,
	})
	if err != nil {
		if ferr := s.jobs.FinishFailure(ctx, job.ID, err.Error()); ferr != nil {
			s.logger.Error("job_failure_not_recorded", "job_id", job.ID, "error", ferr)
		}
		return nil, err
	}

	if !result.IsValid {
		s.logger.Warn("document_flagged_invalid",
			"job_id", job.ID,
			"reason", result.Invalidity,
			"confidence", result.Confidence)
	}

	for _, failure := range result.Failures {
		s.logger.Warn("record_rejected",
			"job_id", job.ID,
			"index", failure.Index,
			"field", failure.Field,
			"reason", failure.Message)
	}

	survey, err := s.surveys.CreateWithRecords(ctx, &repository.CreateSurveyRequest{
		Reference:      referenceOrDefault(reference, filename),
		SourceFilename: filename,
		Confidence:     result.Confidence,
		Warnings:       result.Warnings,
		Client:         result.Client,
		Seeds:          result.Records,
	})
	if err != nil {
		if ferr := s.jobs.FinishFailure(ctx, job.ID, err.Error()); ferr != nil {
			s.logger.Error("job_failure_not_recorded", "job_id", job.ID, "error", ferr)
		}
		return nil, common.WrapError(err, "persisting survey")
	}

	raw, merr := json.Marshal(result)
	if merr != nil {
		raw = nil
	}
	if err := s.jobs.FinishSuccess(ctx, job.ID, survey.ID, result.Confidence, result.RetryCount, result.ModelName, result.TokensUsed, raw); err != nil {
		// the survey is already committed, so only log
		s.logger.Error("job_success_not_recorded", "job_id", job.ID, "error", err)
	}

	s.logger.Info("document_ingested",
		"request_id", common.RequestIDFromContext(ctx),
		"survey_id", survey.ID,
		"records", len(result.Records),
		"rejected", len(result.Failures),
		"confidence", result.Confidence,
		"retries", result.RetryCount)
	return &Output{Survey: survey, Result: result}, nil
}

func referenceOrDefault(reference, filename string) string {
	if reference != "" {
		return reference
	}
	base := filepath.Base(filename)
	return fmt.Sprintf("METRE-%s", base[:len(base)-len(filepath.Ext(base))])
}

// IsRetryExhaustion reports whether err is the terminal failure produced when
// every extraction attempt was consumed.
func IsRetryExhaustion(err error) bool {
	var exErr *extract.ExtractionError
	return errors.As(err, &exErr)
}
