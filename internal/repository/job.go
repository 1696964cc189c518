package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/gen/ent"
)

type ExtractionJobRepository interface {
	Start(ctx context.Context, sourceFilename, format string) (*ent.ExtractionJob, error)
	FinishSuccess(ctx context.Context, jobID, surveyID uuid.UUID, confidence float32, retryCount int, modelName string, tokensUsed int, rawJSON json.RawMessage) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type extractionJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionJobRepository(entc *ent.Client, log *slog.Logger) ExtractionJobRepository {
	return &extractionJobRepo{ent: entc, log: log}
}

func (r *extractionJobRepo) Start(ctx context.Context, sourceFilename, format string) (*ent.ExtractionJob, error) {
	job, err := r.ent.ExtractionJob.
		Create().
		SetSourceFilename(sourceFilename).
		SetFormat(format).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job start failed", "filename", sourceFilename, "err", err)
		return nil, err
	}
	r.log.Info("extraction_job started", "job_id", job.ID, "filename", sourceFilename, "format", format)
	return job, nil
}

func (r *extractionJobRepo) FinishSuccess(ctx context.Context, jobID, surveyID uuid.UUID, confidence float32, retryCount int, modelName string, tokensUsed int, rawJSON json.RawMessage) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetSurveyID(surveyID).
		SetConfidence(confidence).
		SetRetryCount(retryCount).
		SetModelName(modelName).
		SetTokensUsed(tokensUsed).
		SetRawJSON(rawJSON).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusExtractOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job finish(OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("extraction_job finished (EXTRACT_OK)", "job_id", jobID, "survey_id", surveyID, "retry_count", retryCount)
	return nil
}

func (r *extractionJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ExtractionJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("extraction_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}
