package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/gen/ent"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/utils"
)

type FixtureRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.FixtureRecord, error)
	// ListBySurvey returns the survey's records ordered by position.
	ListBySurvey(ctx context.Context, surveyID uuid.UUID) ([]*entity.FixtureRecord, error)
	// ListValidated returns the survey's validated records ordered by position.
	ListValidated(ctx context.Context, surveyID uuid.UUID) ([]*entity.FixtureRecord, error)
	// SaveEdits stores recomputed modified data, deviations, and status.
	// original_data is immutable and deliberately not touchable here.
	SaveEdits(ctx context.Context, rec *entity.FixtureRecord) error
	// SaveValidation persists the validation flag and timestamp.
	SaveValidation(ctx context.Context, rec *entity.FixtureRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type fixtureRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFixtureRepository(client *ent.Client, logger *slog.Logger) FixtureRepository {
	return &fixtureRepository{client: client, logger: logger}
}

func (r *fixtureRepository) Get(ctx context.Context, id uuid.UUID) (*entity.FixtureRecord, error) {
	rec, err := r.client.FixtureRecord.Query().Where(fixturerecord.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToFixtureRecord(rec)
}

func (r *fixtureRepository) ListBySurvey(ctx context.Context, surveyID uuid.UUID) ([]*entity.FixtureRecord, error) {
	recs, err := r.client.FixtureRecord.Query().
		Where(fixturerecord.SurveyID(surveyID)).
		Order(fixturerecord.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list fixtures", "survey_id", surveyID, "error", err)
		return nil, err
	}
	return toFixtureRecords(recs)
}

func (r *fixtureRepository) ListValidated(ctx context.Context, surveyID uuid.UUID) ([]*entity.FixtureRecord, error) {
	recs, err := r.client.FixtureRecord.Query().
		Where(fixturerecord.SurveyID(surveyID), fixturerecord.IsValidated(true)).
		Order(fixturerecord.ByPosition()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list validated fixtures", "survey_id", surveyID, "error", err)
		return nil, err
	}
	return toFixtureRecords(recs)
}

func (r *fixtureRepository) SaveEdits(ctx context.Context, rec *entity.FixtureRecord) error {
	modified, err := json.Marshal(rec.ModifiedData)
	if err != nil {
		return fmt.Errorf("marshal modified data: %w", err)
	}
	deviations, err := json.Marshal(rec.Deviations)
	if err != nil {
		return fmt.Errorf("marshal deviations: %w", err)
	}
	_, err = r.client.FixtureRecord.
		UpdateOneID(rec.ID).
		SetModifiedData(modified).
		SetDeviations(deviations).
		SetStatus(string(rec.Status)).
		Save(ctx)
	if err != nil {
		r.logger.Error("fixture edit save failed", "record_id", rec.ID, "error", err)
		return err
	}
	r.logger.Info("fixture edits saved", "record_id", rec.ID, "status", rec.Status, "deviations", len(rec.Deviations))
	return nil
}

func (r *fixtureRepository) SaveValidation(ctx context.Context, rec *entity.FixtureRecord) error {
	update := r.client.FixtureRecord.
		UpdateOneID(rec.ID).
		SetIsValidated(rec.IsValidated).
		SetStatus(string(rec.Status))
	if rec.ValidatedAt != nil {
		update.SetValidatedAt(*rec.ValidatedAt)
	}
	if _, err := update.Save(ctx); err != nil {
		r.logger.Error("fixture validation save failed", "record_id", rec.ID, "error", err)
		return err
	}
	r.logger.Info("fixture validated", "record_id", rec.ID, "validated_at", rec.ValidatedAt)
	return nil
}

func (r *fixtureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.FixtureRecord.DeleteOneID(id).Exec(ctx)
}

func toFixtureRecords(recs []*ent.FixtureRecord) ([]*entity.FixtureRecord, error) {
	result := make([]*entity.FixtureRecord, len(recs))
	for i, rec := range recs {
		out, err := utils.ToFixtureRecord(rec)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}
