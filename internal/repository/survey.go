package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/gen/ent"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/utils"
)

// CreateSurveyRequest wraps the consumed extraction result for persistence.
type CreateSurveyRequest struct {
	Reference      string
	SourceFilename string
	Confidence     float32
	Warnings       []string
	Client         *entity.ClientIdentity
	Seeds          []entity.RecordSeed
}

type SurveyRepository interface {
	// CreateWithRecords creates the survey and its fixture records in one
	// transaction; a failed extraction never leaves partial rows behind.
	CreateWithRecords(ctx context.Context, req *CreateSurveyRequest) (*entity.Survey, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Survey, error)
	List(ctx context.Context) ([]*entity.Survey, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type surveyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSurveyRepository(client *ent.Client, logger *slog.Logger) SurveyRepository {
	return &surveyRepository{client: client, logger: logger}
}

func (r *surveyRepository) CreateWithRecords(ctx context.Context, req *CreateSurveyRequest) (*entity.Survey, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		r.logger.Error("survey tx begin failed", "error", err)
		return nil, err
	}

	create := tx.Survey.Create().
		SetReference(req.Reference).
		SetSourceFilename(req.SourceFilename).
		SetConfidence(req.Confidence).
		SetWarnings(req.Warnings)
	if c := req.Client; c != nil {
		if c.Name != "" {
			create.SetClientName(c.Name)
		}
		if c.Address != "" {
			create.SetClientAddress(c.Address)
		}
		if c.Phone != "" {
			create.SetClientPhone(c.Phone)
		}
		if c.Email != "" {
			create.SetClientEmail(c.Email)
		}
	}
	sv, err := create.Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("create survey: %w", err))
	}

	for _, seed := range req.Seeds {
		original, err := json.Marshal(seed.Fields)
		if err != nil {
			return nil, rollback(tx, fmt.Errorf("marshal original data: %w", err))
		}
		rc := tx.FixtureRecord.Create().
			SetSurveyID(sv.ID).
			SetTitle(seed.Title).
			SetPosition(seed.Position).
			SetOriginalData(original)
		if seed.Repere != nil {
			rc.SetRepere(*seed.Repere)
		}
		if _, err := rc.Save(ctx); err != nil {
			return nil, rollback(tx, fmt.Errorf("create fixture record %d: %w", seed.Position, err))
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("survey tx commit failed", "error", err)
		return nil, err
	}
	r.logger.Info("survey created", "survey_id", sv.ID, "records", len(req.Seeds))
	return utils.ToSurvey(sv), nil
}

func (r *surveyRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Survey, error) {
	sv, err := r.client.Survey.Query().Where(survey.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToSurvey(sv), nil
}

func (r *surveyRepository) List(ctx context.Context) ([]*entity.Survey, error) {
	svs, err := r.client.Survey.Query().Order(survey.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list surveys", "error", err)
		return nil, err
	}
	result := make([]*entity.Survey, len(svs))
	for i, sv := range svs {
		result[i] = utils.ToSurvey(sv)
	}
	return result, nil
}

func (r *surveyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Survey.DeleteOneID(id).Exec(ctx)
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}
