package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/gen/ent"
	metreurpb "github.com/avalette/metreur-tracker/gen/proto/metreur/v1"
	"github.com/avalette/metreur-tracker/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ToSurvey converts an ent row into the transfer struct.
func ToSurvey(e *ent.Survey) *entity.Survey {
	return &entity.Survey{
		ID:             e.ID,
		Reference:      e.Reference,
		ClientName:     e.ClientName,
		ClientAddress:  e.ClientAddress,
		ClientPhone:    e.ClientPhone,
		ClientEmail:    e.ClientEmail,
		SourceFilename: e.SourceFilename,
		Confidence:     e.Confidence,
		Warnings:       e.Warnings,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToFixtureRecord converts an ent row into the transfer struct, decoding the
// JSON data columns.
func ToFixtureRecord(e *ent.FixtureRecord) (*entity.FixtureRecord, error) {
	rec := &entity.FixtureRecord{
		ID:          e.ID,
		SurveyID:    e.SurveyID,
		Repere:      e.Repere,
		Title:       e.Title,
		Position:    e.Position,
		IsValidated: e.IsValidated,
		ValidatedAt: e.ValidatedAt,
		Status:      constants.RecordStatus(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if len(e.OriginalData) > 0 {
		if err := json.Unmarshal(e.OriginalData, &rec.OriginalData); err != nil {
			return nil, fmt.Errorf("decode original_data for %s: %w", e.ID, err)
		}
	}
	if len(e.ModifiedData) > 0 {
		if err := json.Unmarshal(e.ModifiedData, &rec.ModifiedData); err != nil {
			return nil, fmt.Errorf("decode modified_data for %s: %w", e.ID, err)
		}
	}
	if len(e.Deviations) > 0 {
		if err := json.Unmarshal(e.Deviations, &rec.Deviations); err != nil {
			return nil, fmt.Errorf("decode deviations for %s: %w", e.ID, err)
		}
	}
	return rec, nil
}

func ToPBSurvey(s *entity.Survey) *metreurpb.Survey {
	return &metreurpb.Survey{
		Id:             s.ID.String(),
		Reference:      s.Reference,
		ClientName:     strOrEmpty(s.ClientName),
		ClientAddress:  strOrEmpty(s.ClientAddress),
		ClientPhone:    strOrEmpty(s.ClientPhone),
		ClientEmail:    strOrEmpty(s.ClientEmail),
		SourceFilename: s.SourceFilename,
		Confidence:     s.Confidence,
		Warnings:       s.Warnings,
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBFixture(r *entity.FixtureRecord) (*metreurpb.FixtureRecord, error) {
	original, err := json.Marshal(r.OriginalData)
	if err != nil {
		return nil, fmt.Errorf("encode original_data: %w", err)
	}
	out := &metreurpb.FixtureRecord{
		Id:           r.ID.String(),
		SurveyId:     r.SurveyID.String(),
		Repere:       strOrEmpty(r.Repere),
		Title:        r.Title,
		Position:     int32(r.Position),
		OriginalData: string(original),
		IsValidated:  r.IsValidated,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if len(r.ModifiedData) > 0 {
		modified, err := json.Marshal(r.ModifiedData)
		if err != nil {
			return nil, fmt.Errorf("encode modified_data: %w", err)
		}
		out.ModifiedData = string(modified)
	}
	for field, d := range r.Deviations {
		pb := &metreurpb.Deviation{
			Field:    field,
			Severity: string(d.Severity),
			Original: fmt.Sprintf("%v", d.Original),
			Modified: fmt.Sprintf("%v", d.Modified),
		}
		if d.Difference != nil {
			pb.Difference = *d.Difference
			pb.HasDifference = true
		}
		if d.Percentage != nil {
			pb.Percentage = *d.Percentage
			pb.HasPercentage = true
		}
		out.Deviations = append(out.Deviations, pb)
	}
	if r.ValidatedAt != nil {
		out.ValidatedAt = r.ValidatedAt.UTC().Format(time.RFC3339)
	}
	return out, nil
}
