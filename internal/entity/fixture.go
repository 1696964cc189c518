package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/constants"
)

// FixtureRecord represents one window/door unit within a survey.
//
// OriginalData is the extraction as validated and normalized at import time
// and is never mutated afterwards. ModifiedData is absent until the first
// operator edit; Deviations are fully recomputed from the pair on every edit.
type FixtureRecord struct {
	ID           uuid.UUID              `json:"id"`
	SurveyID     uuid.UUID              `json:"survey_id"`
	Repere       *string                `json:"repere,omitempty"`
	Title        string                 `json:"title"`
	Position     int                    `json:"position"`
	OriginalData map[string]any         `json:"original_data"`
	ModifiedData map[string]any         `json:"modified_data,omitempty"`
	Deviations   map[string]Deviation   `json:"deviations,omitempty"`
	IsValidated  bool                   `json:"is_validated"`
	ValidatedAt  *time.Time             `json:"validated_at,omitempty"`
	Status       constants.RecordStatus `json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// HasModifications reports whether the record carries at least one edit.
func (r *FixtureRecord) HasModifications() bool {
	return len(r.ModifiedData) > 0
}

// EffectiveData returns the operator view of a field: the modified value when
// present, the original otherwise.
func (r *FixtureRecord) EffectiveData() map[string]any {
	if len(r.ModifiedData) == 0 {
		return r.OriginalData
	}
	out := make(map[string]any, len(r.OriginalData)+len(r.ModifiedData))
	for k, v := range r.OriginalData {
		out[k] = v
	}
	for k, v := range r.ModifiedData {
		out[k] = v
	}
	return out
}

// Deviation is one per-field difference between original and modified data.
// Difference and Percentage are set for numeric fields only; Percentage is
// absent when the original value is exactly zero.
type Deviation struct {
	Field      string             `json:"field"`
	Original   any                `json:"original"`
	Modified   any                `json:"modified"`
	Difference *float64           `json:"difference,omitempty"`
	Percentage *float64           `json:"percentage,omitempty"`
	Severity   constants.Severity `json:"severity"`
}
