package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/llm"
)

// ValidationError reports one seed that failed required-field checks. It
// never aborts extraction of sibling records in the same document.
type ValidationError struct {
	Index   int
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d: field %q %s", e.Index, e.Field, e.Message)
}

// payloadGateSchema is the top-level shape gate applied to the parsed model
// output. Per-record requirements are deliberately not part of it: a record
// missing a required field must fail alone, not take its siblings with it.
var payloadGateSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"menuiseries": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "object"},
		},
		"metadata": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"is_valid_document": map[string]any{"type": "boolean"},
				"confidence":        map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			},
			"required": []string{"is_valid_document", "confidence"},
		},
	},
	"required": []string{"menuiseries", "metadata"},
}

// ParsePayload parses and shape-gates one extracted JSON document. Any
// failure here is retryable at the orchestrator.
func ParsePayload(doc []byte) (*llm.SurveyPayload, error) {
	if err := ValidateJSONAgainstSchema(payloadGateSchema, doc); err != nil {
		return nil, err
	}
	var payload llm.SurveyPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return &payload, nil
}

// ValidateSeeds normalizes every menuiserie entry and applies per-record
// required-field and plausibility checks. Valid seeds and record failures
// are returned side by side.
func ValidateSeeds(payload *llm.SurveyPayload) ([]entity.RecordSeed, []*ValidationError) {
	var seeds []entity.RecordSeed
	var failures []*ValidationError

	for i, raw := range payload.Menuiseries {
		fields := NormalizeFields(raw)
		if vErr := validateRecord(i, fields); vErr != nil {
			failures = append(failures, vErr)
			continue
		}

		seed := entity.RecordSeed{
			Title:    fields[constants.FieldIntitule].(string),
			Position: len(seeds),
			Fields:   fields,
		}
		if rep, ok := fields[constants.FieldRepere].(string); ok {
			seed.Repere = &rep
		}
		seeds = append(seeds, seed)
	}
	return seeds, failures
}

func validateRecord(index int, fields map[string]any) *ValidationError {
	title, ok := fields[constants.FieldIntitule].(string)
	if !ok || title == "" {
		return &ValidationError{Index: index, Field: constants.FieldIntitule, Message: "is required"}
	}
	for _, f := range constants.NumericFields {
		v, ok := fields[f].(float64)
		if !ok {
			return &ValidationError{Index: index, Field: f, Message: "is required and must be numeric"}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Index: index, Field: f, Message: "must be a finite number"}
		}
		if v < constants.DimensionMinMM || v > constants.DimensionMaxMM {
			return &ValidationError{
				Index: index, Field: f,
				Message: fmt.Sprintf("must be between %d and %d mm, got %v", constants.DimensionMinMM, constants.DimensionMaxMM, v),
			}
		}
	}
	return nil
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
