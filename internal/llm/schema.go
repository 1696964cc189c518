package llm

import "github.com/avalette/metreur-tracker/constants"

// BuildSurveyJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We pass it to the model as a structured output constraint and
// the record validator compiles the same schema locally.
func BuildSurveyJSONSchema() map[string]any {
	menuiserie := map[string]any{
		"type": "object",
		"properties": map[string]any{
			constants.FieldRepere:              map[string]any{"type": "string"},
			constants.FieldIntitule:            map[string]any{"type": "string", "minLength": 1},
			constants.FieldLargeur:             dimensionProp(),
			constants.FieldHauteur:             dimensionProp(),
			constants.FieldGamme:               map[string]any{"type": "string"},
			constants.FieldTypePose:            map[string]any{"type": "string"},
			constants.FieldSensOuverture:       map[string]any{"type": "string"},
			constants.FieldCouleurIntercalaire: map[string]any{"type": "string"},
			constants.FieldMateriauRail:        map[string]any{"type": "string"},
			constants.FieldImageRef:            map[string]any{"type": "string"},
		},
		"required": []string{
			constants.FieldIntitule,
			constants.FieldLargeur,
			constants.FieldHauteur,
		},
	}

	metadata := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_valid_document": map[string]any{"type": "boolean"},
			"invalid_reason":    map[string]any{"type": "string"},
			"confidence":        map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"warnings":          map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"client": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"nom":       map[string]any{"type": "string"},
					"adresse":   map[string]any{"type": "string"},
					"telephone": map[string]any{"type": "string"},
					"email":     map[string]any{"type": "string"},
				},
			},
		},
		"required": []string{"is_valid_document", "confidence"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"menuiseries": map[string]any{"type": "array", "items": menuiserie},
			"metadata":    metadata,
		},
		"required": []string{"menuiseries", "metadata"},
	}
}

func dimensionProp() map[string]any {
	return map[string]any{
		"type":    "number",
		"minimum": float64(constants.DimensionMinMM),
		"maximum": float64(constants.DimensionMaxMM),
	}
}
