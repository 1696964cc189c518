package record

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/llm"
)

func TestParsePayloadShapeGate(t *testing.T) {
	payload, err := ParsePayload([]byte(`{
		"menuiseries": [{"intitule": "Fenêtre", "largeur": 1200, "hauteur": 1350}],
		"metadata": {"is_valid_document": true, "confidence": 0.92}
	}`))
	require.NoError(t, err)
	assert.Len(t, payload.Menuiseries, 1)
	assert.InDelta(t, 0.92, float64(payload.Metadata.Confidence), 1e-6)
}

func TestParsePayloadRejectsMissingMetadata(t *testing.T) {
	_, err := ParsePayload([]byte(`{"menuiseries": []}`))
	assert.Error(t, err)
}

func TestParsePayloadRejectsConfidenceOutOfRange(t *testing.T) {
	_, err := ParsePayload([]byte(`{
		"menuiseries": [],
		"metadata": {"is_valid_document": true, "confidence": 1.7}
	}`))
	assert.Error(t, err)
}

func TestValidateSeedsAcceptsGoodRecords(t *testing.T) {
	payload := &llm.SurveyPayload{
		Menuiseries: []map[string]any{
			{"repere": "F1", "intitule": "Fenêtre 2 vantaux", "largeur": 1200.0, "hauteur": 1350.0, "gamme": "pvc"},
			{"intitule": "Porte d'entrée", "largeur": 900.0, "hauteur": 2150.0},
		},
	}

	seeds, failures := ValidateSeeds(payload)
	require.Empty(t, failures)
	require.Len(t, seeds, 2)

	assert.Equal(t, "Fenêtre 2 vantaux", seeds[0].Title)
	require.NotNil(t, seeds[0].Repere)
	assert.Equal(t, "F1", *seeds[0].Repere)
	assert.Equal(t, 0, seeds[0].Position)
	assert.Equal(t, "PVC", seeds[0].Fields[constants.FieldGamme])
	assert.Equal(t, 1, seeds[1].Position)
	assert.Nil(t, seeds[1].Repere)
}

// A record missing a required field fails alone; its siblings survive.
func TestValidateSeedsSiblingSurvivesFailure(t *testing.T) {
	payload := &llm.SurveyPayload{
		Menuiseries: []map[string]any{
			{"intitule": "Fenêtre", "largeur": 1200.0, "hauteur": 1350.0},
			{"intitule": "Porte", "largeur": 900.0}, // hauteur dropped by the model
		},
	}

	seeds, failures := ValidateSeeds(payload)
	require.Len(t, seeds, 1)
	require.Len(t, failures, 1)
	assert.Equal(t, 1, failures[0].Index)
	assert.Equal(t, constants.FieldHauteur, failures[0].Field)
}

func TestValidateSeedsRejectsImplausibleDimensions(t *testing.T) {
	cases := []struct {
		name    string
		largeur float64
	}{
		{"below range", 40},
		{"above range", 12000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := &llm.SurveyPayload{
				Menuiseries: []map[string]any{
					{"intitule": "Fenêtre", "largeur": tc.largeur, "hauteur": 1350.0},
				},
			}
			seeds, failures := ValidateSeeds(payload)
			assert.Empty(t, seeds)
			require.Len(t, failures, 1)
			assert.Equal(t, constants.FieldLargeur, failures[0].Field)
		})
	}
}

// Non-finite dimensions slip past a plain bounds comparison and would later
// break JSON encoding of the whole survey, so they must fail alone here.
func TestValidateSeedsRejectsNonFiniteDimensions(t *testing.T) {
	cases := []struct {
		name    string
		largeur any
	}{
		{"NaN string", "NaN"},
		{"Inf string", "Inf"},
		{"NaN value", math.NaN()},
		{"Inf value", math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := &llm.SurveyPayload{
				Menuiseries: []map[string]any{
					{"intitule": "Fenêtre", "largeur": tc.largeur, "hauteur": 1350.0},
					{"intitule": "Porte", "largeur": 900.0, "hauteur": 2150.0},
				},
			}
			seeds, failures := ValidateSeeds(payload)
			require.Len(t, failures, 1)
			assert.Equal(t, constants.FieldLargeur, failures[0].Field)
			// sibling survives on its own
			require.Len(t, seeds, 1)
			assert.Equal(t, "Porte", seeds[0].Title)
		})
	}
}

func TestValidateSeedsRequiresTitle(t *testing.T) {
	payload := &llm.SurveyPayload{
		Menuiseries: []map[string]any{
			{"largeur": 1200.0, "hauteur": 1350.0},
		},
	}
	seeds, failures := ValidateSeeds(payload)
	assert.Empty(t, seeds)
	require.Len(t, failures, 1)
	assert.Equal(t, constants.FieldIntitule, failures[0].Field)
}

func TestValidateSeedsPositionSkipsFailures(t *testing.T) {
	payload := &llm.SurveyPayload{
		Menuiseries: []map[string]any{
			{"intitule": "Fenêtre A", "largeur": 1200.0, "hauteur": 1350.0},
			{"largeur": 900.0, "hauteur": 2000.0},
			{"intitule": "Fenêtre B", "largeur": 800.0, "hauteur": 950.0},
		},
	}
	seeds, failures := ValidateSeeds(payload)
	require.Len(t, seeds, 2)
	require.Len(t, failures, 1)
	// positions stay contiguous for the surviving records
	assert.Equal(t, 0, seeds[0].Position)
	assert.Equal(t, 1, seeds[1].Position)
	// while the failure reports the original payload index
	assert.Equal(t, 1, failures[0].Index)
}
