package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avalette/metreur-tracker/constants"
)

func TestNormalizeFieldsCaseFolding(t *testing.T) {
	out := NormalizeFields(map[string]any{
		constants.FieldIntitule:      "Fenêtre 2 vantaux",
		constants.FieldLargeur:       1200.0,
		constants.FieldHauteur:       1350.0,
		constants.FieldGamme:         "alu",
		constants.FieldTypePose:      "RENOVATION",
		constants.FieldSensOuverture: "Gauche",
	})

	assert.Equal(t, "ALU", out[constants.FieldGamme], "gamme codes are upper-cased")
	assert.Equal(t, "renovation", out[constants.FieldTypePose], "installation types are lower-cased")
	assert.Equal(t, "gauche", out[constants.FieldSensOuverture])
}

func TestNormalizeFieldsSynonyms(t *testing.T) {
	out := NormalizeFields(map[string]any{
		constants.FieldGamme:    "Aluminium",
		constants.FieldTypePose: "réNovation",
	})
	assert.Equal(t, "ALU", out[constants.FieldGamme])
	assert.Equal(t, "renovation", out[constants.FieldTypePose])
}

func TestNormalizeFieldsPreservesUnknownEnumValues(t *testing.T) {
	out := NormalizeFields(map[string]any{
		constants.FieldGamme:         "gamme excellence 2027",
		constants.FieldSensOuverture: "Oscillo-Battant",
	})

	// vocabulary drift is kept as case-folded free text, never rejected
	assert.Equal(t, "GAMME EXCELLENCE 2027", out[constants.FieldGamme])
	assert.Equal(t, "oscillo-battant", out[constants.FieldSensOuverture])
}

func TestNormalizeFieldsCoercesNumericStrings(t *testing.T) {
	out := NormalizeFields(map[string]any{
		constants.FieldLargeur: "1200",
		constants.FieldHauteur: "1350,5",
	})
	assert.Equal(t, 1200.0, out[constants.FieldLargeur])
	assert.Equal(t, 1350.5, out[constants.FieldHauteur])
}

// ParseFloat happily reads "NaN" and "Inf"; those must stay free text so the
// validator rejects them instead of a non-finite number leaking downstream.
func TestNormalizeFieldsRefusesNonFiniteStrings(t *testing.T) {
	out := NormalizeFields(map[string]any{
		constants.FieldLargeur: "NaN",
		constants.FieldHauteur: "+Inf",
	})
	assert.Equal(t, "NaN", out[constants.FieldLargeur])
	assert.Equal(t, "+Inf", out[constants.FieldHauteur])
}

func TestNormalizeFieldsMarksAbsentFields(t *testing.T) {
	out := NormalizeFields(map[string]any{
		constants.FieldIntitule: "Fenêtre",
		constants.FieldLargeur:  1200.0,
		constants.FieldHauteur:  1350.0,
	})

	// missing optionals become explicit nil entries, never silent omissions
	for _, f := range []string{
		constants.FieldRepere,
		constants.FieldGamme,
		constants.FieldTypePose,
		constants.FieldSensOuverture,
		constants.FieldCouleurIntercalaire,
		constants.FieldMateriauRail,
	} {
		v, ok := out[f]
		assert.True(t, ok, "field %s should be present", f)
		assert.Nil(t, v, "field %s should be an explicit nil", f)
	}
}

func TestNormalizeFieldsDoesNotMutateInput(t *testing.T) {
	in := map[string]any{constants.FieldGamme: "alu"}
	_ = NormalizeFields(in)
	assert.Equal(t, "alu", in[constants.FieldGamme])
}
