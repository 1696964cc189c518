package record

import (
	"math"
	"strconv"
	"strings"

	"github.com/avalette/metreur-tracker/constants"
)

// enumFields maps lower-cased enum fields onto their closed vocabularies.
// Gamme and type_pose have dedicated canonicalizers with synonym handling.
var enumFields = map[string][]string{
	constants.FieldSensOuverture:       constants.SensOuvertures,
	constants.FieldCouleurIntercalaire: constants.CouleursIntercalaire,
	constants.FieldMateriauRail:        constants.MateriauxRail,
}

// NormalizeFields canonicalizes one raw menuiserie entry into the record
// schema's expected domain. Pure: the input map is not touched.
//
// Enum values outside their closed set are preserved as case-folded free
// text rather than rejected, to tolerate vocabulary drift without discarding
// data. Known fields the model omitted are carried as explicit nil entries.
func NormalizeFields(raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[strings.TrimSpace(k)] = normalizeValue(k, v)
	}

	// explicit absent markers for every known field
	for _, k := range knownFields() {
		if _, ok := out[k]; !ok {
			out[k] = nil
		}
	}
	return out
}

func normalizeValue(field string, v any) any {
	s, isString := v.(string)
	if isString {
		s = strings.TrimSpace(s)
	}

	switch field {
	case constants.FieldGamme:
		if isString {
			g, _ := constants.CanonicalGamme(s)
			return emptyToNil(g)
		}
	case constants.FieldTypePose:
		if isString {
			p, _ := constants.CanonicalTypePose(s)
			return emptyToNil(p)
		}
	case constants.FieldLargeur, constants.FieldHauteur:
		if f, ok := coerceNumber(v); ok {
			return f
		}
	default:
		if allowed, ok := enumFields[field]; ok && isString {
			e, _ := constants.CanonicalEnum(s, allowed)
			return emptyToNil(e)
		}
	}

	if isString {
		return emptyToNil(s)
	}
	return v
}

// coerceNumber accepts the numeric shapes the model actually emits: JSON
// numbers decode as float64, but dimensions occasionally arrive as strings.
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", ".")
		if s == "" {
			return 0, false
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	}
	return 0, false
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func knownFields() []string {
	return []string{
		constants.FieldRepere,
		constants.FieldIntitule,
		constants.FieldLargeur,
		constants.FieldHauteur,
		constants.FieldGamme,
		constants.FieldTypePose,
		constants.FieldSensOuverture,
		constants.FieldCouleurIntercalaire,
		constants.FieldMateriauRail,
	}
}
