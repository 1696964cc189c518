package constants

import "strings"

// Gamme codes are stored upper-case. The closed set reflects the product
// ranges the metreur sheets actually carry; anything else is kept as free
// text by the normalizer rather than rejected.
var Gammes = []string{"PVC", "ALU", "ALUPLUS", "TITANE", "ACIER", "BOIS", "MIXTE"}

// MetalGammes maps range codes onto the "metal" material for classification.
// Everything outside this set classifies as "polymer".
var MetalGammes = map[string]struct{}{
	"ALU":     {},
	"ALUPLUS": {},
	"TITANE":  {},
	"ACIER":   {},
}

var gammeSynonyms = map[string]string{
	"ALUMINIUM": "ALU",
	"ALUM":      "ALU",
	"ALU+":      "ALUPLUS",
	"METAL":     "ACIER",
	"VINYLE":    "PVC",
}

// CanonicalGamme upper-cases the input and matches it against the closed
// gamme set (with a few field-observed synonyms). Unknown values are
// returned upper-cased with ok=false so that callers can preserve them.
func CanonicalGamme(input string) (string, bool) {
	g := strings.ToUpper(strings.TrimSpace(input))
	if g == "" {
		return "", false
	}
	if canon, ok := gammeSynonyms[g]; ok {
		return canon, true
	}
	for _, known := range Gammes {
		if g == known {
			return known, true
		}
	}
	return g, false
}

// TypePoses are stored lower-case.
var TypePoses = []string{"neuf", "renovation", "depose totale"}

var typePoseSynonyms = map[string]string{
	"pose neuf":       "neuf",
	"pose en neuf":    "neuf",
	"reno":            "renovation",
	"rénovation":      "renovation",
	"renov":           "renovation",
	"depose":          "depose totale",
	"dépose totale":   "depose totale",
	"depose complete": "depose totale",
}

// CanonicalTypePose lower-cases the input and matches it against the closed
// installation-type set. Unknown values come back lower-cased with ok=false.
func CanonicalTypePose(input string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(input))
	if p == "" {
		return "", false
	}
	if canon, ok := typePoseSynonyms[p]; ok {
		return canon, true
	}
	for _, known := range TypePoses {
		if p == known {
			return known, true
		}
	}
	return p, false
}

// SensOuvertures are stored lower-case.
var SensOuvertures = []string{"gauche", "droite"}

// CouleursIntercalaire are stored lower-case.
var CouleursIntercalaire = []string{"blanc", "noir", "gris", "alu"}

// MateriauxRail are stored lower-case.
var MateriauxRail = []string{"alu", "pvc", "inox"}

// CanonicalEnum lower-cases the input and matches it against an arbitrary
// closed set. Used for the smaller vocabularies that carry no synonyms.
func CanonicalEnum(input string, allowed []string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(input))
	if v == "" {
		return "", false
	}
	for _, known := range allowed {
		if v == known {
			return known, true
		}
	}
	return v, false
}
