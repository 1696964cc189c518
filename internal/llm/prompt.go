package llm

import (
	"strings"

	"github.com/avalette/metreur-tracker/constants"
)

// BuildSystemPrompt composes the fixed instruction for survey-sheet parsing.
// The instruction is deliberately static: retries must send the same request.
func BuildSystemPrompt() string {
	parts := []string{
		"You are a metreur survey-sheet parser for building fixtures (windows and doors).",
		"Return ONLY a JSON object matching the provided JSON Schema, with the keys 'menuiseries' and 'metadata'.",
		"Each menuiserie entry describes one window or door unit measured on the sheet.",
		"Dimensions 'largeur' and 'hauteur' are millimetres, as numbers, never strings.",
		"'gamme' is the product range code as printed (e.g. " + strings.Join(constants.Gammes, ", ") + ").",
		"'type_pose' is the installation type (" + strings.Join(constants.TypePoses, ", ") + ").",
		"'sens_ouverture' is the opening side; 'couleur_intercalaire' and 'materiau_rail' as printed.",
		"Keep entries in the order they appear on the sheet.",
		"In 'metadata', set 'is_valid_document' to false with an 'invalid_reason' when the scan is not a metreur sheet.",
		"Report your overall extraction certainty in 'metadata.confidence' between 0 and 1.",
		"List anything illegible or ambiguous in 'metadata.warnings'.",
		"Extract the client identity from the sheet header into 'metadata.client' when readable.",
		"Never output null. If a field is not readable, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt labels the attached scan for the model.
func BuildUserPrompt(filename string) string {
	var b strings.Builder
	b.WriteString("Scanned survey sheet: ")
	b.WriteString(filename)
	b.WriteString("\n\nExtract every menuiserie on this sheet.")
	return b.String()
}
