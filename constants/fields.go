package constants

// Canonical field names used in originalData/modifiedData maps and in the
// extraction payload. The model is prompted with these exact keys.
const (
	FieldRepere              = "repere"
	FieldIntitule            = "intitule"
	FieldLargeur             = "largeur"
	FieldHauteur             = "hauteur"
	FieldGamme               = "gamme"
	FieldTypePose            = "type_pose"
	FieldSensOuverture       = "sens_ouverture"
	FieldCouleurIntercalaire = "couleur_intercalaire"
	FieldMateriauRail        = "materiau_rail"
	FieldImageRef            = "image_ref"
)

// RequiredFields must all be present for a record seed to be accepted.
var RequiredFields = []string{FieldIntitule, FieldLargeur, FieldHauteur}

// NumericFields carry linear dimensions in millimetres.
var NumericFields = []string{FieldLargeur, FieldHauteur}

// Physical plausibility bounds for linear dimensions, in millimetres.
const (
	DimensionMinMM = 100
	DimensionMaxMM = 10000
)
