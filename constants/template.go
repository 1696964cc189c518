package constants

// TemplateType identifies the output-document layout a batch renders with.
type TemplateType string

const (
	TemplatePVCNeuf       TemplateType = "PVC_NEUF"
	TemplatePVCReno       TemplateType = "PVC_RENO"
	TemplateAluNeuf       TemplateType = "ALU_NEUF"
	TemplateAluReno       TemplateType = "ALU_RENO"
	TemplateCoulissantAlu TemplateType = "COULISSANT_ALU"
	TemplatePorte         TemplateType = "PORTE"
)

// Composite key parts. Classification builds "{material}_{pose}_{product}".
const (
	MaterialMetal   = "metal"
	MaterialPolymer = "polymer"

	PoseNeuf = "neuf"
	PoseReno = "renovation"

	ProductWindow  = "window"
	ProductSliding = "sliding"
	ProductDoor    = "door"
)

// TemplateTable is the exhaustive composite-key lookup. Sliding and window
// polymer variants share a layout; metal sliding gets its own. Adding a
// product/material/pose combination is a data change here, not a code change.
var TemplateTable = map[string]TemplateType{
	"polymer_neuf_window":        TemplatePVCNeuf,
	"polymer_neuf_sliding":       TemplatePVCNeuf,
	"polymer_neuf_door":          TemplatePorte,
	"polymer_renovation_window":  TemplatePVCReno,
	"polymer_renovation_sliding": TemplatePVCReno,
	"polymer_renovation_door":    TemplatePorte,
	"metal_neuf_window":          TemplateAluNeuf,
	"metal_neuf_sliding":         TemplateCoulissantAlu,
	"metal_neuf_door":            TemplatePorte,
	"metal_renovation_window":    TemplateAluReno,
	"metal_renovation_sliding":   TemplateCoulissantAlu,
	"metal_renovation_door":      TemplatePorte,
}

// DefaultTemplate is the fallback for composite keys outside TemplateTable.
// It is the most common sheet in practice; generation is never blocked by a
// taxonomy gap.
const DefaultTemplate = TemplatePVCNeuf

// BatchCapacity is the page capacity of one generated document.
const BatchCapacity = 3
