package entity

import "github.com/avalette/metreur-tracker/constants"

// DocumentBatch groups up to the page capacity of validated fixture records
// sharing one output-document template. Computed on demand, never persisted.
type DocumentBatch struct {
	Template constants.TemplateType `json:"template"`
	Records  []*FixtureRecord       `json:"records"`
}
