package classify

import (
	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
)

// Batch groups the given records by resolved template type, preserving
// relative input order inside each group, and splits each group into
// contiguous chunks of at most capacity records. Every input record lands in
// exactly one batch.
//
// Batch reads a snapshot: it never mutates the records. Callers hand it a
// consistent set of validated records.
func Batch(records []*entity.FixtureRecord, capacity int) []entity.DocumentBatch {
	if capacity < 1 {
		capacity = constants.BatchCapacity
	}

	groups := make(map[constants.TemplateType][]*entity.FixtureRecord)
	var order []constants.TemplateType
	for _, rec := range records {
		tpl := Classify(rec).Template
		if _, seen := groups[tpl]; !seen {
			order = append(order, tpl)
		}
		groups[tpl] = append(groups[tpl], rec)
	}

	var batches []entity.DocumentBatch
	for _, tpl := range order {
		group := groups[tpl]
		for start := 0; start < len(group); start += capacity {
			end := start + capacity
			if end > len(group) {
				end = len(group)
			}
			batches = append(batches, entity.DocumentBatch{
				Template: tpl,
				Records:  group[start:end],
			})
		}
	}
	return batches
}
