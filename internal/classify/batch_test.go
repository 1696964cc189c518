package classify

import (
	"testing"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
)

func TestBatchChunksSingleTemplate(t *testing.T) {
	var records []*entity.FixtureRecord
	for i := 0; i < 7; i++ {
		records = append(records, record("Fenêtre", "PVC", "neuf"))
		records[i].Position = i
	}

	batches := Batch(records, 3)

	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}
	sizes := []int{3, 3, 1}
	for i, b := range batches {
		if len(b.Records) != sizes[i] {
			t.Errorf("batch %d: expected %d records, got %d", i, sizes[i], len(b.Records))
		}
		if b.Template != constants.TemplatePVCNeuf {
			t.Errorf("batch %d: expected template %s, got %s", i, constants.TemplatePVCNeuf, b.Template)
		}
	}

	// order preserved across chunk boundaries
	pos := 0
	for _, b := range batches {
		for _, r := range b.Records {
			if r.Position != pos {
				t.Fatalf("order broken: expected position %d, got %d", pos, r.Position)
			}
			pos++
		}
	}
}

func TestBatchGroupsByTemplate(t *testing.T) {
	records := []*entity.FixtureRecord{
		record("Fenêtre", "PVC", "neuf"),
		record("Porte d'entrée", "PVC", "neuf"),
		record("Fenêtre", "PVC", "neuf"),
		record("Baie coulissante", "ALU", "neuf"),
		record("Fenêtre", "ALU", "renovation"),
	}
	for i, r := range records {
		r.Position = i
	}

	batches := Batch(records, 3)

	total := 0
	perTemplate := map[constants.TemplateType]int{}
	for _, b := range batches {
		if len(b.Records) > 3 {
			t.Errorf("batch exceeds capacity: %d", len(b.Records))
		}
		total += len(b.Records)
		perTemplate[b.Template] += len(b.Records)
	}
	if total != len(records) {
		t.Errorf("batching must be exhaustive: expected %d records, got %d", len(records), total)
	}
	if perTemplate[constants.TemplatePVCNeuf] != 2 {
		t.Errorf("expected 2 PVC_NEUF records, got %d", perTemplate[constants.TemplatePVCNeuf])
	}
	if perTemplate[constants.TemplatePorte] != 1 || perTemplate[constants.TemplateCoulissantAlu] != 1 || perTemplate[constants.TemplateAluReno] != 1 {
		t.Errorf("unexpected template distribution: %v", perTemplate)
	}

	// within the PVC_NEUF group, the two windows keep their relative order
	for _, b := range batches {
		if b.Template == constants.TemplatePVCNeuf {
			if b.Records[0].Position != 0 || b.Records[1].Position != 2 {
				t.Errorf("relative order broken in group: %d, %d", b.Records[0].Position, b.Records[1].Position)
			}
		}
	}
}

func TestBatchEmptyInput(t *testing.T) {
	if batches := Batch(nil, 3); len(batches) != 0 {
		t.Errorf("expected no batches for empty input, got %d", len(batches))
	}
}
