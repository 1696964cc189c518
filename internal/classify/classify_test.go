package classify

import (
	"testing"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
)

func record(title, gamme, pose string) *entity.FixtureRecord {
	return &entity.FixtureRecord{
		Title: title,
		OriginalData: map[string]any{
			constants.FieldGamme:    gamme,
			constants.FieldTypePose: pose,
		},
	}
}

// Every composite key in the lookup table, derived from realistic field data.
func TestClassifyCompositeKeys(t *testing.T) {
	cases := []struct {
		name    string
		title   string
		gamme   string
		pose    string
		wantKey string
		want    constants.TemplateType
	}{
		{"pvc window new", "Fenêtre 2 vantaux", "PVC", "neuf", "polymer_neuf_window", constants.TemplatePVCNeuf},
		{"pvc sliding new", "Baie coulissante", "PVC", "neuf", "polymer_neuf_sliding", constants.TemplatePVCNeuf},
		{"pvc door new", "Porte d'entrée", "PVC", "neuf", "polymer_neuf_door", constants.TemplatePorte},
		{"pvc window reno", "Fenêtre 1 vantail", "PVC", "renovation", "polymer_renovation_window", constants.TemplatePVCReno},
		{"pvc sliding reno", "Coulissant 2 rails", "PVC", "renovation", "polymer_renovation_sliding", constants.TemplatePVCReno},
		{"pvc door reno", "Porte de service", "PVC", "renovation", "polymer_renovation_door", constants.TemplatePorte},
		{"alu window new", "Fenêtre fixe", "ALU", "neuf", "metal_neuf_window", constants.TemplateAluNeuf},
		{"alu sliding new", "Baie vitrée", "ALU", "neuf", "metal_neuf_sliding", constants.TemplateCoulissantAlu},
		{"alu door new", "Porte palière", "ACIER", "neuf", "metal_neuf_door", constants.TemplatePorte},
		{"alu window reno", "Fenêtre oscillo-battante", "ALU", "renovation", "metal_renovation_window", constants.TemplateAluReno},
		{"alu sliding reno", "Coulissant galandage", "TITANE", "renovation", "metal_renovation_sliding", constants.TemplateCoulissantAlu},
		{"alu door reno", "Porte d'entrée blindée", "ALUPLUS", "depose totale", "metal_renovation_door", constants.TemplatePorte},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Classify(record(tc.title, tc.gamme, tc.pose))
			if res.Key != tc.wantKey {
				t.Errorf("key: expected %s, got %s", tc.wantKey, res.Key)
			}
			if res.Template != tc.want {
				t.Errorf("template: expected %s, got %s", tc.want, res.Template)
			}
			if res.Fallback {
				t.Error("known composite key must not fall back")
			}
		})
	}
}

func TestClassifyDefaults(t *testing.T) {
	// Unknown gamme -> polymer, empty pose -> neuf, plain title -> window.
	res := Classify(record("Châssis soufflet", "GAMME_2027", ""))
	if res.Key != "polymer_neuf_window" {
		t.Errorf("expected polymer_neuf_window, got %s", res.Key)
	}
	if res.Template != constants.TemplatePVCNeuf {
		t.Errorf("expected %s, got %s", constants.TemplatePVCNeuf, res.Template)
	}
}

func TestClassifyUsesModifiedData(t *testing.T) {
	rec := record("Fenêtre", "PVC", "neuf")
	rec.ModifiedData = map[string]any{constants.FieldGamme: "ALU"}

	res := Classify(rec)
	if res.Template != constants.TemplateAluNeuf {
		t.Errorf("expected modified gamme to win: got %s", res.Template)
	}
}

func TestClassifyTableIsExhaustive(t *testing.T) {
	materials := []string{constants.MaterialMetal, constants.MaterialPolymer}
	poses := []string{constants.PoseNeuf, constants.PoseReno}
	products := []string{constants.ProductWindow, constants.ProductSliding, constants.ProductDoor}

	for _, m := range materials {
		for _, p := range poses {
			for _, pr := range products {
				key := m + "_" + p + "_" + pr
				if _, ok := constants.TemplateTable[key]; !ok {
					t.Errorf("lookup table is missing composite key %s", key)
				}
			}
		}
	}
	if len(constants.TemplateTable) != len(materials)*len(poses)*len(products) {
		t.Errorf("lookup table has %d entries, expected %d", len(constants.TemplateTable), len(materials)*len(poses)*len(products))
	}
}
