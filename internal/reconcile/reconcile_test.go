package reconcile

import (
	"math"
	"reflect"
	"testing"

	"github.com/avalette/metreur-tracker/constants"
)

func TestReconcileNumericDeviation(t *testing.T) {
	original := map[string]any{"largeur": 4200.0, "hauteur": 2400.0}
	modified := map[string]any{"largeur": 4250.0, "hauteur": 2400.0}

	devs := Reconcile(original, modified, DefaultThresholds)

	if len(devs) != 1 {
		t.Fatalf("expected 1 deviation, got %d", len(devs))
	}
	dev, ok := devs["largeur"]
	if !ok {
		t.Fatal("expected a deviation on largeur")
	}
	if dev.Difference == nil || *dev.Difference != 50 {
		t.Errorf("difference: expected 50, got %v", dev.Difference)
	}
	if dev.Percentage == nil || math.Abs(*dev.Percentage-50.0/4200.0*100) > 1e-9 {
		t.Errorf("percentage: expected ~1.19, got %v", dev.Percentage)
	}
	if dev.Severity != constants.SeverityLow {
		t.Errorf("severity: expected low, got %s", dev.Severity)
	}
}

func TestReconcileSignPreserved(t *testing.T) {
	cases := []struct {
		name     string
		original float64
		modified float64
		wantPct  float64
		wantSev  constants.Severity
	}{
		{"increase 15pct", 1000, 1150, 15.0, constants.SeverityHigh},
		{"reduction 15pct", 1000, 850, -15.0, constants.SeverityHigh},
		{"increase 7pct", 1000, 1070, 7.0, constants.SeverityMedium},
		{"reduction 7pct", 1000, 930, -7.0, constants.SeverityMedium},
		{"increase 1pct", 1000, 1010, 1.0, constants.SeverityLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			devs := Reconcile(
				map[string]any{"largeur": tc.original},
				map[string]any{"largeur": tc.modified},
				DefaultThresholds,
			)
			dev, ok := devs["largeur"]
			if !ok {
				t.Fatal("expected a deviation on largeur")
			}
			if dev.Percentage == nil || math.Abs(*dev.Percentage-tc.wantPct) > 1e-9 {
				t.Errorf("percentage: expected %v, got %v", tc.wantPct, dev.Percentage)
			}
			if dev.Severity != tc.wantSev {
				t.Errorf("severity: expected %s, got %s", tc.wantSev, dev.Severity)
			}
		})
	}
}

// Boundary values belong to the upper tier: exactly 5.0% is medium and
// exactly 10.0% is high.
func TestReconcileSeverityBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		modified float64
		want     constants.Severity
	}{
		{"just below medium", 1049, constants.SeverityLow},
		{"exactly 5 percent", 1050, constants.SeverityMedium},
		{"just below high", 1099, constants.SeverityMedium},
		{"exactly 10 percent", 1100, constants.SeverityHigh},
		{"reduction exactly 5 percent", 950, constants.SeverityMedium},
		{"reduction exactly 10 percent", 900, constants.SeverityHigh},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			devs := Reconcile(
				map[string]any{"largeur": 1000.0},
				map[string]any{"largeur": tc.modified},
				DefaultThresholds,
			)
			if got := devs["largeur"].Severity; got != tc.want {
				t.Errorf("severity for %v: expected %s, got %s", tc.modified, tc.want, got)
			}
		})
	}
}

func TestReconcileIdempotent(t *testing.T) {
	original := map[string]any{"largeur": 1200.0, "gamme": "PVC"}
	modified := map[string]any{"largeur": 1300.0, "gamme": "ALU"}

	first := Reconcile(original, modified, DefaultThresholds)
	second := Reconcile(original, modified, DefaultThresholds)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %v then %v", first, second)
	}
}

func TestReconcileSameInputsEmpty(t *testing.T) {
	data := map[string]any{"largeur": 1200.0, "hauteur": 900.0, "gamme": "PVC"}
	devs := Reconcile(data, data, DefaultThresholds)
	if len(devs) != 0 {
		t.Errorf("expected no deviations, got %v", devs)
	}
}

func TestReconcileSkipsEmptyModifiedValues(t *testing.T) {
	original := map[string]any{"gamme": "PVC", "largeur": 1200.0}
	modified := map[string]any{"gamme": "", "largeur": nil, "repere": "  "}

	devs := Reconcile(original, modified, DefaultThresholds)
	if len(devs) != 0 {
		t.Errorf("expected empty-valued edits to be skipped, got %v", devs)
	}
}

func TestReconcileNonNumericDifferenceIsLow(t *testing.T) {
	devs := Reconcile(
		map[string]any{"gamme": "PVC"},
		map[string]any{"gamme": "ALU"},
		DefaultThresholds,
	)
	dev, ok := devs["gamme"]
	if !ok {
		t.Fatal("expected a deviation on gamme")
	}
	if dev.Severity != constants.SeverityLow {
		t.Errorf("severity: expected low, got %s", dev.Severity)
	}
	if dev.Difference != nil || dev.Percentage != nil {
		t.Errorf("non-numeric deviation should carry no difference/percentage, got %v / %v", dev.Difference, dev.Percentage)
	}
}

func TestReconcileZeroOriginalIsHighWithoutPercentage(t *testing.T) {
	devs := Reconcile(
		map[string]any{"allege": 0.0},
		map[string]any{"allege": 150.0},
		DefaultThresholds,
	)
	dev, ok := devs["allege"]
	if !ok {
		t.Fatal("expected a deviation on allege")
	}
	if dev.Percentage != nil {
		t.Errorf("expected no percentage against a zero original, got %v", *dev.Percentage)
	}
	if dev.Severity != constants.SeverityHigh {
		t.Errorf("severity: expected high, got %s", dev.Severity)
	}
	if dev.Difference == nil || *dev.Difference != 150 {
		t.Errorf("difference: expected 150, got %v", dev.Difference)
	}
}

func TestReconcileFieldAbsentFromOriginal(t *testing.T) {
	devs := Reconcile(
		map[string]any{"largeur": 1200.0},
		map[string]any{"repere": "F3"},
		DefaultThresholds,
	)
	dev, ok := devs["repere"]
	if !ok {
		t.Fatal("expected a deviation on repere")
	}
	if dev.Original != nil {
		t.Errorf("expected nil original, got %v", dev.Original)
	}
	if dev.Severity != constants.SeverityLow {
		t.Errorf("severity: expected low, got %s", dev.Severity)
	}
}

func TestAlertableKeepsOnlyHigh(t *testing.T) {
	devs := Reconcile(
		map[string]any{"largeur": 1000.0, "hauteur": 1000.0, "gamme": "PVC"},
		map[string]any{"largeur": 1150.0, "hauteur": 1070.0, "gamme": "ALU"},
		DefaultThresholds,
	)
	alerts := Alertable(devs)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alertable deviation, got %d", len(alerts))
	}
	if _, ok := alerts["largeur"]; !ok {
		t.Error("expected largeur to be alertable")
	}
}

func TestReconcileNumericStringsCompareNumerically(t *testing.T) {
	devs := Reconcile(
		map[string]any{"largeur": 1200.0},
		map[string]any{"largeur": "1200"},
		DefaultThresholds,
	)
	if len(devs) != 0 {
		t.Errorf("expected numerically equal string to be skipped, got %v", devs)
	}
}
