package reconcile

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
)

// Thresholds are the absolute-percentage severity boundaries. A boundary
// value belongs to the upper tier: exactly 5.0% is medium, exactly 10.0% is
// high.
type Thresholds struct {
	MediumPct float64
	HighPct   float64
}

// DefaultThresholds matches the configuration defaults.
var DefaultThresholds = Thresholds{MediumPct: 5, HighPct: 10}

// Reconcile computes the per-field deviations between the immutable original
// data and the operator-modified data. Pure, deterministic, idempotent;
// callers serialize concurrent edits to the same record.
//
// Fields whose modified value is absent, empty, or equal to the original are
// skipped. Numeric fields carry a signed difference and percentage; a
// negative percentage denotes a reduction. Non-numeric differences rate low.
func Reconcile(original, modified map[string]any, th Thresholds) map[string]entity.Deviation {
	if th.MediumPct <= 0 || th.HighPct <= th.MediumPct {
		th = DefaultThresholds
	}

	devs := make(map[string]entity.Deviation)
	for field, modVal := range modified {
		if isEmpty(modVal) {
			continue
		}
		origVal, ok := original[field]
		if ok && equalValues(origVal, modVal) {
			continue
		}

		dev := entity.Deviation{
			Field:    field,
			Original: origVal,
			Modified: modVal,
			Severity: constants.SeverityLow,
		}

		origNum, origOK := numericValue(origVal)
		modNum, modOK := numericValue(modVal)
		if origOK && modOK {
			if origNum == modNum {
				continue
			}
			diff := modNum - origNum
			dev.Difference = &diff
			if origNum != 0 {
				pct := diff / origNum * 100
				dev.Percentage = &pct
				dev.Severity = severityFor(pct, th)
			} else {
				// any change away from a zero original is significant; there
				// is no magnitude to scale it against
				dev.Severity = constants.SeverityHigh
			}
		}

		devs[field] = dev
	}
	return devs
}

// Alertable filters the deviations surfaced to the end consumer. Only high
// severity is actionable; low and medium stay in the audit trail.
func Alertable(devs map[string]entity.Deviation) map[string]entity.Deviation {
	out := make(map[string]entity.Deviation)
	for field, d := range devs {
		if d.Severity == constants.SeverityHigh {
			out[field] = d
		}
	}
	return out
}

func severityFor(pct float64, th Thresholds) constants.Severity {
	abs := pct
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= th.HighPct:
		return constants.SeverityHigh
	case abs >= th.MediumPct:
		return constants.SeverityMedium
	default:
		return constants.SeverityLow
	}
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func equalValues(a, b any) bool {
	an, aOK := numericValue(a)
	bn, bOK := numericValue(b)
	if aOK && bOK {
		return an == bn
	}
	return reflect.DeepEqual(a, b)
}

func numericValue(v any) (float64, bool) {
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
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
