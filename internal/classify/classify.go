package classify

import (
	"log/slog"
	"strings"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
)

// Result carries the resolved template, the composite key it came from, and
// whether the flat lookup missed and the default template was used. The
// fallback is observable, never an error: document generation cannot be
// blocked by a taxonomy gap.
type Result struct {
	Template constants.TemplateType
	Key      string
	Fallback bool
}

// Classify resolves the output-document template for one record from its
// effective data (modified when present, else original).
func Classify(rec *entity.FixtureRecord) Result {
	data := rec.EffectiveData()
	key := material(data) + "_" + pose(data) + "_" + product(rec.Title, data)

	if tpl, ok := constants.TemplateTable[key]; ok {
		return Result{Template: tpl, Key: key}
	}
	return Result{Template: constants.DefaultTemplate, Key: key, Fallback: true}
}

// LogFallback emits the fallback event so taxonomy gaps show up in the logs.
func LogFallback(logger *slog.Logger, rec *entity.FixtureRecord, res Result) {
	if !res.Fallback || logger == nil {
		return
	}
	logger.Warn("classify.fallback",
		"record_id", rec.ID,
		"composite_key", res.Key,
		"template", res.Template,
	)
}

func material(data map[string]any) string {
	g, _ := data[constants.FieldGamme].(string)
	if _, ok := constants.MetalGammes[strings.ToUpper(strings.TrimSpace(g))]; ok {
		return constants.MaterialMetal
	}
	return constants.MaterialPolymer
}

func pose(data map[string]any) string {
	p, _ := data[constants.FieldTypePose].(string)
	p = strings.ToLower(p)
	if strings.Contains(p, "reno") || strings.Contains(p, "réno") || strings.Contains(p, "depose") {
		return constants.PoseReno
	}
	return constants.PoseNeuf
}

func product(title string, data map[string]any) string {
	t := strings.ToLower(title)
	if t == "" {
		t, _ = data[constants.FieldIntitule].(string)
		t = strings.ToLower(t)
	}
	switch {
	case strings.Contains(t, "couliss") || strings.Contains(t, "baie"):
		return constants.ProductSliding
	case strings.Contains(t, "porte"):
		return constants.ProductDoor
	default:
		return constants.ProductWindow
	}
}
