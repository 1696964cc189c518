package export

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	surveys  repository.SurveyRepository
	fixtures repository.FixtureRepository
	logger   *slog.Logger
}

func NewService(surveys repository.SurveyRepository, fixtures repository.FixtureRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{surveys: surveys, fixtures: fixtures, logger: logger}
}

// columns lists the exported fields in sheet order; effective values win over
// originals when the operator edited a field.
var columns = []struct {
	header string
	field  string
}{
	{"Repère", constants.FieldRepere},
	{"Intitulé", constants.FieldIntitule},
	{"Largeur (mm)", constants.FieldLargeur},
	{"Hauteur (mm)", constants.FieldHauteur},
	{"Gamme", constants.FieldGamme},
	{"Type de pose", constants.FieldTypePose},
	{"Sens d'ouverture", constants.FieldSensOuverture},
	{"Couleur intercalaire", constants.FieldCouleurIntercalaire},
	{"Matériau rail", constants.FieldMateriauRail},
}

// ExportSurveyXLSX renders the survey's fixture records as an XLSX workbook.
// Each row shows the effective data; a trailing column summarizes per-field
// deviations so the workbook stands alone in an email thread.
func (s *Service) ExportSurveyXLSX(ctx context.Context, surveyID uuid.UUID) ([]byte, string, error) {
	start := time.Now()

	survey, err := s.surveys.Get(ctx, surveyID)
	if err != nil {
		return nil, "", fmt.Errorf("query survey: %w", err)
	}
	recs, err := s.fixtures.ListBySurvey(ctx, surveyID)
	if err != nil {
		return nil, "", fmt.Errorf("query fixtures: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Menuiseries"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, "", err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	defaultSheet, _ := f.GetSheetIndex("Sheet1")
	if defaultSheet != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, c := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, c.header)
	}
	statusCol := len(columns) + 1
	deviationCol := len(columns) + 2
	cell, _ := excelize.CoordinatesToCellName(statusCol, 1)
	_ = f.SetCellValue(sheet, cell, "Statut")
	cell, _ = excelize.CoordinatesToCellName(deviationCol, 1)
	_ = f.SetCellValue(sheet, cell, "Écarts")

	row := 2
	for _, r := range recs {
		data := r.EffectiveData()
		write := func(col int, v any) {
			c, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, c, v)
		}
		for i, c := range columns {
			v, ok := data[c.field]
			if !ok || v == nil {
				write(i+1, "")
				continue
			}
			write(i+1, v)
		}
		write(statusCol, string(r.Status))
		write(deviationCol, deviationSummary(r.Deviations))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	_ = f.SetColWidth(sheet, "B", "B", 34)
	_ = f.SetColWidth(sheet, "C", "D", 14)
	_ = f.SetColWidth(sheet, "E", "I", 18)
	_ = f.SetColWidth(sheet, "J", "J", 14)
	_ = f.SetColWidth(sheet, "K", "K", 60)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("xlsx write: %w", err)
	}

	filename := fmt.Sprintf("%s.xlsx", survey.Reference)
	s.logger.Info("export.xlsx.ok",
		"survey_id", surveyID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), filename, nil
}

// deviationSummary renders deviations as "largeur: 4200 → 4250 (+1.2%) [low]"
// joined with "; ", in deterministic field order.
func deviationSummary(devs map[string]entity.Deviation) string {
	if len(devs) == 0 {
		return ""
	}
	fields := make([]string, 0, len(devs))
	for field := range devs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		d := devs[field]
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %v → %v", field, d.Original, d.Modified)
		if d.Percentage != nil {
			fmt.Fprintf(&b, " (%+.1f%%)", *d.Percentage)
		}
		fmt.Fprintf(&b, " [%s]", d.Severity)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "; ")
}
