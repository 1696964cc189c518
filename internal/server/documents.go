package server

import (
	"context"
	"log/slog"

	metreurpb "github.com/avalette/metreur-tracker/gen/proto/metreur/v1"
	"github.com/avalette/metreur-tracker/internal/classify"
	"github.com/avalette/metreur-tracker/internal/export"
	"github.com/avalette/metreur-tracker/internal/fixtures"
	"github.com/avalette/metreur-tracker/internal/utils"
)

type DocumentServer struct {
	metreurpb.UnimplementedDocumentServiceServer
	svc      *fixtures.Service
	exporter *export.Service
	logger   *slog.Logger
}

func NewDocumentServer(svc *fixtures.Service, exporter *export.Service, logger *slog.Logger) *DocumentServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentServer{svc: svc, exporter: exporter, logger: logger}
}

// PlanDocuments groups the survey's validated records into per-template
// batches for downstream document generation.
func (s *DocumentServer) PlanDocuments(ctx context.Context, req *metreurpb.PlanDocumentsRequest) (*metreurpb.PlanDocumentsResponse, error) {
	surveyID, err := parseID("survey_id", req.GetSurveyId())
	if err != nil {
		return nil, err
	}
	batches, err := s.svc.PlanBatches(ctx, surveyID)
	if err != nil {
		return nil, rpcError(err)
	}

	out := make([]*metreurpb.DocumentBatch, 0, len(batches))
	for _, b := range batches {
		pb := &metreurpb.DocumentBatch{Template: string(b.Template)}
		for _, r := range b.Records {
			rec, err := utils.ToPBFixture(r)
			if err != nil {
				return nil, rpcError(err)
			}
			pb.Records = append(pb.Records, rec)
			if classify.Classify(r).Fallback {
				pb.Fallback = true
			}
		}
		out = append(out, pb)
	}
	return &metreurpb.PlanDocumentsResponse{Batches: out}, nil
}

// ExportSurvey returns the survey's records as an XLSX workbook.
func (s *DocumentServer) ExportSurvey(ctx context.Context, req *metreurpb.ExportSurveyRequest) (*metreurpb.ExportSurveyResponse, error) {
	surveyID, err := parseID("survey_id", req.GetSurveyId())
	if err != nil {
		return nil, err
	}
	xlsx, filename, err := s.exporter.ExportSurveyXLSX(ctx, surveyID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "survey_id", surveyID, "error", err)
		return nil, rpcError(err)
	}
	return &metreurpb.ExportSurveyResponse{Xlsx: xlsx, Filename: filename}, nil
}
