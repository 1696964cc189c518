package server

import (
	"context"
	"log/slog"
	"strings"

	metreurpb "github.com/avalette/metreur-tracker/gen/proto/metreur/v1"
	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/ingest"
	"github.com/avalette/metreur-tracker/internal/repository"
	"github.com/avalette/metreur-tracker/internal/utils"
)

type SurveyServer struct {
	metreurpb.UnimplementedSurveyServiceServer
	ingestor *ingest.Service
	surveys  repository.SurveyRepository
	fixtures repository.FixtureRepository
	logger   *slog.Logger
}

func NewSurveyServer(ingestor *ingest.Service, surveys repository.SurveyRepository, fixtures repository.FixtureRepository, logger *slog.Logger) *SurveyServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SurveyServer{ingestor: ingestor, surveys: surveys, fixtures: fixtures, logger: logger}
}

// ExtractSurvey runs the full extraction pipeline on an uploaded scan and
// returns the persisted survey with its imported fixture records.
func (s *SurveyServer) ExtractSurvey(ctx context.Context, req *metreurpb.ExtractSurveyRequest) (*metreurpb.ExtractSurveyResponse, error) {
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, common.InvalidArgumentError("filename is required")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	out, err := s.ingestor.IngestDocument(ctx, strings.TrimSpace(req.GetReference()), filename, req.GetContent())
	if err != nil {
		s.logger.Error("survey.extract_failed", "filename", filename, "error", err)
		return nil, rpcError(err)
	}

	recs, err := s.fixtures.ListBySurvey(ctx, out.Survey.ID)
	if err != nil {
		return nil, rpcError(err)
	}
	pbRecs := make([]*metreurpb.FixtureRecord, 0, len(recs))
	for _, r := range recs {
		pb, err := utils.ToPBFixture(r)
		if err != nil {
			return nil, rpcError(err)
		}
		pbRecs = append(pbRecs, pb)
	}

	failures := make([]*metreurpb.RecordFailure, 0, len(out.Result.Failures))
	for _, f := range out.Result.Failures {
		failures = append(failures, &metreurpb.RecordFailure{
			Index:   int32(f.Index),
			Field:   f.Field,
			Message: f.Message,
		})
	}

	return &metreurpb.ExtractSurveyResponse{
		Survey:     utils.ToPBSurvey(out.Survey),
		Fixtures:   pbRecs,
		Failures:   failures,
		RetryCount: int32(out.Result.RetryCount),
		ModelName:  out.Result.ModelName,
		TokensUsed: int32(out.Result.TokensUsed),
	}, nil
}

func (s *SurveyServer) GetSurvey(ctx context.Context, req *metreurpb.GetSurveyRequest) (*metreurpb.GetSurveyResponse, error) {
	id, err := parseID("survey_id", req.GetSurveyId())
	if err != nil {
		return nil, err
	}
	survey, err := s.surveys.Get(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	return &metreurpb.GetSurveyResponse{Survey: utils.ToPBSurvey(survey)}, nil
}

func (s *SurveyServer) ListSurveys(ctx context.Context, _ *metreurpb.ListSurveysRequest) (*metreurpb.ListSurveysResponse, error) {
	surveys, err := s.surveys.List(ctx)
	if err != nil {
		return nil, rpcError(err)
	}
	out := make([]*metreurpb.Survey, 0, len(surveys))
	for _, sv := range surveys {
		out = append(out, utils.ToPBSurvey(sv))
	}
	return &metreurpb.ListSurveysResponse{Surveys: out}, nil
}
