package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/avalette/metreur-tracker/constants"
	metreurpb "github.com/avalette/metreur-tracker/gen/proto/metreur/v1"
	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/fixtures"
	"github.com/avalette/metreur-tracker/internal/repository"
	"github.com/avalette/metreur-tracker/internal/utils"
)

type FixtureServer struct {
	metreurpb.UnimplementedFixtureServiceServer
	svc      *fixtures.Service
	fixtures repository.FixtureRepository
	logger   *slog.Logger
}

func NewFixtureServer(svc *fixtures.Service, repo repository.FixtureRepository, logger *slog.Logger) *FixtureServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &FixtureServer{svc: svc, fixtures: repo, logger: logger}
}

func (s *FixtureServer) ListFixtures(ctx context.Context, req *metreurpb.ListFixturesRequest) (*metreurpb.ListFixturesResponse, error) {
	surveyID, err := parseID("survey_id", req.GetSurveyId())
	if err != nil {
		return nil, err
	}
	recs, err := s.fixtures.ListBySurvey(ctx, surveyID)
	if err != nil {
		return nil, rpcError(err)
	}
	out := make([]*metreurpb.FixtureRecord, 0, len(recs))
	for _, r := range recs {
		pb, err := utils.ToPBFixture(r)
		if err != nil {
			return nil, rpcError(err)
		}
		out = append(out, pb)
	}
	return &metreurpb.ListFixturesResponse{Fixtures: out}, nil
}

// UpdateFixture applies operator edits and returns the record with its
// recomputed deviations; alerts carries the high-severity subset.
func (s *FixtureServer) UpdateFixture(ctx context.Context, req *metreurpb.UpdateFixtureRequest) (*metreurpb.UpdateFixtureResponse, error) {
	recordID, err := parseID("record_id", req.GetRecordId())
	if err != nil {
		return nil, err
	}
	raw := strings.TrimSpace(req.GetModifications())
	if raw == "" {
		return nil, common.InvalidArgumentError("modifications is required")
	}
	var changes map[string]any
	if err := json.Unmarshal([]byte(raw), &changes); err != nil {
		return nil, common.InvalidArgumentError("modifications must be a JSON object")
	}
	if len(changes) == 0 {
		return nil, common.InvalidArgumentError("modifications must not be empty")
	}

	rec, err := s.svc.UpdateFixture(ctx, recordID, changes)
	if err != nil {
		return nil, rpcError(err)
	}
	pb, err := utils.ToPBFixture(rec)
	if err != nil {
		return nil, rpcError(err)
	}

	var alerts []*metreurpb.Deviation
	for _, d := range pb.GetDeviations() {
		if d.GetSeverity() == string(constants.SeverityHigh) {
			alerts = append(alerts, d)
		}
	}
	return &metreurpb.UpdateFixtureResponse{Fixture: pb, Alerts: alerts}, nil
}

func (s *FixtureServer) ValidateFixture(ctx context.Context, req *metreurpb.ValidateFixtureRequest) (*metreurpb.ValidateFixtureResponse, error) {
	recordID, err := parseID("record_id", req.GetRecordId())
	if err != nil {
		return nil, err
	}
	rec, err := s.svc.ValidateFixture(ctx, recordID)
	if err != nil {
		return nil, rpcError(err)
	}
	pb, err := utils.ToPBFixture(rec)
	if err != nil {
		return nil, rpcError(err)
	}
	return &metreurpb.ValidateFixtureResponse{Fixture: pb}, nil
}
