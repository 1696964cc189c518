package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avalette/metreur-tracker/gen/ent"
	metreurpb "github.com/avalette/metreur-tracker/gen/proto/metreur/v1"
	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/export"
	"github.com/avalette/metreur-tracker/internal/extract"
	"github.com/avalette/metreur-tracker/internal/fixtures"
	"github.com/avalette/metreur-tracker/internal/ingest"
	"github.com/avalette/metreur-tracker/internal/llm/openai"
	"github.com/avalette/metreur-tracker/internal/reconcile"
	"github.com/avalette/metreur-tracker/internal/repository"
	"github.com/avalette/metreur-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if path, ok := strings.CutPrefix(cfg.Database.DSN, "sqlite://"); ok {
		entc, err = repository.OpenSQLite(ctx, path, logger)
		if err != nil {
			logger.Error("opening database", "error", err)
			os.Exit(1)
		}
	} else {
		entc, pool, err = repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("opening database", "error", err)
			os.Exit(1)
		}
		if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
	}
	defer repository.Close(entc, pool, logger)

	surveysRepo := repository.NewSurveyRepository(entc, logger)
	fixturesRepo := repository.NewFixtureRepository(entc, logger)
	jobsRepo := repository.NewExtractionJobRepository(entc, logger)

	modelClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	orchestrator := extract.NewOrchestrator(modelClient, cfg.Extract, logger)

	ingestSvc := ingest.NewService(orchestrator, surveysRepo, jobsRepo, logger)
	thresholds := reconcile.Thresholds{MediumPct: cfg.Deviation.MediumPct, HighPct: cfg.Deviation.HighPct}
	fixtureSvc := fixtures.NewService(fixturesRepo, thresholds, cfg.Batching.Capacity, logger)
	exportSvc := export.NewService(surveysRepo, fixturesRepo, logger)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(server.UnaryRequestID(logger)))
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	metreurpb.RegisterSurveyServiceServer(grpcServer, server.NewSurveyServer(ingestSvc, surveysRepo, fixturesRepo, logger))
	metreurpb.RegisterFixtureServiceServer(grpcServer, server.NewFixtureServer(fixtureSvc, fixturesRepo, logger))
	metreurpb.RegisterDocumentServiceServer(grpcServer, server.NewDocumentServer(fixtureSvc, exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc.serving", "addr", cfg.Server.GRPCAddr, "model", cfg.LLM.Model)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
