package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/avalette/metreur-tracker/constants"
	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/extract"
	"github.com/avalette/metreur-tracker/internal/llm/openai"
)

// One-shot extraction: reads a survey scan, runs the full extraction pipeline
// without touching a database, and prints the result as JSON. Useful for
// prompt tuning and for checking a sheet before importing it.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: extract <file.pdf|jpg|png>")
		os.Exit(2)
	}
	path := os.Args[1]
	ext := filepath.Ext(path)
	if constants.MapExtToFormat(ext) == "" {
		logger.Error("unsupported file extension", "ext", ext)
		os.Exit(2)
	}
	if os.Getenv("OPENAI_API_KEY") == "" {
		logger.Error("OPENAI_API_KEY env var is required")
		os.Exit(2)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Error("reading file", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
	orchestrator := extract.NewOrchestrator(client, cfg.Extract, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	result, err := orchestrator.Extract(ctx, extract.DocumentInput{
		Data:     content,
		MimeType: constants.MimeTypeForExt(ext),
		Filename: filepath.Base(path),
	})
	if err != nil {
		var confErr *extract.LowConfidenceError
		if errors.As(err, &confErr) {
			logger.Error("document needs manual review",
				"confidence", confErr.Confidence,
				"threshold", confErr.Threshold)
			os.Exit(3)
		}
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	logger.Info("extraction ok",
		"records", len(result.Records),
		"failures", len(result.Failures),
		"confidence", result.Confidence,
		"retries", result.RetryCount,
		"tokens", result.TokensUsed,
		"elapsed_ms", time.Since(start).Milliseconds())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		logger.Error("encoding result", "error", err)
		os.Exit(1)
	}
}
