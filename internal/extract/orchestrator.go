package extract

import (
	"context"
	"log/slog"
	"time"

	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/entity"
	"github.com/avalette/metreur-tracker/internal/llm"
	"github.com/avalette/metreur-tracker/internal/record"
)

// DocumentInput is one uploaded survey scan.
type DocumentInput struct {
	Data     []byte
	MimeType string
	Filename string
}

// Orchestrator drives one extraction per document: model call, payload
// location, validation, confidence gate, and sequential retry with
// exponential backoff. Retries are never concurrent; a speculative parallel
// attempt would double model billing.
type Orchestrator struct {
	extractor llm.DocumentExtractor
	cfg       common.ExtractConfig
	log       *slog.Logger
}

func NewOrchestrator(extractor llm.DocumentExtractor, cfg common.ExtractConfig, logger *slog.Logger) *Orchestrator {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = time.Second
	}
	if cfg.MinConfidence <= 0 {
		cfg.MinConfidence = 0.7
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{extractor: extractor, cfg: cfg, log: logger}
}

// Extract runs the full extraction for one document.
//
// It fails with *ExtractionError once the retry budget is exhausted, with
// *LowConfidenceError when the payload validates but confidence is below the
// floor, or with the context error when the caller's deadline wins the race.
func (o *Orchestrator) Extract(ctx context.Context, doc DocumentInput) (*entity.ExtractionResult, error) {
	if o.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	var lastErr error

	for attempt := 0; attempt < o.cfg.MaxAttempts; attempt++ {
		if attempt > 0 {
			delay := o.cfg.BackoffBase * (1 << (attempt - 1))
			o.log.Info("extract.retry_wait", "attempt", attempt, "delay_ms", delay.Milliseconds())
			if err := sleepCtx(ctx, delay); err != nil {
				return nil, err
			}
		}

		result, retryable, err := o.attempt(ctx, doc, attempt)
		if err == nil {
			result.RetryCount = attempt
			o.log.Info("extract.ok",
				"filename", doc.Filename,
				"records", len(result.Records),
				"failures", len(result.Failures),
				"confidence", result.Confidence,
				"retry_count", result.RetryCount,
				"model", result.ModelName,
				"tokens", result.TokensUsed,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return result, nil
		}
		if !retryable {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		lastErr = err
		o.log.Warn("extract.attempt_failed", "filename", doc.Filename, "attempt", attempt, "error", err)
	}

	o.log.Error("extract.exhausted",
		"filename", doc.Filename,
		"attempts", o.cfg.MaxAttempts,
		"error", lastErr,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil, &ExtractionError{Attempts: o.cfg.MaxAttempts, LastCause: lastErr}
}

// attempt runs one model exchange. The second return value reports whether
// the failure is retryable.
func (o *Orchestrator) attempt(ctx context.Context, doc DocumentInput, attempt int) (*entity.ExtractionResult, bool, error) {
	resp, err := o.extractor.ExtractDocument(ctx, llm.ExtractRequest{
		Document:     doc.Data,
		MimeType:     doc.MimeType,
		FilenameHint: doc.Filename,
	})
	if err != nil {
		return nil, true, err
	}

	raw, err := llm.ExtractJSONPayload(resp.Text)
	if err != nil {
		return nil, true, err
	}
	payload, err := record.ParsePayload(raw)
	if err != nil {
		return nil, true, err
	}

	seeds, recordErrs := record.ValidateSeeds(payload)
	if len(payload.Menuiseries) > 0 && len(seeds) == 0 {
		// the model occasionally drops required fields across the board on a
		// first pass; a fresh attempt usually recovers them
		return nil, true, recordErrs[0]
	}

	result := &entity.ExtractionResult{
		Records:    seeds,
		IsValid:    payload.Metadata.IsValidDocument,
		Invalidity: payload.Metadata.InvalidReason,
		Confidence: payload.Metadata.Confidence,
		Warnings:   payload.Metadata.Warnings,
		ModelName:  resp.Model,
		TokensUsed: resp.TokensUsed,
	}
	for _, re := range recordErrs {
		result.Failures = append(result.Failures, entity.RecordFailure{
			Index:   re.Index,
			Field:   re.Field,
			Message: re.Message,
		})
	}
	if c := payload.Metadata.Client; c != nil {
		result.Client = &entity.ClientIdentity{
			Name:    c.Nom,
			Address: c.Adresse,
			Phone:   c.Telephone,
			Email:   c.Email,
		}
	}

	if result.Confidence < o.cfg.MinConfidence {
		o.log.Warn("extract.low_confidence",
			"filename", doc.Filename,
			"attempt", attempt,
			"confidence", result.Confidence,
			"threshold", o.cfg.MinConfidence,
		)
		return nil, false, &LowConfidenceError{Confidence: result.Confidence, Threshold: o.cfg.MinConfidence}
	}
	return result, false, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
