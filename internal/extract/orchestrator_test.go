package extract

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avalette/metreur-tracker/internal/common"
	"github.com/avalette/metreur-tracker/internal/llm"
)

// scriptedExtractor replays canned outcomes, one per attempt.
type scriptedExtractor struct {
	outcomes []func() (llm.ModelResponse, error)
	calls    int
}

func (s *scriptedExtractor) ExtractDocument(ctx context.Context, req llm.ExtractRequest) (llm.ModelResponse, error) {
	if err := ctx.Err(); err != nil {
		return llm.ModelResponse{}, err
	}
	i := s.calls
	s.calls++
	if i >= len(s.outcomes) {
		i = len(s.outcomes) - 1
	}
	return s.outcomes[i]()
}

func transportFailure() (llm.ModelResponse, error) {
	return llm.ModelResponse{}, errors.New("connection reset by peer")
}

func goodResponse(confidence float64) func() (llm.ModelResponse, error) {
	return func() (llm.ModelResponse, error) {
		text := fmt.Sprintf("```json\n{\"menuiseries\": [{\"intitule\": \"Fenêtre\", \"largeur\": 1200, \"hauteur\": 1350}], \"metadata\": {\"is_valid_document\": true, \"confidence\": %.2f, \"warnings\": [\"repère F2 illisible\"], \"client\": {\"nom\": \"Dupont\"}}}\n```", confidence)
		return llm.ModelResponse{Text: text, Model: "gpt-4o-mini", TokensUsed: 1845}, nil
	}
}

func testConfig() common.ExtractConfig {
	return common.ExtractConfig{
		MaxAttempts:   3,
		BackoffBase:   time.Millisecond,
		MinConfidence: 0.7,
	}
}

func testDoc() DocumentInput {
	return DocumentInput{Data: []byte("scan"), MimeType: "image/png", Filename: "releve.png"}
}

func TestExtractRetriesThenSucceeds(t *testing.T) {
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){
		transportFailure,
		transportFailure,
		goodResponse(0.85),
	}}
	orch := NewOrchestrator(ext, testConfig(), nil)

	result, err := orch.Extract(context.Background(), testDoc())
	require.NoError(t, err)
	assert.Equal(t, 2, result.RetryCount)
	assert.Equal(t, 3, ext.calls)
	assert.Equal(t, "gpt-4o-mini", result.ModelName)
	assert.Equal(t, 1845, result.TokensUsed)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Fenêtre", result.Records[0].Title)
	assert.True(t, result.IsValid)
	require.NotNil(t, result.Client)
	assert.Equal(t, "Dupont", result.Client.Name)
}

func TestExtractExhaustsRetries(t *testing.T) {
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){transportFailure}}
	orch := NewOrchestrator(ext, testConfig(), nil)

	_, err := orch.Extract(context.Background(), testDoc())
	var exErr *ExtractionError
	require.ErrorAs(t, err, &exErr)
	assert.Equal(t, 3, exErr.Attempts)
	assert.Equal(t, 3, ext.calls)
	assert.ErrorContains(t, exErr.LastCause, "connection reset")
}

func TestExtractLowConfidenceNotRetried(t *testing.T) {
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){goodResponse(0.4)}}
	orch := NewOrchestrator(ext, testConfig(), nil)

	_, err := orch.Extract(context.Background(), testDoc())
	var lcErr *LowConfidenceError
	require.ErrorAs(t, err, &lcErr)
	assert.InDelta(t, 0.4, float64(lcErr.Confidence), 1e-6)
	assert.InDelta(t, 0.7, float64(lcErr.Threshold), 1e-6)
	assert.Equal(t, 1, ext.calls, "confidence is a property of the document: no retry")
}

func TestExtractUnparsableResponseRetries(t *testing.T) {
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){
		func() (llm.ModelResponse, error) {
			return llm.ModelResponse{Text: "prose without any payload"}, nil
		},
		goodResponse(0.9),
	}}
	orch := NewOrchestrator(ext, testConfig(), nil)

	result, err := orch.Extract(context.Background(), testDoc())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RetryCount)
}

func TestExtractAllRecordsInvalidRetries(t *testing.T) {
	noValid := func() (llm.ModelResponse, error) {
		return llm.ModelResponse{
			Text: `{"menuiseries": [{"largeur": 1200, "hauteur": 1350}], "metadata": {"is_valid_document": true, "confidence": 0.9}}`,
		}, nil
	}
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){noValid, goodResponse(0.9)}}
	orch := NewOrchestrator(ext, testConfig(), nil)

	result, err := orch.Extract(context.Background(), testDoc())
	require.NoError(t, err)
	assert.Equal(t, 1, result.RetryCount)
	assert.Len(t, result.Records, 1)
}

func TestExtractPartialFailureKeepsSiblings(t *testing.T) {
	mixed := func() (llm.ModelResponse, error) {
		return llm.ModelResponse{
			Text: `{"menuiseries": [
				{"intitule": "Fenêtre", "largeur": 1200, "hauteur": 1350},
				{"intitule": "Porte", "largeur": 900}
			], "metadata": {"is_valid_document": true, "confidence": 0.9}}`,
			Model: "gpt-4o-mini",
		}, nil
	}
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){mixed}}
	orch := NewOrchestrator(ext, testConfig(), nil)

	result, err := orch.Extract(context.Background(), testDoc())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, 1, result.Failures[0].Index)
	assert.Equal(t, "hauteur", result.Failures[0].Field)
	assert.Equal(t, 1, ext.calls, "partial failure must not trigger a retry")
}

func TestExtractCancellationWinsOverRetryBudget(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){
		func() (llm.ModelResponse, error) {
			cancel()
			return llm.ModelResponse{}, errors.New("transport aborted")
		},
	}}
	cfg := testConfig()
	cfg.BackoffBase = time.Minute // would stall the test if the wait were not cancellable
	orch := NewOrchestrator(ext, cfg, nil)

	_, err := orch.Extract(ctx, testDoc())
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, ext.calls)
}

func TestExtractOverallTimeout(t *testing.T) {
	ext := &scriptedExtractor{outcomes: []func() (llm.ModelResponse, error){transportFailure}}
	cfg := testConfig()
	cfg.Timeout = 5 * time.Millisecond
	cfg.BackoffBase = time.Minute
	orch := NewOrchestrator(ext, cfg, nil)

	start := time.Now()
	_, err := orch.Extract(context.Background(), testDoc())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "timeout must interrupt the backoff wait")
}
