package openai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avalette/metreur-tracker/internal/llm"
)

// ExtractDocument implements llm.DocumentExtractor against the OpenAI
// chat/completions endpoint, attaching the scan as a data URL. PDF scans go
// through the file content part; images through image_url.
func (c *Client) ExtractDocument(ctx context.Context, req llm.ExtractRequest) (llm.ModelResponse, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"mime_type", req.MimeType,
		"document_bytes", len(req.Document),
		"filename", req.FilenameHint,
	)

	schema := llm.BuildSurveyJSONSchema()
	dataURL := "data:" + req.MimeType + ";base64," + base64.StdEncoding.EncodeToString(req.Document)

	userParts := []map[string]any{
		{"type": "text", "text": llm.BuildUserPrompt(req.FilenameHint)},
	}
	if req.MimeType == "application/pdf" {
		userParts = append(userParts, map[string]any{
			"type": "file",
			"file": map[string]any{"filename": req.FilenameHint, "file_data": dataURL},
		})
	} else {
		userParts = append(userParts, map[string]any{
			"type":      "image_url",
			"image_url": map[string]any{"url": dataURL},
		})
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.BuildSystemPrompt()},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
			{"role": "user", "content": userParts},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.client, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ModelResponse{}, err
	}

	var cc struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ModelResponse{}, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid, "raw", string(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.ModelResponse{}, fmt.Errorf("no choices in openai response")
	}

	model := cc.Model
	if model == "" {
		model = c.cfg.Model
	}
	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"model", model,
		"tokens", cc.Usage.TotalTokens,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.ModelResponse{
		Text:       strings.TrimSpace(cc.Choices[0].Message.Content),
		Model:      model,
		TokensUsed: cc.Usage.TotalTokens,
	}, nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
