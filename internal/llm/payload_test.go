package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestExtractJSONPayloadPrefersFencedBlock(t *testing.T) {
	text := "Here is the extraction:\n```json\n{\"menuiseries\": []}\n```\nAnything else {\"noise\": true}."
	raw, err := ExtractJSONPayload(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("extracted payload is not valid JSON: %v", err)
	}
	if _, ok := v["menuiseries"]; !ok {
		t.Errorf("expected the fenced block, got %s", raw)
	}
}

func TestExtractJSONPayloadBareFence(t *testing.T) {
	text := "```\n{\"menuiseries\": [], \"metadata\": {}}\n```"
	raw, err := ExtractJSONPayload(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"menuiseries": [], "metadata": {}}` {
		t.Errorf("unexpected payload: %s", raw)
	}
}

func TestExtractJSONPayloadOutermostBraces(t *testing.T) {
	text := `The sheet contains: {"menuiseries": [{"intitule": "Fenêtre"}], "metadata": {"confidence": 0.9}} — end.`
	raw, err := ExtractJSONPayload(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var v struct {
		Metadata struct {
			Confidence float64 `json:"confidence"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("extracted payload is not valid JSON: %v", err)
	}
	if v.Metadata.Confidence != 0.9 {
		t.Errorf("expected the outermost object, got %s", raw)
	}
}

func TestExtractJSONPayloadNoneFound(t *testing.T) {
	_, err := ExtractJSONPayload("the model refused and returned prose only")
	if !errors.Is(err, ErrNoJSONPayload) {
		t.Fatalf("expected ErrNoJSONPayload, got %v", err)
	}
}
