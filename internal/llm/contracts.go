package llm

import "context"

// ExtractRequest carries one scanned survey sheet to the model boundary.
type ExtractRequest struct {
	Document     []byte
	MimeType     string
	FilenameHint string
}

// ModelResponse is the raw model output plus the usage the provider reported.
type ModelResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// DocumentExtractor is the interface the extraction orchestrator depends on.
type DocumentExtractor interface {
	ExtractDocument(ctx context.Context, req ExtractRequest) (ModelResponse, error)
}

// SurveyPayload is the JSON object the model is instructed to return.
type SurveyPayload struct {
	Menuiseries []map[string]any `json:"menuiseries"`
	Metadata    PayloadMetadata  `json:"metadata"`
}

// PayloadMetadata carries document-level extraction metadata.
type PayloadMetadata struct {
	IsValidDocument bool           `json:"is_valid_document"`
	InvalidReason   string         `json:"invalid_reason,omitempty"`
	Confidence      float32        `json:"confidence"`
	Warnings        []string       `json:"warnings,omitempty"`
	Client          *ClientPayload `json:"client,omitempty"`
}

// ClientPayload is the best-effort client identity from the sheet header.
type ClientPayload struct {
	Nom       string `json:"nom,omitempty"`
	Adresse   string `json:"adresse,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
}
