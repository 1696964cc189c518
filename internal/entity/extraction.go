package entity

// RecordSeed is one pre-persistence fixture record as produced by extraction:
// validated, normalized, not yet owned by a survey row.
type RecordSeed struct {
	Repere   *string        `json:"repere,omitempty"`
	Title    string         `json:"title"`
	Position int            `json:"position"`
	Fields   map[string]any `json:"fields"`
}

// ClientIdentity is the best-effort client extraction from the sheet header.
type ClientIdentity struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// RecordFailure reports one seed that failed required-field validation.
// It does not abort extraction of sibling records.
type RecordFailure struct {
	Index   int    `json:"index"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ExtractionResult is the orchestrator's output for one document. It exists
// only for the duration of one extraction call; the caller consumes it to
// create fixture records and discards it.
type ExtractionResult struct {
	Records    []RecordSeed    `json:"records"`
	Failures   []RecordFailure `json:"failures,omitempty"`
	IsValid    bool            `json:"is_valid"`
	Invalidity string          `json:"invalidity,omitempty"`
	Confidence float32         `json:"confidence"`
	Warnings   []string        `json:"warnings,omitempty"`
	Client     *ClientIdentity `json:"client,omitempty"`

	// Annotated by the orchestrator on success.
	RetryCount int    `json:"retry_count"`
	ModelName  string `json:"model_name"`
	TokensUsed int    `json:"tokens_used"`
}
