package constants

// RecordStatus is the canonical lifecycle status of a fixture record.
type RecordStatus string

// Stable values (store these exact strings in DB).
const (
	StatusImported   RecordStatus = "IMPORTED"    // extracted, no operator edits
	StatusInProgress RecordStatus = "IN_PROGRESS" // edits present, not signed off
	StatusValidated  RecordStatus = "VALIDATED"   // signed off, validation timestamp set
)

// RecordStatuses holds the allowed values for the status field in fixture_record.
var RecordStatuses = []string{
	string(StatusImported),
	string(StatusInProgress),
	string(StatusValidated),
}

// JobStatus is the canonical status for rows in extraction_job.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "QUEUED"     // queued for processing
	JobStatusRunning   JobStatus = "RUNNING"    // model call in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // records extracted and stored
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)

// JobStatuses holds the allowed values for the status field in extraction_job.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusExtractOK),
	string(JobStatusFailed),
}

// Severity is the deviation severity tier computed by reconciliation.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)
