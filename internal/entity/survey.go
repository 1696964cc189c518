package entity

import (
	"time"

	"github.com/google/uuid"
)

// Survey represents one metreur survey sheet for data transfer between layers.
type Survey struct {
	ID             uuid.UUID `json:"id"`
	Reference      string    `json:"reference"`
	ClientName     *string   `json:"client_name,omitempty"`
	ClientAddress  *string   `json:"client_address,omitempty"`
	ClientPhone    *string   `json:"client_phone,omitempty"`
	ClientEmail    *string   `json:"client_email,omitempty"`
	SourceFilename string    `json:"source_filename"`
	Confidence     float32   `json:"confidence"`
	Warnings       []string  `json:"warnings,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
