package dto

import "github.com/GlebRadaev/acordos/internal/domain"

type UploadResponseDTO struct {
	SessionID string `json:"session_id"`
}

type PreviewRequestDTO struct {
	SessionID  string `json:"session_id"`
	SampleSize int    `json:"sample_size"`
}

type PreviewResponseDTO struct {
	Columns   []string         `json:"columns"`
	Preview   []map[string]any `json:"preview"`
	TotalRows int              `json:"total_rows"`
}

// Mapping is target field -> source column, grouped by section.
type Mapping map[string]map[string]string

type MappingRequestDTO struct {
	SessionID string  `json:"session_id"`
	Mapping   Mapping `json:"mapping"`
}

type ValidationSummary struct {
	TotalRows   int `json:"total_rows"`
	ValidRows   int `json:"valid_rows"`
	InvalidRows int `json:"invalid_rows"`
}

type RowIssue struct {
	Row     *int   `json:"row,omitempty"`
	Message string `json:"message"`
}

type ValidationResponseDTO struct {
	Summary  ValidationSummary `json:"summary"`
	Errors   []RowIssue        `json:"errors"`
	Warnings []RowIssue        `json:"warnings"`
}

type RowResult struct {
	Row     int    `json:"row"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type CommitResponseDTO struct {
	Message string              `json:"message"`
	Results []RowResult         `json:"results"`
	Totals  domain.ImportTotals `json:"totals"`
}
