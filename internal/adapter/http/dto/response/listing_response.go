package response

import (
	"corpculture/internal/domain/entities"
	"corpculture/internal/usecase"
)

// PageResponse is one page of an upstream collection after query refinement.
type PageResponse struct {
	Rows       []map[string]any `json:"rows"`
	TotalRows  int              `json:"total_rows"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
}

func FromPage(p entities.Page) PageResponse {
	rows := p.Rows
	if rows == nil {
		rows = []map[string]any{}
	}
	return PageResponse{
		Rows:       rows,
		TotalRows:  p.TotalRows,
		TotalPages: p.TotalPages,
		Page:       p.PageIndex,
	}
}

// OptionsResponse carries dropdown entries. Degraded is true when the upstream
// lookup failed and the list fell back to empty.
type OptionsResponse struct {
	Options  []usecase.Option `json:"options"`
	Degraded bool             `json:"degraded"`
}

func FromOptions(options []usecase.Option, degraded bool) OptionsResponse {
	if options == nil {
		options = []usecase.Option{}
	}
	return OptionsResponse{Options: options, Degraded: degraded}
}

type SequenceResponse struct {
	Number string `json:"number"`
}

type DashboardResponse struct {
	Counts map[string]int64 `json:"counts"`
}

func FromDashboard(summary usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{Counts: summary.Counts}
}

// SubmissionResponse wraps the upstream document returned by a successful
// create or update.
type SubmissionResponse struct {
	Document map[string]any `json:"document"`
	RemoteID string         `json:"remote_id,omitempty"`
}

func FromSubmission(document map[string]any) SubmissionResponse {
	resp := SubmissionResponse{Document: document}
	if id := entities.ReferenceID(document["_id"]); id != "" {
		resp.RemoteID = id
	} else if id := entities.ReferenceID(document["id"]); id != "" {
		resp.RemoteID = id
	}
	return resp
}
