package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createBadgeRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category"    validate:"required"`
	Level       string `json:"level"       validate:"required"`
	Status      string `json:"status"`
	CreatedBy   string `json:"created_by"  validate:"required"`
}

// --- Response types ---
// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal
// service changes.

type badgeResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	Level       string    `json:"level"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// listBadgesResponse carries one page of badges plus pagination metadata.
// has_more is true when records exist beyond the returned page.
type listBadgesResponse struct {
	Badges  []badgeResponse `json:"badges"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
	HasMore bool            `json:"has_more"`
}
