// Package ticket implements the Anti-Corruption Layer translators for the
// tracker API's ticket resources.
package ticket

// TicketDTO matches the tracker API's ticket schema. Keys are camelCase on
// the wire; commentCount is computed server-side per list/get.
type TicketDTO struct {
	ID           string `json:"id"`
	ProjectID    string `json:"projectId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	Reporter     string `json:"reporter"`
	CommentCount int64  `json:"commentCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// ListResponseDTO matches the GET /api/tickets envelope.
type ListResponseDTO struct {
	Items []TicketDTO `json:"items"`
	Total int64       `json:"total"`
}

// CreateRequestDTO matches the POST /api/tickets request body. Status is not
// sent: the server forces every new ticket to OPEN.
type CreateRequestDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Reporter    string `json:"reporter"`
	ProjectID   string `json:"projectId"`
}

// UpdateRequestDTO matches the PATCH /api/tickets/{id} request body.
// All fields are optional; nil means "do not change this field".
type UpdateRequestDTO struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	Reporter    *string `json:"reporter,omitempty"`
}
