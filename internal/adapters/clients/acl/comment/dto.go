// Package comment implements the Anti-Corruption Layer translators for the
// tracker API's comment resources.
package comment

// CommentDTO matches the tracker API's comment schema.
type CommentDTO struct {
	ID        string `json:"id"`
	TicketID  string `json:"ticketId"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

// CreateRequestDTO matches the POST /api/tickets/{id}/comments request body.
// The ticket is identified by the URL path.
type CreateRequestDTO struct {
	Author string `json:"author"`
	Body   string `json:"body"`
}
