package ports

import (
	"context"

	"github.com/trackboard/trackboard/internal/domain"
	"github.com/trackboard/trackboard/internal/domain/comment"
	"github.com/trackboard/trackboard/internal/domain/project"
	"github.com/trackboard/trackboard/internal/domain/ticket"
)

// TrackerClient defines the client port for the remote tracker API.
// Implemented by the ACL adapter; called by the store layer.
// Methods map 1:1 to API endpoints using domain terminology.
//
// No method mutates client state: every call returns the server's view and
// the stores decide what to keep. Mutating calls return only after the server
// has confirmed the write.
type TrackerClient interface {
	// ListProjects returns all projects whose parentProject equals parent,
	// in server order. An empty slice is a valid, non-error result.
	ListProjects(ctx context.Context, parent string) ([]project.Project, error)

	// CreateProject creates a project and returns the created entity with
	// server-assigned ID and timestamp.
	// Returns domain.ErrValidation if the server rejects the payload.
	CreateProject(ctx context.Context, p *project.Project) (*project.Project, error)

	// DeleteProject deletes a project by ID. The server cascades the delete
	// to the project's tickets and their comments.
	// Returns domain.ErrNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id string) error

	// ListTickets returns all tickets for a project, in server order.
	ListTickets(ctx context.Context, projectID string) ([]ticket.Ticket, error)

	// CreateTicket creates a ticket and returns the created entity.
	// Returns domain.ErrValidation if the server rejects the payload.
	CreateTicket(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error)

	// UpdateTicket sends a partial update carrying only the patch's set
	// fields and returns the updated entity.
	// Returns domain.ErrNotFound if the ticket does not exist.
	UpdateTicket(ctx context.Context, id string, patch *ticket.Patch) (*ticket.Ticket, error)

	// DeleteTicket deletes a ticket by ID. Any 2xx response (the server
	// answers 204) counts as success.
	// Returns domain.ErrNotFound if the ticket does not exist.
	DeleteTicket(ctx context.Context, id string) error

	// ListComments returns a ticket's comments in server order (oldest
	// first). An empty slice means "no comments yet", not an error.
	ListComments(ctx context.Context, ticketID string) ([]comment.Comment, error)

	// AddComment appends a comment to a ticket and returns the created
	// entity. Returns domain.ErrNotFound if the ticket does not exist.
	AddComment(ctx context.Context, c *comment.Comment) (*comment.Comment, error)

	// Health probes the server's health endpoint.
	// Returns domain.ErrTransport or domain.ErrUnavailable on failure.
	Health(ctx context.Context) error
}

// AuthClient defines the client port for the identity collaborator. The core
// uses the returned user only for the display name; there is no token or
// authorization state.
type AuthClient interface {
	// Login authenticates by email and password.
	// Returns domain.ErrForbidden on bad credentials.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// Signup registers a new account and returns the created user.
	// Returns domain.ErrValidation if the server rejects the payload.
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
}
