package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	commentacl "github.com/trackboard/trackboard/internal/adapters/clients/acl/comment"
	projectacl "github.com/trackboard/trackboard/internal/adapters/clients/acl/project"
	ticketacl "github.com/trackboard/trackboard/internal/adapters/clients/acl/ticket"
	"github.com/trackboard/trackboard/internal/domain/comment"
	"github.com/trackboard/trackboard/internal/domain/project"
	"github.com/trackboard/trackboard/internal/domain/ticket"
	"github.com/trackboard/trackboard/internal/platform/httpclient"
	"github.com/trackboard/trackboard/internal/ports"
)

// Compile-time interface check.
var _ ports.TrackerClient = (*TrackerClient)(nil)

// TrackerClient is the outbound adapter for the tracker API. It implements
// [ports.TrackerClient] (9 operations across projects, tickets, and comments).
//
// All methods translate between domain types and the tracker API's wire
// representations via the ACL translators in sub-packages. HTTP errors are
// mapped to domain errors (ErrNotFound, ErrValidation, etc.) by
// [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff for reads, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type TrackerClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewTrackerClient creates a TrackerClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the tracker
// API root (e.g. "http://localhost:4000"). The logger is used for error-level
// diagnostics on failed or unexpected responses.
func NewTrackerClient(client *httpclient.Client, logger *slog.Logger) *TrackerClient {
	return &TrackerClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// --- Project operations ---

// ListProjects fetches the projects under a parent from
// GET /api/projects/{parent}, in creation order.
func (c *TrackerClient) ListProjects(ctx context.Context, parent string) ([]project.Project, error) {
	path := "/api/projects/" + url.PathEscape(parent)

	var dto projectacl.ListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return projectacl.ToDomainList(dto), nil
}

// CreateProject sends a POST /api/projects with the translated request body
// and returns the created project with its server-assigned ID and timestamp.
// Returns [domain.ErrValidation] if the tracker API rejects the payload.
func (c *TrackerClient) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	reqDTO := projectacl.ToCreateRequest(p)

	var respDTO projectacl.CreateResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/projects", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := projectacl.ToDomain(&respDTO.Project)
	return &result, nil
}

// DeleteProject sends a DELETE /api/projects/{id}. Returns
// [domain.ErrNotFound] if the project does not exist. Any 2xx is accepted.
func (c *TrackerClient) DeleteProject(ctx context.Context, id string) error {
	path := "/api/projects/" + url.PathEscape(id)
	return c.req.Do(ctx, http.MethodDelete, path, 0, nil, nil)
}

// --- Ticket operations ---

// ListTickets fetches the tickets of a project from
// GET /api/tickets?projectId={id}, most recently updated first. Comment
// counts ride along on each ticket.
func (c *TrackerClient) ListTickets(ctx context.Context, projectID string) ([]ticket.Ticket, error) {
	q := url.Values{}
	q.Set("projectId", projectID)
	path := "/api/tickets?" + q.Encode()

	var dto ticketacl.ListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return ticketacl.ToDomainList(dto), nil
}

// CreateTicket sends a POST /api/tickets with the translated request body and
// returns the created ticket. The server forces the initial status to OPEN
// regardless of the ticket passed in. Returns [domain.ErrValidation] if the
// tracker API rejects the payload.
func (c *TrackerClient) CreateTicket(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error) {
	reqDTO := ticketacl.ToCreateRequest(t)

	var respDTO ticketacl.TicketDTO
	if err := c.req.Do(ctx, http.MethodPost, "/api/tickets", http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := ticketacl.ToDomain(&respDTO)
	return &result, nil
}

// UpdateTicket sends a PATCH /api/tickets/{id} carrying only the patch's set
// fields and returns the updated ticket. Returns [domain.ErrNotFound] if the
// ticket does not exist or [domain.ErrValidation] if the payload is rejected.
func (c *TrackerClient) UpdateTicket(ctx context.Context, id string, p *ticket.Patch) (*ticket.Ticket, error) {
	if p.IsZero() {
		return nil, fmt.Errorf("empty patch for ticket %s", id)
	}
	path := "/api/tickets/" + url.PathEscape(id)
	reqDTO := ticketacl.ToUpdateRequest(p)

	var respDTO ticketacl.TicketDTO
	if err := c.req.Do(ctx, http.MethodPatch, path, http.StatusOK, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := ticketacl.ToDomain(&respDTO)
	return &result, nil
}

// DeleteTicket sends a DELETE /api/tickets/{id}. Returns
// [domain.ErrNotFound] if the ticket does not exist. Any 2xx is accepted
// (the tracker API answers 204 here but 200 for project deletes).
func (c *TrackerClient) DeleteTicket(ctx context.Context, id string) error {
	path := "/api/tickets/" + url.PathEscape(id)
	return c.req.Do(ctx, http.MethodDelete, path, 0, nil, nil)
}

// --- Comment operations ---

// ListComments fetches a ticket's comments from
// GET /api/tickets/{id}/comments, oldest first. The response is a bare JSON
// array, no envelope.
func (c *TrackerClient) ListComments(ctx context.Context, ticketID string) ([]comment.Comment, error) {
	path := "/api/tickets/" + url.PathEscape(ticketID) + "/comments"

	var dtos []commentacl.CommentDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dtos); err != nil {
		return nil, err
	}
	return commentacl.ToDomainList(dtos), nil
}

// --- Health ---

// Health probes GET /api/health. A 200 answer means the server is up; the
// response body ({status, timestamp}) is not inspected.
func (c *TrackerClient) Health(ctx context.Context) error {
	return c.req.Do(ctx, http.MethodGet, "/api/health", http.StatusOK, nil, nil)
}

// AddComment sends a POST /api/tickets/{id}/comments and returns the created
// comment. The server also bumps the ticket's updatedAt. Returns
// [domain.ErrNotFound] if the ticket does not exist.
func (c *TrackerClient) AddComment(ctx context.Context, cm *comment.Comment) (*comment.Comment, error) {
	path := "/api/tickets/" + url.PathEscape(cm.TicketID) + "/comments"
	reqDTO := commentacl.ToCreateRequest(cm)

	var respDTO commentacl.CommentDTO
	if err := c.req.Do(ctx, http.MethodPost, path, http.StatusCreated, reqDTO, &respDTO); err != nil {
		return nil, err
	}
	result := commentacl.ToDomain(&respDTO)
	return &result, nil
}
