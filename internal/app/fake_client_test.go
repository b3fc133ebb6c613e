package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/trackboard/trackboard/internal/domain/comment"
	"github.com/trackboard/trackboard/internal/domain/project"
	"github.com/trackboard/trackboard/internal/domain/ticket"
	"github.com/trackboard/trackboard/internal/ports"
)

// fakeClient is a hand-written ports.TrackerClient test double. Each method
// delegates to the matching function field when set and counts its calls, so
// tests can assert both behavior and whether a request was sent at all.
type fakeClient struct {
	listProjectsFn  func(ctx context.Context, parent string) ([]project.Project, error)
	createProjectFn func(ctx context.Context, p *project.Project) (*project.Project, error)
	deleteProjectFn func(ctx context.Context, id string) error
	listTicketsFn   func(ctx context.Context, projectID string) ([]ticket.Ticket, error)
	createTicketFn  func(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error)
	updateTicketFn  func(ctx context.Context, id string, p *ticket.Patch) (*ticket.Ticket, error)
	deleteTicketFn  func(ctx context.Context, id string) error
	listCommentsFn  func(ctx context.Context, ticketID string) ([]comment.Comment, error)
	addCommentFn    func(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	healthFn        func(ctx context.Context) error

	listProjectsCalls  int
	createProjectCalls int
	deleteProjectCalls int
	listTicketsCalls   int
	createTicketCalls  int
	updateTicketCalls  int
	deleteTicketCalls  int
	listCommentsCalls  int
	addCommentCalls    int
}

var _ ports.TrackerClient = (*fakeClient)(nil)

func (f *fakeClient) ListProjects(ctx context.Context, parent string) ([]project.Project, error) {
	f.listProjectsCalls++
	if f.listProjectsFn != nil {
		return f.listProjectsFn(ctx, parent)
	}
	return nil, nil
}

func (f *fakeClient) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	f.createProjectCalls++
	if f.createProjectFn != nil {
		return f.createProjectFn(ctx, p)
	}
	out := *p
	return &out, nil
}

func (f *fakeClient) DeleteProject(ctx context.Context, id string) error {
	f.deleteProjectCalls++
	if f.deleteProjectFn != nil {
		return f.deleteProjectFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) ListTickets(ctx context.Context, projectID string) ([]ticket.Ticket, error) {
	f.listTicketsCalls++
	if f.listTicketsFn != nil {
		return f.listTicketsFn(ctx, projectID)
	}
	return nil, nil
}

func (f *fakeClient) CreateTicket(ctx context.Context, t *ticket.Ticket) (*ticket.Ticket, error) {
	f.createTicketCalls++
	if f.createTicketFn != nil {
		return f.createTicketFn(ctx, t)
	}
	out := *t
	return &out, nil
}

func (f *fakeClient) UpdateTicket(ctx context.Context, id string, p *ticket.Patch) (*ticket.Ticket, error) {
	f.updateTicketCalls++
	if f.updateTicketFn != nil {
		return f.updateTicketFn(ctx, id, p)
	}
	return &ticket.Ticket{ID: id}, nil
}

func (f *fakeClient) DeleteTicket(ctx context.Context, id string) error {
	f.deleteTicketCalls++
	if f.deleteTicketFn != nil {
		return f.deleteTicketFn(ctx, id)
	}
	return nil
}

func (f *fakeClient) ListComments(ctx context.Context, ticketID string) ([]comment.Comment, error) {
	f.listCommentsCalls++
	if f.listCommentsFn != nil {
		return f.listCommentsFn(ctx, ticketID)
	}
	return nil, nil
}

func (f *fakeClient) AddComment(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	f.addCommentCalls++
	if f.addCommentFn != nil {
		return f.addCommentFn(ctx, c)
	}
	out := *c
	return &out, nil
}

func (f *fakeClient) Health(ctx context.Context) error {
	if f.healthFn != nil {
		return f.healthFn(ctx)
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func alwaysConfirm() ports.Confirmer {
	return ports.ConfirmerFunc(func(string) bool { return true })
}

func neverConfirm() ports.Confirmer {
	return ports.ConfirmerFunc(func(string) bool { return false })
}
