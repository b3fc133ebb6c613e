package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/trackboard/trackboard/internal/domain"
	"github.com/trackboard/trackboard/internal/domain/board"
	"github.com/trackboard/trackboard/internal/domain/ticket"
	"github.com/trackboard/trackboard/internal/ports"
)

// TicketStore owns the client-side snapshot of one project's tickets. Every
// mutation writes to the server first and refetches the full list on
// success, so the snapshot always reflects confirmed server state
// (last-write-wins across concurrent clients).
type TicketStore struct {
	client    ports.TrackerClient
	syncer    *Syncer
	confirmer ports.Confirmer
	logger    *slog.Logger

	mu        sync.RWMutex
	projectID string
	tickets   []ticket.Ticket
}

// NewTicketStore creates a TicketStore. Open scopes it to a project.
func NewTicketStore(client ports.TrackerClient, syncer *Syncer, confirmer ports.Confirmer,
	logger *slog.Logger,
) *TicketStore {
	return &TicketStore{
		client:    client,
		syncer:    syncer,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Open scopes the store to a project and loads its tickets.
func (s *TicketStore) Open(ctx context.Context, projectID string) error {
	s.mu.Lock()
	s.projectID = projectID
	s.tickets = nil
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// ProjectID returns the project the store is currently scoped to.
func (s *TicketStore) ProjectID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectID
}

// Refresh replaces the snapshot with the server's current ticket list for
// the open project. On failure the existing snapshot is left untouched.
func (s *TicketStore) Refresh(ctx context.Context) error {
	s.mu.RLock()
	projectID := s.projectID
	s.mu.RUnlock()

	tickets, err := s.client.ListTickets(ctx, projectID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tickets",
			slog.String("operation", "RefreshTickets"),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)
		return err
	}

	s.mu.Lock()
	s.tickets = tickets
	s.mu.Unlock()
	return nil
}

// Snapshot returns a defensive copy of the current ticket list, in the
// server's order (most recently updated first).
func (s *TicketStore) Snapshot() []ticket.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ticket.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Board projects the snapshot into the three workflow columns. The
// projection is computed fresh on every call, never cached.
func (s *TicketStore) Board() board.Columns {
	return board.Partition(s.Snapshot())
}

// Get returns the snapshot's copy of a ticket by ID.
func (s *TicketStore) Get(id string) (ticket.Ticket, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.ID == id {
			return t, true
		}
	}
	return ticket.Ticket{}, false
}

// Create validates and creates a ticket in the open project, then refetches
// the list. An empty priority defaults to MEDIUM. New tickets start in OPEN;
// the status is filled in locally so validation passes but is never sent,
// the server assigns it on insert. A validation failure sends no request.
func (s *TicketStore) Create(ctx context.Context, t *ticket.Ticket) error {
	t.ProjectID = s.ProjectID()
	if t.Priority == "" {
		t.Priority = ticket.DefaultPriority
	}
	if t.Status == "" {
		t.Status = ticket.StatusOpen
	}
	if err := t.Validate(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "creating ticket",
		slog.String("project_id", t.ProjectID),
		slog.String("title", t.Title),
	)

	return s.syncer.Mutate(ctx, "CreateTicket", func(ctx context.Context) error {
		_, err := s.client.CreateTicket(ctx, t)
		return err
	}, s.Refresh)
}

// Update validates the patch against the ticket's current status and sends
// it to the server, then refetches the list. Backward status transitions are
// rejected locally before any request. Returns [domain.ErrNotFound] if the
// ticket is not in the snapshot.
func (s *TicketStore) Update(ctx context.Context, id string, p *ticket.Patch) error {
	current, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}
	if err := p.Validate(current.Status); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "updating ticket", slog.String("ticket_id", id))

	return s.syncer.Mutate(ctx, "UpdateTicket", func(ctx context.Context) error {
		_, err := s.client.UpdateTicket(ctx, id, p)
		return err
	}, s.Refresh)
}

// Move advances a ticket exactly one workflow step (OPEN → IN_PROGRESS →
// CLOSED) and returns the new status. A ticket already CLOSED is terminal
// and moves nowhere; no request is sent.
func (s *TicketStore) Move(ctx context.Context, id string) (ticket.Status, error) {
	current, ok := s.Get(id)
	if !ok {
		return "", fmt.Errorf("ticket %s: %w", id, domain.ErrNotFound)
	}

	next, ok := current.Status.Advance()
	if !ok {
		return "", fmt.Errorf("ticket %s is %s and cannot advance: %w",
			id, current.Status, domain.ErrValidation)
	}

	s.logger.InfoContext(ctx, "moving ticket",
		slog.String("ticket_id", id),
		slog.String("from", current.Status.String()),
		slog.String("to", next.String()),
	)

	err := s.syncer.Mutate(ctx, "MoveTicket", func(ctx context.Context) error {
		_, err := s.client.UpdateTicket(ctx, id, &ticket.Patch{Status: &next})
		return err
	}, s.Refresh)
	if err != nil {
		return "", err
	}
	return next, nil
}

// Delete asks the confirmer before sending anything; a declined prompt means
// no request is issued. On server confirmation the ticket list is refetched.
func (s *TicketStore) Delete(ctx context.Context, id string) error {
	if !s.confirmer.Confirm("Delete this ticket?") {
		s.logger.InfoContext(ctx, "ticket delete declined", slog.String("ticket_id", id))
		return nil
	}

	s.logger.InfoContext(ctx, "deleting ticket", slog.String("ticket_id", id))

	return s.syncer.Mutate(ctx, "DeleteTicket", func(ctx context.Context) error {
		return s.client.DeleteTicket(ctx, id)
	}, s.Refresh)
}
