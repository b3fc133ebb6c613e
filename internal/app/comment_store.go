package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trackboard/trackboard/internal/domain/comment"
	"github.com/trackboard/trackboard/internal/ports"
)

// CommentStore owns the comment thread of the ticket whose detail view is
// open. Adding a comment writes to the server and refetches the thread;
// closing the detail view triggers the ticket-list refetch so comment counts
// on the board catch up.
type CommentStore struct {
	client  ports.TrackerClient
	syncer  *Syncer
	logger  *slog.Logger
	onClose func(context.Context) error

	mu       sync.RWMutex
	ticketID string
	comments []comment.Comment
}

// NewCommentStore creates a CommentStore. onClose runs when the detail view
// closes; wire it to the ticket store's Refresh so board comment counts
// stay honest. It may be nil.
func NewCommentStore(client ports.TrackerClient, syncer *Syncer,
	onClose func(context.Context) error, logger *slog.Logger,
) *CommentStore {
	return &CommentStore{
		client:  client,
		syncer:  syncer,
		onClose: onClose,
		logger:  logger,
	}
}

// OpenDetail scopes the store to a ticket and loads its comment thread.
func (s *CommentStore) OpenDetail(ctx context.Context, ticketID string) error {
	s.mu.Lock()
	s.ticketID = ticketID
	s.comments = nil
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// TicketID returns the ticket whose detail view is open.
func (s *CommentStore) TicketID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticketID
}

// Refresh replaces the snapshot with the server's current comment thread.
// On failure the existing snapshot is left untouched.
func (s *CommentStore) Refresh(ctx context.Context) error {
	s.mu.RLock()
	ticketID := s.ticketID
	s.mu.RUnlock()

	comments, err := s.client.ListComments(ctx, ticketID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list comments",
			slog.String("operation", "RefreshComments"),
			slog.String("ticket_id", ticketID),
			slog.Any("error", err),
		)
		return err
	}

	s.mu.Lock()
	s.comments = comments
	s.mu.Unlock()
	return nil
}

// Snapshot returns a defensive copy of the comment thread, oldest first.
func (s *CommentStore) Snapshot() []comment.Comment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]comment.Comment, len(s.comments))
	copy(out, s.comments)
	return out
}

// Add validates and posts a comment to the open ticket, then refetches the
// thread. A validation failure sends no request.
func (s *CommentStore) Add(ctx context.Context, author, body string) error {
	c := &comment.Comment{TicketID: s.TicketID(), Author: author, Body: body}
	if err := c.Validate(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "adding comment", slog.String("ticket_id", c.TicketID))

	return s.syncer.Mutate(ctx, "AddComment", func(ctx context.Context) error {
		_, err := s.client.AddComment(ctx, c)
		return err
	}, s.Refresh)
}

// CloseDetail clears the open thread and runs the registered close hook
// (the ticket-list refetch that updates board comment counts).
func (s *CommentStore) CloseDetail(ctx context.Context) error {
	s.mu.Lock()
	s.ticketID = ""
	s.comments = nil
	s.mu.Unlock()

	if s.onClose == nil {
		return nil
	}
	return s.onClose(ctx)
}
