package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/trackboard/trackboard/internal/domain/project"
	"github.com/trackboard/trackboard/internal/ports"
)

// ProjectStore owns the client-side snapshot of the projects under the
// configured parent. The snapshot changes only from confirmed server state:
// Refresh replaces it wholesale, Create appends the server's response, and
// Delete refetches after the server confirms.
type ProjectStore struct {
	client    ports.TrackerClient
	syncer    *Syncer
	confirmer ports.Confirmer
	parent    string
	logger    *slog.Logger

	mu       sync.RWMutex
	projects []project.Project
}

// NewProjectStore creates a ProjectStore scoped to the given parent project.
func NewProjectStore(client ports.TrackerClient, syncer *Syncer, confirmer ports.Confirmer,
	parent string, logger *slog.Logger,
) *ProjectStore {
	return &ProjectStore{
		client:    client,
		syncer:    syncer,
		confirmer: confirmer,
		parent:    parent,
		logger:    logger,
	}
}

// Parent returns the parent project this store is scoped to.
func (s *ProjectStore) Parent() string {
	return s.parent
}

// Refresh replaces the snapshot with the server's current project list.
// On failure the existing snapshot is left untouched.
func (s *ProjectStore) Refresh(ctx context.Context) error {
	projects, err := s.client.ListProjects(ctx, s.parent)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list projects",
			slog.String("operation", "RefreshProjects"),
			slog.String("parent", s.parent),
			slog.Any("error", err),
		)
		return err
	}

	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	return nil
}

// Snapshot returns a defensive copy of the current project list, in the
// server's creation order.
func (s *ProjectStore) Snapshot() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]project.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Create validates and creates a project under the store's parent. On
// success the server's response, carrying the assigned ID and timestamp,
// is appended to the snapshot directly; the project list is not refetched.
// A validation failure sends no request.
func (s *ProjectStore) Create(ctx context.Context, name string) (*project.Project, error) {
	p := &project.Project{Name: name, ParentProject: s.parent}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "creating project",
		slog.String("name", name),
		slog.String("parent", s.parent),
	)

	var created *project.Project
	err := s.syncer.Mutate(ctx, "CreateProject", func(ctx context.Context) error {
		result, err := s.client.CreateProject(ctx, p)
		if err != nil {
			return err
		}
		created = result

		s.mu.Lock()
		s.projects = append(s.projects, *created)
		s.mu.Unlock()
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Delete asks the confirmer before sending anything; a declined prompt means
// no request is issued and the snapshot is untouched. On server confirmation
// the project list is refetched. A failed delete leaves the project visible.
func (s *ProjectStore) Delete(ctx context.Context, id string) error {
	if !s.confirmer.Confirm("Delete this project and all its tickets?") {
		s.logger.InfoContext(ctx, "project delete declined", slog.String("project_id", id))
		return nil
	}

	s.logger.InfoContext(ctx, "deleting project", slog.String("project_id", id))

	return s.syncer.Mutate(ctx, "DeleteProject", func(ctx context.Context) error {
		return s.client.DeleteProject(ctx, id)
	}, s.Refresh)
}
