package app

import (
	"context"
	"errors"

	"github.com/trackboard/trackboard/internal/app/fanout"
)

// openWorkers bounds the concurrency of the initial board load. Two legs
// exist today (projects and tickets), so both run in parallel.
const openWorkers = 2

// OpenBoard loads the project list and the ticket list concurrently when a
// board opens. Each leg updates its own store only on success, so one
// failing leg never corrupts the other store's snapshot. The combined error
// carries every failed leg.
func OpenBoard(ctx context.Context, projects *ProjectStore, tickets *TicketStore, projectID string) error {
	loaders := []func(context.Context) error{
		projects.Refresh,
		func(ctx context.Context) error { return tickets.Open(ctx, projectID) },
	}

	results := fanout.Run(ctx, openWorkers, loaders,
		func(ctx context.Context, load func(context.Context) error) (struct{}, error) {
			return struct{}{}, load(ctx)
		})

	errs := make([]error, 0, len(results))
	for _, r := range results {
		errs = append(errs, r.Err)
	}
	return errors.Join(errs...)
}
