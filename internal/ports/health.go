package ports

import "context"

// HealthChecker reports the availability of a single downstream dependency.
type HealthChecker interface {
	// Name identifies the dependency (e.g. "tracker-api").
	Name() string

	// HealthCheck returns nil when the dependency is healthy, or a
	// descriptive error when it is degraded or failing.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers and runs them on demand.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns results keyed by checker name; nil values indicate
	// healthy components.
	CheckAll(ctx context.Context) map[string]error
}
