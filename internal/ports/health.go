package ports

import "context"

// HealthChecker reports whether a dependency can currently serve requests.
// The entry store backends implement it; a failing check takes the service
// out of readiness.
type HealthChecker interface {
	// Name keys the check in the readiness body, e.g. "timesheet-entries".
	Name() string
	// HealthCheck returns nil when healthy. It must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry aggregates checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every check and maps checker name to its result; a nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
