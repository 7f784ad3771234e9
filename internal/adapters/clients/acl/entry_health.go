package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *EntryClient) Name() string {
	return "timesheet-entries"
}

// HealthCheck reports the downstream entries API's availability from the
// client's circuit breaker. No network call is made.
//
// Half-open and open both fail readiness, since entry validation cannot
// complete while duplicate lookups are being rejected.
func (c *EntryClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
