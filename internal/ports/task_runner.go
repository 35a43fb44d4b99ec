package ports

import (
	"context"
	"time"
)

// TaskRunner runs a unit of work in the background. The caller keeps no
// handle and observes no result.
type TaskRunner interface {
	Go(ctx context.Context, name string, task func(ctx context.Context))
	// GoAfter starts task once delay has elapsed. Waiting does not occupy
	// a worker.
	GoAfter(ctx context.Context, delay time.Duration, name string, task func(ctx context.Context))
}
