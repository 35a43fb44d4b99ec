package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
	"trip-bot-service/internal/platform/obs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskQueueRunsDetachedTasks(t *testing.T) {
	q := NewTaskQueue(2)

	ctx, cancel := context.WithCancel(obs.WithRequestID(context.Background(), "req-1"))
	cancel()

	var ran atomic.Int32
	var reqIDs [3]string
	for i := 0; i < 3; i++ {
		q.Go(ctx, "count", func(ctx context.Context) {
			assert.NoError(t, ctx.Err(), "caller cancellation must not reach the task")
			reqIDs[i] = obs.RequestID(ctx)
			ran.Add(1)
		})
	}
	q.Go(ctx, "explode", func(ctx context.Context) { panic("boom") })

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer waitCancel()
	require.NoError(t, q.Wait(waitCtx))

	assert.EqualValues(t, 3, ran.Load())
	assert.Equal(t, [3]string{"req-1", "req-1", "req-1"}, reqIDs)
}

func TestTaskQueueWaitHonoursDeadline(t *testing.T) {
	q := NewTaskQueue(1)
	release := make(chan struct{})
	defer close(release)

	q.Go(context.Background(), "block", func(ctx context.Context) { <-release })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.Wait(ctx), context.DeadlineExceeded)
}

func TestTaskQueueDelayedTasksDoNotBlock(t *testing.T) {
	q := NewTaskQueue(1)

	start := time.Now()
	delayed := make(chan time.Duration, 1)
	q.GoAfter(context.Background(), 150*time.Millisecond, "later", func(ctx context.Context) {
		delayed <- time.Since(start)
	})

	done := make(chan struct{})
	q.Go(context.Background(), "trip", func(ctx context.Context) { close(done) })
	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("task blocked behind a delayed task")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, q.Wait(ctx))
	assert.GreaterOrEqual(t, <-delayed, 150*time.Millisecond)
}
