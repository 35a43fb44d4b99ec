package services

import (
	"context"
	"log"
	"sync"
	"time"
	"trip-bot-service/internal/platform/obs"
)

const DefaultTaskConcurrency = 8

// TaskQueue runs fire-and-forget work on a bounded number of goroutines.
//
// Tasks are detached from the caller's cancellation so they outlive the HTTP
// request that scheduled them, but keep its values (request id).
type TaskQueue struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

func NewTaskQueue(maxConcurrent int) *TaskQueue {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultTaskConcurrency
	}
	return &TaskQueue{sem: make(chan struct{}, maxConcurrent)}
}

func (q *TaskQueue) Go(ctx context.Context, name string, task func(ctx context.Context)) {
	q.GoAfter(ctx, 0, name, task)
}

// GoAfter schedules task to run after delay. The slot is only taken once the
// delay has elapsed, so pending delayed work never blocks other tasks.
func (q *TaskQueue) GoAfter(ctx context.Context, delay time.Duration, name string, task func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)

	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if delay > 0 {
			t := time.NewTimer(delay)
			<-t.C
		}

		q.sem <- struct{}{}
		defer func() { <-q.sem }()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("req_id=%s task=%s panic=%v", obs.RequestID(ctx), name, r)
			}
		}()

		start := time.Now()
		task(ctx)
		log.Printf("req_id=%s task=%s dur=%dms", obs.RequestID(ctx), name, time.Since(start).Milliseconds())
	}()
}

// Wait blocks until every scheduled task has finished or ctx is done.
func (q *TaskQueue) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
