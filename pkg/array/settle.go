package array

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Task is one unit of work for AllSettled.
type Task[T any] func(ctx context.Context) (T, error)

// Settled holds the outcome of AllSettled. Results and Rejected each keep the
// order of the tasks that produced them.
type Settled[T any] struct {
	Results  []T
	Rejected []error
}

type settleConfig struct {
	concurrency int
	limiter     *rate.Limiter
}

// SettleOption configures AllSettled.
type SettleOption func(*settleConfig)

// WithConcurrency caps the number of tasks running at once. n <= 0 means no cap.
func WithConcurrency(n int) SettleOption {
	return func(c *settleConfig) { c.concurrency = n }
}

// WithRateLimit makes every task wait for a token from limiter before it starts.
func WithRateLimit(limiter *rate.Limiter) SettleOption {
	return func(c *settleConfig) { c.limiter = limiter }
}

// AllSettled runs every task and waits for all of them, never stopping early.
// Task errors, panics and cancelled rate-limit waits end up in Rejected.
func AllSettled[T any](ctx context.Context, tasks []Task[T], opts ...SettleOption) Settled[T] {
	cfg := settleConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	type outcome struct {
		value T
		err   error
	}
	outcomes := make([]outcome, len(tasks))

	var g errgroup.Group
	if cfg.concurrency > 0 {
		g.SetLimit(cfg.concurrency)
	}

	for i, task := range tasks {
		g.Go(func() error {
			if cfg.limiter != nil {
				if err := cfg.limiter.Wait(ctx); err != nil {
					log.Printf("settle: task %d not started: %v", i, err)
					outcomes[i].err = fmt.Errorf("waiting for rate limiter: %w", err)
					return nil
				}
			}
			outcomes[i].value, outcomes[i].err = runTask(ctx, task)
			return nil
		})
	}
	_ = g.Wait()

	settled := Settled[T]{Results: []T{}, Rejected: []error{}}
	for _, o := range outcomes {
		if o.err != nil {
			settled.Rejected = append(settled.Rejected, o.err)
			continue
		}
		settled.Results = append(settled.Results, o.value)
	}
	return settled
}

func runTask[T any](ctx context.Context, task Task[T]) (value T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	if task == nil {
		return value, fmt.Errorf("nil task")
	}
	return task(ctx)
}
