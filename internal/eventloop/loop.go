// Package eventloop runs callbacks one at a time on a single goroutine.
//
// A session's game state is owned by its loop: client events are posted into
// it and timers fire into it, so the state never needs a lock.
package eventloop

import (
	"context"
	"time"
)

type Loop struct {
	tasks chan func()
	done  chan struct{}
}

func New(buffer int) *Loop {
	return &Loop{
		tasks: make(chan func(), buffer),
		done:  make(chan struct{}),
	}
}

// Run executes posted tasks in order until ctx is cancelled. It must be
// called once.
func (that *Loop) Run(ctx context.Context) error {
	defer close(that.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task := <-that.tasks:
			task()
		}
	}
}

// Post queues task. It reports false when the loop has stopped, in which case
// the task is dropped.
func (that *Loop) Post(task func()) bool {
	select {
	case <-that.done:
		return false
	default:
	}

	select {
	case that.tasks <- task:
		return true
	case <-that.done:
		return false
	}
}

// After posts task once, after delay. The timer cannot be cancelled; tasks
// that may outlive their purpose have to check their own preconditions.
func (that *Loop) After(delay time.Duration, task func()) {
	time.AfterFunc(delay, func() {
		that.Post(task)
	})
}

// Done is closed when Run returns.
func (that *Loop) Done() <-chan struct{} {
	return that.done
}
