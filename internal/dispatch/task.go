package dispatch

import (
	"context"
	"log"
	"sync"
)

// Task is a handle on work launched through a Scope. A task is made of
// segments that run on the dispatcher; Await suspends it between segments.
type Task struct {
	ID   string
	Name string

	ctx    context.Context
	cancel context.CancelFunc
	scope  *Scope

	mu      sync.Mutex
	pending int
	done    chan struct{}
}

// Cancel stops the task. Segments that have not started yet are skipped.
func (t *Task) Cancel() {
	t.cancel()
}

// Done is closed once the task has no segment left to run
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Await runs work on a background goroutine and then, if work succeeded and
// the task is still live, queues resume back on the dispatcher. It must be
// called from one of the task's own segments. An error returned after the
// task context is done, whether cancelled or past a parent deadline, counts
// as cancellation and is not reported.
func (t *Task) Await(work func(ctx context.Context) error, resume func()) {
	t.retain()

	t.scope.goBackground(func() error {
		if err := work(t.ctx); err != nil {
			// Checked before release, which cancels the finished task.
			cancelled := t.ctx.Err() != nil
			t.release()
			if cancelled {
				return nil
			}
			log.Printf("task %s (%s) failed: %v", t.Name, t.ID, err)
			return err
		}
		if !t.scope.dispatcher.Dispatch(t.segment(resume)) {
			t.release()
		}
		return nil
	})
}

// segment wraps fn so it is skipped once the task is cancelled and always
// releases its hold on the task.
func (t *Task) segment(fn func()) func() {
	return func() {
		defer t.release()
		if t.ctx.Err() != nil {
			return
		}
		fn()
	}
}

func (t *Task) retain() {
	t.mu.Lock()
	t.pending++
	t.mu.Unlock()
}

func (t *Task) release() {
	t.mu.Lock()
	t.pending--
	finished := t.pending == 0
	t.mu.Unlock()

	if finished {
		t.cancel()
		t.scope.forget(t)
		close(t.done)
	}
}
