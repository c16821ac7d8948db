package dispatch

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Scope owns every task launched on behalf of one owner. Cancelling the scope
// cancels all of them; no task outlives it.
type Scope struct {
	dispatcher Dispatcher
	ctx        context.Context
	cancel     context.CancelFunc

	tasks      map[string]*Task
	tasksMutex sync.Mutex

	// background work started through Task.Await, replaced on every Wait
	groupMu sync.Mutex
	group   *errgroup.Group
}

// NewScope creates a scope whose tasks run on d. Cancelling parent cancels
// the scope as well.
func NewScope(parent context.Context, d Dispatcher) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{
		dispatcher: d,
		ctx:        ctx,
		cancel:     cancel,
		tasks:      make(map[string]*Task),
		group:      &errgroup.Group{},
	}
}

// Launch queues fn on the dispatcher as the first segment of a new task.
// Tasks start in launch order. Launching on a cancelled scope returns a task
// that is already done and never runs fn.
func (s *Scope) Launch(name string, fn func(t *Task)) *Task {
	ctx, cancel := context.WithCancel(s.ctx)
	t := &Task{
		ID:      generateTaskID(),
		Name:    name,
		ctx:     ctx,
		cancel:  cancel,
		scope:   s,
		pending: 1,
		done:    make(chan struct{}),
	}

	s.tasksMutex.Lock()
	if s.ctx.Err() != nil {
		s.tasksMutex.Unlock()
		cancel()
		close(t.done)
		return t
	}
	s.tasks[t.ID] = t
	s.tasksMutex.Unlock()

	if !s.dispatcher.Dispatch(t.segment(func() { fn(t) })) {
		t.release()
	}
	return t
}

func (s *Scope) task(id string) (*Task, bool) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	t, exists := s.tasks[id]
	return t, exists
}

// Active returns the number of outstanding tasks
func (s *Scope) Active() int {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	return len(s.tasks)
}

// Cancel cancels every outstanding task and rejects new launches. It does
// not block, so it is safe to call from the dispatcher.
func (s *Scope) Cancel() {
	if s.ctx.Err() == nil {
		log.Printf("cancelling scope with %d active task(s)", s.Active())
	}
	s.cancel()
}

// Wait blocks until every outstanding task has finished, including tasks
// launched while waiting, and returns the first background error since the
// previous Wait. Cancelled work is not reported as an error.
// Wait must not be called from the dispatcher goroutine.
func (s *Scope) Wait() error {
	for {
		s.tasksMutex.Lock()
		var next *Task
		for _, t := range s.tasks {
			next = t
			break
		}
		s.tasksMutex.Unlock()

		if next == nil {
			break
		}
		<-next.done
	}

	s.groupMu.Lock()
	group := s.group
	s.group = &errgroup.Group{}
	s.groupMu.Unlock()

	return group.Wait()
}

// goBackground starts fn in the current background group
func (s *Scope) goBackground(fn func() error) {
	s.groupMu.Lock()
	defer s.groupMu.Unlock()
	s.group.Go(fn)
}

func (s *Scope) forget(t *Task) {
	s.tasksMutex.Lock()
	delete(s.tasks, t.ID)
	s.tasksMutex.Unlock()
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
