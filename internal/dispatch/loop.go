package dispatch

import (
	"log"
	"sync"
)

// Loop is a headless Dispatcher backed by a single goroutine and an
// unbounded FIFO queue, so Dispatch never blocks, even from inside the loop.
type Loop struct {
	mu     sync.Mutex
	cond   *sync.Cond
	queue  []func()
	closed bool
	done   chan struct{}
}

// NewLoop starts a dispatch loop
func NewLoop() *Loop {
	l := &Loop{done: make(chan struct{})}
	l.cond = sync.NewCond(&l.mu)
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		for len(l.queue) == 0 && !l.closed {
			l.cond.Wait()
		}
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()
	}
}

// Dispatch implements Dispatcher. Functions dispatched after Close are
// dropped and Dispatch returns false.
func (l *Loop) Dispatch(fn func()) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		log.Printf("dispatch loop closed, dropping function")
		return false
	}
	l.queue = append(l.queue, fn)
	l.cond.Signal()
	return true
}

// Flush blocks until every function dispatched before the call has run.
// It must not be called from the loop goroutine.
func (l *Loop) Flush() {
	flushed := make(chan struct{})

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.queue = append(l.queue, func() { close(flushed) })
	l.cond.Signal()
	l.mu.Unlock()

	<-flushed
}

func (l *Loop) pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Close stops accepting work, runs what is already queued and waits for the
// loop goroutine to exit. It must not be called from the loop goroutine.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.cond.Broadcast()
	l.mu.Unlock()

	<-l.done
}
