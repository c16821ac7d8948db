package observable

import "sync"

// ReadOnly is the consumer side of an observable value.
type ReadOnly[T any] interface {
	// Get returns the current value.
	Get() T
	// Subscribe registers fn, immediately calls it with the current value and
	// then with every later value. The returned func removes the subscription.
	Subscribe(fn func(T)) (unsubscribe func())
}

type listener[T any] struct {
	fn func(T)
}

// Value is a mutable observable container. Set always publishes, even when
// the new value equals the old one.
type Value[T any] struct {
	mu        sync.RWMutex
	value     T
	listeners []*listener[T]
}

// NewValue creates a value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and notifies every subscriber in subscription order
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	listeners := make([]*listener[T], len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, l := range listeners {
		l.fn(value)
	}
}

// Update applies fn to the current value and publishes the result
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.Get()))
}

// Subscribe implements ReadOnly
func (v *Value[T]) Subscribe(fn func(T)) func() {
	l := &listener[T]{fn: fn}

	v.mu.Lock()
	v.listeners = append(v.listeners, l)
	current := v.value
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { v.remove(l) })
	}
}

func (v *Value[T]) listenerCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.listeners)
}

func (v *Value[T]) remove(target *listener[T]) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i, l := range v.listeners {
		if l == target {
			v.listeners = append(v.listeners[:i:i], v.listeners[i+1:]...)
			return
		}
	}
}
