package observable

import "sync"

// Derived is a read-only value computed from an upstream observable.
type Derived[T any] struct {
	value  *Value[T]
	detach func()
	once   sync.Once
}

// Derive returns a projection of src through fn. fn must be pure: it is
// re-evaluated on every upstream change and the result is published right
// after the upstream subscribers that were registered before it.
func Derive[S, T any](src ReadOnly[S], fn func(S) T) *Derived[T] {
	d := &Derived[T]{value: NewValue(fn(src.Get()))}
	d.detach = src.Subscribe(func(s S) {
		d.value.Set(fn(s))
	})
	return d
}

// Get implements ReadOnly
func (d *Derived[T]) Get() T {
	return d.value.Get()
}

// Subscribe implements ReadOnly
func (d *Derived[T]) Subscribe(fn func(T)) func() {
	return d.value.Subscribe(fn)
}

// Close stops following the upstream value
func (d *Derived[T]) Close() {
	d.once.Do(d.detach)
}
