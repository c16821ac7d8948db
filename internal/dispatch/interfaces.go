package dispatch

// Dispatcher runs functions on an owner's main execution context. Functions
// run one at a time in the order they were dispatched. Dispatch reports false
// when fn was refused and will never run.
type Dispatcher interface {
	Dispatch(fn func()) bool
}
