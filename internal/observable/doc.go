// Package observable provides a minimal generic observable value: a container
// that broadcasts every write to its subscribers, and Derive, a read-only
// projection that is recomputed on each upstream change.
//
// Listeners run synchronously on the goroutine that calls Set. Owners that
// need a well-defined execution context for notifications (a UI thread, a
// dispatch loop) perform all writes from that context.
package observable
