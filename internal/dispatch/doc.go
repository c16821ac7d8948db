package dispatch

// Package dispatch implements owner-scoped cooperative scheduling: a
// Dispatcher that runs work on the owner's main execution context in
// submission order, and a Scope that tracks every task launched by the owner
// so they can all be cancelled when the owner goes away.
