package viewmodel

// Package viewmodel holds ProfileState, the observable state behind the
// profile screen. Every field is an observable value; popularity is derived
// from likes and the email state follows each email write through a
// simulated availability check. All writes happen on the owner's dispatcher.
