package emailcheck

// Package emailcheck simulates the availability check run for a profile
// email. There is no network lookup: the check waits for a configured delay
// and then reports the address as available.
