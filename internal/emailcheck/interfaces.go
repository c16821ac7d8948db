package emailcheck

import "context"

// Checker defines the interface for the email availability check.
type Checker interface {
	// Check blocks until the email has been checked. A nil error means the
	// address is available. It returns ctx.Err() if ctx ends first.
	Check(ctx context.Context, email string) error
}
