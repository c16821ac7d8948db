package viewmodel

import (
	"context"
	"time"

	"github.com/ytget/profile-sample/internal/emailcheck"
)

type options struct {
	parent  context.Context
	checker emailcheck.Checker
}

// Option configures a ProfileState
type Option func(*options)

// WithChecker replaces the email availability check
func WithChecker(checker emailcheck.Checker) Option {
	return func(o *options) {
		o.checker = checker
	}
}

// WithCheckDelay uses the simulated check with the given delay
func WithCheckDelay(delay time.Duration) Option {
	return func(o *options) {
		o.checker = emailcheck.NewService(delay)
	}
}

// WithContext ties the state lifetime to ctx in addition to Close
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.parent = ctx
	}
}
