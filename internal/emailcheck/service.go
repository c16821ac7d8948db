package emailcheck

import (
	"context"
	"log"
	"sync/atomic"
	"time"
)

// DefaultDelay is how long a simulated check takes
const DefaultDelay = 2000 * time.Millisecond

// Service handles simulated email checks
type Service struct {
	delay    time.Duration
	inFlight atomic.Int32
}

// NewService creates a new check service. A negative delay is treated as zero.
func NewService(delay time.Duration) *Service {
	if delay < 0 {
		delay = 0
	}
	return &Service{delay: delay}
}

// Delay returns the configured check duration
func (s *Service) Delay() time.Duration {
	return s.delay
}

// InFlight returns the number of checks currently waiting
func (s *Service) InFlight() int {
	return int(s.inFlight.Load())
}

// Check implements Checker
func (s *Service) Check(ctx context.Context, email string) error {
	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		log.Printf("email check for %q cancelled: %v", email, ctx.Err())
		return ctx.Err()
	}
}
