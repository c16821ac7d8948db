package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/ytget/profile-sample/internal/dispatch"
	"github.com/ytget/profile-sample/internal/emailcheck"
	"github.com/ytget/profile-sample/internal/model"
	"github.com/ytget/profile-sample/internal/viewmodel"
)

// session is a headless owner: a dispatch loop plus the state it drives
type session struct {
	loop    *dispatch.Loop
	checker *emailcheck.Service
	state   *viewmodel.ProfileState
	out     io.Writer
	start   time.Time
}

func newSession(opts *rootOptions, out io.Writer) *session {
	loop := dispatch.NewLoop()
	checker := emailcheck.NewService(opts.delay)
	return &session{
		loop:    loop,
		checker: checker,
		state:   viewmodel.New(loop, viewmodel.WithChecker(checker)),
		out:     out,
		start:   time.Now(),
	}
}

// settle waits until queued writes and the tasks they started are finished
func (s *session) settle() error {
	s.loop.Flush()
	if err := s.state.Wait(); err != nil {
		return fmt.Errorf("waiting for profile tasks: %w", err)
	}
	s.loop.Flush()
	return nil
}

// close settles outstanding work, then tears the owner down
func (s *session) close() error {
	err := s.settle()
	s.state.Close()
	s.loop.Close()
	return err
}

// watch runs fn on the loop so subscriptions see writes in order
func (s *session) watch(fn func()) {
	if s.loop.Dispatch(fn) {
		s.loop.Flush()
	}
}

func (s *session) elapsed() string {
	return fmt.Sprintf("[%5dms]", time.Since(s.start).Milliseconds())
}

func popularityString(p model.Popularity) string {
	switch p {
	case model.PopularityStar:
		return color.New(color.FgYellow, color.Bold).Sprint(p)
	case model.PopularityPopular:
		return color.CyanString(p.String())
	default:
		return p.String()
	}
}

func emailStateString(s model.EmailState) string {
	switch s {
	case model.EmailStateOK:
		return color.GreenString(s.String())
	case model.EmailStateInvalid, model.EmailStateTaken:
		return color.RedString(s.String())
	case model.EmailStateChecking:
		return color.YellowString(s.String())
	default:
		return color.HiBlackString(s.String())
	}
}
