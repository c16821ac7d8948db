package viewmodel

import (
	"context"
	"log"

	"github.com/ytget/profile-sample/internal/dispatch"
	"github.com/ytget/profile-sample/internal/emailcheck"
	"github.com/ytget/profile-sample/internal/model"
	"github.com/ytget/profile-sample/internal/observable"
)

// Task names used for logging and inspection
const (
	TaskLike          = "like"
	TaskValidateEmail = "validate-email"
)

// ProfileState is the observable profile shown by one screen. It is created
// with the screen and closed when the screen goes away.
type ProfileState struct {
	dispatcher dispatch.Dispatcher
	scope      *dispatch.Scope
	checker    emailcheck.Checker

	name       *observable.Value[string]
	lastName   *observable.Value[string]
	likes      *observable.Value[int]
	popularity *observable.Derived[model.Popularity]
	email      *observable.Value[string]
	emailState *observable.Value[model.EmailState]

	unwatchEmail func()
}

// New creates a profile state whose writes and notifications happen on d
func New(d dispatch.Dispatcher, opts ...Option) *ProfileState {
	o := options{parent: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.checker == nil {
		o.checker = emailcheck.NewService(emailcheck.DefaultDelay)
	}

	initial := model.NewProfile()
	p := &ProfileState{
		dispatcher: d,
		scope:      dispatch.NewScope(o.parent, d),
		checker:    o.checker,
		name:       observable.NewValue(initial.Name),
		lastName:   observable.NewValue(initial.LastName),
		likes:      observable.NewValue(initial.Likes),
		email:      observable.NewValue(initial.Email),
		emailState: observable.NewValue(initial.EmailState),
	}
	p.popularity = observable.Derive[int, model.Popularity](p.likes, model.ClassifyPopularity)
	p.unwatchEmail = p.email.Subscribe(p.validateEmail)

	return p
}

// Name returns the observable first name
func (p *ProfileState) Name() observable.ReadOnly[string] { return p.name }

// LastName returns the observable last name
func (p *ProfileState) LastName() observable.ReadOnly[string] { return p.lastName }

// Likes returns the observable like count
func (p *ProfileState) Likes() observable.ReadOnly[int] { return p.likes }

// Popularity returns the tier derived from likes
func (p *ProfileState) Popularity() observable.ReadOnly[model.Popularity] { return p.popularity }

// Email returns the observable email
func (p *ProfileState) Email() observable.ReadOnly[string] { return p.email }

// EmailState returns the observable email validation state
func (p *ProfileState) EmailState() observable.ReadOnly[model.EmailState] { return p.emailState }

// SetName queues a write of the first name
func (p *ProfileState) SetName(name string) {
	p.dispatcher.Dispatch(func() { p.name.Set(name) })
}

// SetLastName queues a write of the last name
func (p *ProfileState) SetLastName(lastName string) {
	p.dispatcher.Dispatch(func() { p.lastName.Set(lastName) })
}

// OnLike queues an increment of likes by one. Increments run on the
// dispatcher one at a time, so none is lost.
func (p *ProfileState) OnLike() *dispatch.Task {
	return p.scope.Launch(TaskLike, func(*dispatch.Task) {
		p.likes.Update(func(n int) int { return n + 1 })
	})
}

// SetEmail queues a write of the email. Every write, including one with the
// current value, starts a new validation. Validations already in flight are
// neither cancelled nor sequenced: whichever settles last decides the email
// state, even when it validated an older value.
func (p *ProfileState) SetEmail(email string) {
	p.dispatcher.Dispatch(func() { p.email.Set(email) })
}

// validateEmail runs on the dispatcher for each email write
func (p *ProfileState) validateEmail(email string) {
	p.scope.Launch(TaskValidateEmail, func(t *dispatch.Task) {
		state, needsCheck := model.ClassifyEmail(email)
		p.emailState.Set(state)
		if !needsCheck {
			return
		}

		t.Await(func(ctx context.Context) error {
			return p.checker.Check(ctx, email)
		}, func() {
			p.emailState.Set(model.EmailStateOK)
		})
	})
}

// Snapshot copies the current field values. Call it from the dispatcher for
// a consistent view.
func (p *ProfileState) Snapshot() model.Profile {
	return model.Profile{
		Name:       p.name.Get(),
		LastName:   p.lastName.Get(),
		Likes:      p.likes.Get(),
		Email:      p.email.Get(),
		Popularity: p.popularity.Get(),
		EmailState: p.emailState.Get(),
	}
}

// ActiveTasks returns the number of likes and validations not yet finished
func (p *ProfileState) ActiveTasks() int {
	return p.scope.Active()
}

// Close cancels all outstanding work. It does not block, so the owning
// screen can call it from its own thread.
func (p *ProfileState) Close() {
	p.scope.Cancel()
	p.unwatchEmail()
	p.popularity.Close()
	log.Printf("profile state closed")
}

// Wait blocks until all outstanding work has finished. Headless owners only:
// it must not be called from the dispatcher.
func (p *ProfileState) Wait() error {
	return p.scope.Wait()
}
