package viewmodel

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/profile-sample/internal/dispatch"
	"github.com/ytget/profile-sample/internal/emailcheck"
	"github.com/ytget/profile-sample/internal/model"
)

const testCheckDelay = 100 * time.Millisecond

type transition struct {
	state model.EmailState
	at    time.Time
}

// recorder collects email state notifications delivered on the loop
type recorder struct {
	mu          sync.Mutex
	transitions []transition
}

func (r *recorder) record(state model.EmailState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, transition{state: state, at: time.Now()})
}

func (r *recorder) states() []model.EmailState {
	r.mu.Lock()
	defer r.mu.Unlock()
	states := make([]model.EmailState, len(r.transitions))
	for i, tr := range r.transitions {
		states[i] = tr.state
	}
	return states
}

func (r *recorder) firstAt(state model.EmailState) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tr := range r.transitions {
		if tr.state == state {
			return tr.at, true
		}
	}
	return time.Time{}, false
}

func newTestState(t *testing.T, opts ...Option) (*ProfileState, *dispatch.Loop) {
	t.Helper()
	loop := dispatch.NewLoop()
	opts = append([]Option{WithCheckDelay(testCheckDelay)}, opts...)
	state := New(loop, opts...)
	t.Cleanup(func() {
		state.Close()
		_ = state.Wait()
		loop.Close()
	})
	require.NoError(t, state.Wait())
	return state, loop
}

// settle waits until queued writes have launched their tasks and every task
// has finished.
func settle(t *testing.T, state *ProfileState, loop *dispatch.Loop) {
	t.Helper()
	loop.Flush()
	require.NoError(t, state.Wait())
}

func watchEmailState(t *testing.T, state *ProfileState, loop *dispatch.Loop) *recorder {
	t.Helper()
	r := &recorder{}
	var unsubscribe func()
	loop.Dispatch(func() { unsubscribe = state.EmailState().Subscribe(r.record) })
	loop.Flush()
	t.Cleanup(func() {
		loop.Dispatch(unsubscribe)
		loop.Flush()
	})
	return r
}

func TestNew_InitialState(t *testing.T) {
	state, _ := newTestState(t)

	snapshot := state.Snapshot()
	assert.Equal(t, "Ada", snapshot.Name)
	assert.Equal(t, "Lovelace", snapshot.LastName)
	assert.Equal(t, 0, snapshot.Likes)
	assert.Equal(t, "", snapshot.Email)
	assert.Equal(t, model.PopularityNormal, snapshot.Popularity)
	assert.Equal(t, model.EmailStateVoid, snapshot.EmailState)
	assert.Equal(t, model.NewProfile(), snapshot)
	assert.Equal(t, 0, state.ActiveTasks())
}

func TestSetNameAndLastName(t *testing.T) {
	state, loop := newTestState(t)

	var names []string
	loop.Dispatch(func() {
		state.Name().Subscribe(func(name string) { names = append(names, name) })
	})

	state.SetName("Grace")
	state.SetLastName("Hopper")
	state.SetName("")
	loop.Flush()

	assert.Equal(t, []string{"Ada", "Grace", ""}, names)
	assert.Equal(t, "", state.Name().Get())
	assert.Equal(t, "Hopper", state.LastName().Get())
}

func TestOnLike_Sequential(t *testing.T) {
	state, _ := newTestState(t)

	for i := 1; i <= 12; i++ {
		<-state.OnLike().Done()
		assert.Equal(t, i, state.Likes().Get())
	}
}

func TestOnLike_ConcurrentCallersLoseNothing(t *testing.T) {
	state, loop := newTestState(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				state.OnLike()
			}
		}()
	}
	wg.Wait()
	settle(t, state, loop)

	assert.Equal(t, 200, state.Likes().Get())
	assert.Equal(t, model.PopularityStar, state.Popularity().Get())
}

func TestPopularity_FollowsLikes(t *testing.T) {
	state, loop := newTestState(t)

	var tiers []model.Popularity
	loop.Dispatch(func() {
		state.Popularity().Subscribe(func(p model.Popularity) {
			// published right after the like count it was derived from
			assert.Equal(t, model.ClassifyPopularity(state.Likes().Get()), p)
			tiers = append(tiers, p)
		})
	})

	expected := map[int]model.Popularity{
		4:  model.PopularityNormal,
		5:  model.PopularityPopular,
		9:  model.PopularityPopular,
		10: model.PopularityStar,
	}
	for likes := 1; likes <= 10; likes++ {
		<-state.OnLike().Done()
		if want, ok := expected[likes]; ok {
			assert.Equal(t, want, state.Popularity().Get(), "likes=%d", likes)
		}
	}
	loop.Flush()

	assert.Len(t, tiers, 11)
}

func TestSetEmail_Empty(t *testing.T) {
	state, loop := newTestState(t)
	r := watchEmailState(t, state, loop)

	state.SetEmail("")
	settle(t, state, loop)

	assert.Equal(t, model.EmailStateVoid, state.EmailState().Get())
	assert.NotContains(t, r.states(), model.EmailStateChecking)
}

func TestSetEmail_Invalid(t *testing.T) {
	state, loop := newTestState(t)
	r := watchEmailState(t, state, loop)

	state.SetEmail("ab")
	settle(t, state, loop)

	assert.Equal(t, model.EmailStateInvalid, state.EmailState().Get())
	assert.NotContains(t, r.states(), model.EmailStateChecking)
}

func TestSetEmail_CheckingThenOK(t *testing.T) {
	state, loop := newTestState(t)
	r := watchEmailState(t, state, loop)

	state.SetEmail("a@b")
	loop.Flush()
	loop.Flush()
	assert.Equal(t, model.EmailStateChecking, state.EmailState().Get())

	settle(t, state, loop)
	assert.Equal(t, model.EmailStateOK, state.EmailState().Get())
	assert.Equal(t, []model.EmailState{
		model.EmailStateVoid,
		model.EmailStateChecking,
		model.EmailStateOK,
	}, r.states())

	checking, ok := r.firstAt(model.EmailStateChecking)
	require.True(t, ok)
	done, ok := r.firstAt(model.EmailStateOK)
	require.True(t, ok)
	assert.GreaterOrEqual(t, done.Sub(checking), testCheckDelay)
}

func TestSetEmail_SameValueRevalidates(t *testing.T) {
	state, loop := newTestState(t)
	r := watchEmailState(t, state, loop)

	state.SetEmail("ab")
	state.SetEmail("ab")
	settle(t, state, loop)

	assert.Equal(t, []model.EmailState{
		model.EmailStateVoid,
		model.EmailStateInvalid,
		model.EmailStateInvalid,
	}, r.states())
}

func TestSetEmail_StaleCheckWins(t *testing.T) {
	state, loop := newTestState(t)
	r := watchEmailState(t, state, loop)

	// The check started for "a@b" is not superseded by the later empty
	// email: it settles last and leaves OK next to an empty address.
	state.SetEmail("a@b")
	state.SetEmail("")
	settle(t, state, loop)

	assert.Equal(t, "", state.Email().Get())
	assert.Equal(t, model.EmailStateOK, state.EmailState().Get())
	assert.Equal(t, []model.EmailState{
		model.EmailStateVoid,
		model.EmailStateChecking,
		model.EmailStateVoid,
		model.EmailStateOK,
	}, r.states())
}

func TestSetEmail_RapidWritesRunIndependently(t *testing.T) {
	state, loop := newTestState(t)
	r := watchEmailState(t, state, loop)

	state.SetEmail("x")
	state.SetEmail("x@y")
	settle(t, state, loop)

	assert.Equal(t, model.EmailStateOK, state.EmailState().Get())
	assert.Equal(t, []model.EmailState{
		model.EmailStateVoid,
		model.EmailStateInvalid,
		model.EmailStateChecking,
		model.EmailStateOK,
	}, r.states())

	state.SetEmail("a@b")
	state.SetEmail("c@d")
	settle(t, state, loop)

	states := r.states()[4:]
	okCount := 0
	for _, s := range states {
		if s == model.EmailStateOK {
			okCount++
		}
	}
	assert.Equal(t, 2, okCount, "both checks settle: %v", states)
	assert.Equal(t, model.EmailStateOK, state.EmailState().Get())
}

func TestClose_CancelsPendingCheck(t *testing.T) {
	loop := dispatch.NewLoop()
	defer loop.Close()
	state := New(loop, WithCheckDelay(5*time.Second))

	state.SetEmail("a@b")
	loop.Flush()
	loop.Flush()
	require.Equal(t, model.EmailStateChecking, state.EmailState().Get())

	state.Close()

	waited := make(chan error, 1)
	go func() { waited <- state.Wait() }()
	select {
	case err := <-waited:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Close to cancel the pending check")
	}
	loop.Flush()

	assert.Equal(t, model.EmailStateChecking, state.EmailState().Get())
	assert.Equal(t, 0, state.ActiveTasks())

	// Work launched after the owner is gone never runs.
	<-state.OnLike().Done()
	assert.Equal(t, 0, state.Likes().Get())
}

func TestNew_DefaultCheckDelay(t *testing.T) {
	loop := dispatch.NewLoop()
	defer loop.Close()
	state := New(loop)
	defer state.Close()

	service, ok := state.checker.(*emailcheck.Service)
	require.True(t, ok, "Expected the simulated check service by default, got %T", state.checker)
	assert.Equal(t, 2*time.Second, service.Delay())
	assert.Equal(t, emailcheck.DefaultDelay, service.Delay())
}

func TestWithContext_DeadlineIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	state, loop := newTestState(t, WithContext(ctx), WithCheckDelay(5*time.Second))

	state.SetEmail("a@b")
	settle(t, state, loop)

	assert.Equal(t, model.EmailStateChecking, state.EmailState().Get())
	assert.Equal(t, 0, state.ActiveTasks())
	require.NoError(t, state.Wait())
}

func TestWithContext_CancelsLikeClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	state, _ := newTestState(t, WithContext(ctx))

	cancel()
	<-state.OnLike().Done()
	assert.Equal(t, 0, state.Likes().Get())
}

type stubChecker struct {
	calls chan string
}

func (s *stubChecker) Check(_ context.Context, email string) error {
	s.calls <- email
	return nil
}

func TestWithChecker(t *testing.T) {
	checker := &stubChecker{calls: make(chan string, 4)}
	state, loop := newTestState(t, WithChecker(checker))

	state.SetEmail("ada@example.com")
	settle(t, state, loop)

	assert.Equal(t, "ada@example.com", <-checker.calls)
	assert.Equal(t, model.EmailStateOK, state.EmailState().Get())
}
