package dispatch

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoop_PreservesOrder(t *testing.T) {
	loop := NewLoop()
	defer loop.Close()

	var got []int
	for i := 0; i < 100; i++ {
		i := i
		loop.Dispatch(func() { got = append(got, i) })
	}
	loop.Flush()

	assert.Len(t, got, 100)
	for i, v := range got {
		if v != i {
			t.Fatalf("Expected position %d to hold %d, got %d", i, i, v)
		}
	}
}

func TestLoop_SerializesConcurrentDispatch(t *testing.T) {
	loop := NewLoop()
	defer loop.Close()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				loop.Dispatch(func() { counter++ })
			}
		}()
	}
	wg.Wait()
	loop.Flush()

	assert.Equal(t, 500, counter)
}

func TestLoop_DispatchFromInsideLoop(t *testing.T) {
	loop := NewLoop()
	defer loop.Close()

	var order []string
	loop.Dispatch(func() {
		order = append(order, "outer")
		loop.Dispatch(func() { order = append(order, "inner") })
	})
	loop.Flush()
	loop.Flush()

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestLoop_CloseDrainsAndDrops(t *testing.T) {
	loop := NewLoop()

	ran := 0
	for i := 0; i < 5; i++ {
		loop.Dispatch(func() { ran++ })
	}
	loop.Close()
	assert.Equal(t, 5, ran)

	assert.False(t, loop.Dispatch(func() { ran++ }))
	loop.Flush()
	loop.Close()
	assert.Equal(t, 5, ran)
	assert.Equal(t, 0, loop.pending())
}
