package ui

import "fyne.io/fyne/v2"

// FyneDispatcher runs view-model work on the Fyne main goroutine, so
// observable notifications can update widgets directly.
type FyneDispatcher struct{}

// Dispatch implements dispatch.Dispatcher. fyne.Do never refuses work.
func (FyneDispatcher) Dispatch(fn func()) bool {
	fyne.Do(fn)
	return true
}
