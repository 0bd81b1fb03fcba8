package vdom

import "time"

// Trigger names what started a reconciliation pass.
type Trigger string

const (
	TriggerRender   Trigger = "render"
	TriggerSetState Trigger = "setstate"
)

// Stats counts the decisions and host operations of one pass.
type Stats struct {
	// Instance-level decisions.
	Inserted int // New subtree appended
	Removed  int // Subtree removed
	Replaced int // Subtree rebuilt because its type changed
	Updated  int // Instance updated in place
	Moved    int // Keyed child moved

	// Host operations.
	Created          int // Host nodes created
	PropsCleared     int
	PropsSet         int
	ListenersRemoved int
	ListenersAdded   int
}

// Structural returns the number of insert, remove, replace and move
// decisions.
func (s Stats) Structural() int {
	return s.Inserted + s.Removed + s.Replaced + s.Moved
}

// Pass describes a finished reconciliation pass.
type Pass struct {
	Trigger  Trigger
	Stats    Stats
	Duration time.Duration
	Err      error
}

// Observer is notified after every pass. Observers run synchronously on
// the rendering goroutine.
type Observer interface {
	ObservePass(p Pass)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(p Pass)

// ObservePass implements Observer.
func (f ObserverFunc) ObservePass(p Pass) { f(p) }
