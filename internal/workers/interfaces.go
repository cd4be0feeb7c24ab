// Package workers provides abstractions for scheduling short-lived
// background work in the application.
// It defines the Scheduler interface used to arm one-shot delayed tasks,
// a timer-backed implementation and a manually driven one for tests.
package workers

import "time"

// Task is a handle to a scheduled one-shot function.
type Task interface {
	// Stop cancels the task. It returns false if the task already ran or was
	// already stopped.
	Stop() bool
}

// Scheduler arms one-shot delayed tasks.
//
// Implementations run f at most once, on a goroutine of their choosing,
// after d has elapsed unless the returned Task is stopped first.
//
// Example:
//
//	task := scheduler.AfterFunc(5*time.Second, func() {
//	    // clear transient state
//	})
//	defer task.Stop()
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}
