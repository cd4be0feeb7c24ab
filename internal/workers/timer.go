package workers

import "time"

type timerScheduler struct{}

// NewTimerScheduler returns a [Scheduler] backed by [time.AfterFunc].
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}
