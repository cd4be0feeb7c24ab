// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sort"
	"sync"
	"time"
)

// ManualScheduler is a [Scheduler] driven by an explicit virtual clock.
// Tasks run synchronously inside [ManualScheduler.Advance], on the caller's
// goroutine, in deadline order.
type ManualScheduler struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	s        *ManualScheduler
	deadline time.Duration
	seq      int
	f        func()
	done     bool
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// AfterFunc implements [Scheduler].
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &manualTask{s: s, deadline: s.now + d, seq: s.seq, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by d and runs every task that became due.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		s.now = next.deadline
		next.done = true
		s.removeLocked(next)
		s.mu.Unlock()

		// run without the lock: the task may arm new tasks
		next.f()
	}
}

// Now returns the elapsed virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of armed tasks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *ManualScheduler) nextDueLocked(target time.Duration) *manualTask {
	due := make([]*manualTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.deadline <= target {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline == due[j].deadline {
			return due[i].seq < due[j].seq
		}
		return due[i].deadline < due[j].deadline
	})
	return due[0]
}

func (s *ManualScheduler) removeLocked(task *manualTask) {
	for i, t := range s.tasks {
		if t == task {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

func (t *manualTask) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	t.s.removeLocked(t)
	return true
}
