// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTimerScheduler_Fires(t *testing.T) {
	s := NewTimerScheduler()
	fired := make(chan struct{})

	s.AfterFunc(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not fire")
	}
}

func TestTimerScheduler_Stop(t *testing.T) {
	s := NewTimerScheduler()
	var fired atomic.Bool

	task := s.AfterFunc(50*time.Millisecond, func() { fired.Store(true) })
	assert.True(t, task.Stop())
	assert.False(t, task.Stop())

	time.Sleep(100 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestManualScheduler_RunsWhenDue(t *testing.T) {
	s := NewManualScheduler()
	runs := 0

	s.AfterFunc(5*time.Second, func() { runs++ })
	require.Equal(t, 1, s.Pending())

	s.Advance(4 * time.Second)
	assert.Equal(t, 0, runs)

	s.Advance(time.Second)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 5*time.Second, s.Now())

	s.Advance(time.Minute)
	assert.Equal(t, 1, runs, "one-shot task must not run twice")
}

func TestManualScheduler_Order(t *testing.T) {
	s := NewManualScheduler()
	var order []int

	s.AfterFunc(3*time.Second, func() { order = append(order, 3) })
	s.AfterFunc(time.Second, func() { order = append(order, 1) })
	s.AfterFunc(time.Second, func() { order = append(order, 2) })

	s.Advance(10 * time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestManualScheduler_Stop(t *testing.T) {
	s := NewManualScheduler()
	runs := 0

	task := s.AfterFunc(time.Second, func() { runs++ })
	assert.True(t, task.Stop())
	assert.False(t, task.Stop())
	assert.Equal(t, 0, s.Pending())

	s.Advance(time.Hour)
	assert.Equal(t, 0, runs)
}

func TestManualScheduler_StopAfterRun(t *testing.T) {
	s := NewManualScheduler()

	task := s.AfterFunc(time.Second, func() {})
	s.Advance(time.Second)

	assert.False(t, task.Stop())
}

func TestManualScheduler_TaskArmsTask(t *testing.T) {
	s := NewManualScheduler()
	var at []time.Duration

	s.AfterFunc(time.Second, func() {
		at = append(at, s.Now())
		s.AfterFunc(time.Second, func() { at = append(at, s.Now()) })
	})

	s.Advance(5 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, at)
}
