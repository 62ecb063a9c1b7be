package service

import (
	"sync"
	"time"
)

// ManualScheduler queues tasks until the test runs them.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	run       func()
	cancelled bool
}

func (s *ManualScheduler) Schedule(_ time.Duration, task func()) Cancel {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTask{run: task}
	s.tasks = append(s.tasks, t)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		t.cancelled = true
	}
}

// RunNext runs the oldest task that was not cancelled.
func (s *ManualScheduler) RunNext() bool {
	s.mu.Lock()
	var next *manualTask
	for len(s.tasks) > 0 && next == nil {
		if !s.tasks[0].cancelled {
			next = s.tasks[0]
		}
		s.tasks = s.tasks[1:]
	}
	s.mu.Unlock()
	if next == nil {
		return false
	}
	next.run()
	return true
}

func (s *ManualScheduler) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	live := 0
	for _, t := range s.tasks {
		if !t.cancelled {
			live++
		}
	}
	return live
}

// FireAll runs every queued task, cancelled or not, as timers that already fired would.
func (s *ManualScheduler) FireAll() int {
	s.mu.Lock()
	tasks := s.tasks
	s.tasks = nil
	s.mu.Unlock()
	for _, t := range tasks {
		t.run()
	}
	return len(tasks)
}
