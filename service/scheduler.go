package service

import (
	"time"

	"github.com/ratel-online/core/util/async"
)

// Cancel stops a scheduled task. Calling it after the task ran is a no-op.
type Cancel func()

// Scheduler runs automated turns after a delay.
type Scheduler interface {
	Schedule(delay time.Duration, task func()) Cancel
}

type timerScheduler struct{}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) Schedule(delay time.Duration, task func()) Cancel {
	timer := time.AfterFunc(delay, func() {
		defer func() {
			if err := recover(); err != nil {
				async.PrintStackTrace(err)
			}
		}()
		task()
	})
	return func() {
		timer.Stop()
	}
}
