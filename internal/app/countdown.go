package app

import (
	"sync"
	"time"
)

// countdown is the cancellable one-second task owned by a quiz session. It
// consumes ticks, decrements the remaining seconds, and delivers each new
// value on C. After delivering zero it shuts down on its own; Stop is safe to
// call any number of times and on every exit path from the quiz view.
type countdown struct {
	C    chan int
	stop chan struct{}
	once sync.Once
}

func newCountdown(seconds int, ticks <-chan time.Time) *countdown {
	cd := &countdown{
		C:    make(chan int),
		stop: make(chan struct{}),
	}

	go func() {
		defer close(cd.C)
		remaining := seconds
		for remaining > 0 {
			select {
			case <-cd.stop:
				return
			case <-ticks:
				remaining--
				select {
				case cd.C <- remaining:
				case <-cd.stop:
					return
				}
			}
		}
	}()

	return cd
}

func (c *countdown) Stop() {
	c.once.Do(func() { close(c.stop) })
}
