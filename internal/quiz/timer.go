package quiz

import (
	"sync"
	"time"
)

// countdown is the cancellable handle of a speed-round timer. It ticks once
// per second until it reaches zero and then fires expire. Stop is idempotent:
// stopping an already stopped countdown is a no-op, so both the answer path
// and the question-advance path may call it.
type countdown struct {
	stop     chan struct{}
	stopOnce sync.Once
}

func newCountdown(seconds int, tick func(left int), expire func()) *countdown {
	c := &countdown{stop: make(chan struct{})}

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		left := seconds
		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				left--
				tick(left)
				if left <= 0 {
					expire()
					return
				}
			}
		}
	}()

	return c
}

func (c *countdown) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
}
