package game

import "time"

// Clock paces the main loop at a fixed number of ticks per second by
// sleeping out whatever is left of the current frame.
type Clock struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func NewClock(ticksPerSecond int) *Clock {
	return &Clock{
		interval: time.Second / time.Duration(ticksPerSecond),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Interval returns the target frame duration.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Tick blocks until one interval has passed since the previous Tick and
// returns the time actually elapsed. The first call returns immediately.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}

	if wait := c.interval - now.Sub(c.last); wait > 0 {
		c.sleep(wait)
		now = c.now()
	}
	elapsed := now.Sub(c.last)
	c.last = now
	return elapsed
}
