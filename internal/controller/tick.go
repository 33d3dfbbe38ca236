package controller

import (
	"context"
	"time"
)

// leftTickInterval is the left-stick ramp granularity, fixed at roughly
// 1ms per the spec; it is not part of the tuning file since the ramp's
// *rate* is governed by left_stick_sensitivity, not this interval.
const leftTickInterval = time.Millisecond

// RunLeftDriver runs the left-stick tick driver until ctx is cancelled.
// It holds the controller lock only for the duration of one tick's
// publish, releasing it around the sleep between ticks.
func (c *Core) RunLeftDriver(ctx context.Context) {
	ticker := time.NewTicker(leftTickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.LeftTick()
		}
	}
}

// RunRightDriver runs the right-stick idle-sweep driver until ctx is
// cancelled, waking once per tickrate.
func (c *Core) RunRightDriver(ctx context.Context) {
	ticker := time.NewTicker(c.settings.Tickrate())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, ok := c.LeftDirection()
			c.RightHandleIdle(ok)
		}
	}
}
