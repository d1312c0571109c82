package mention

import "time"

// Scheduler starts the one-shot cooldown timers the listener uses to
// debounce show-candidates callbacks. Implementations must deliver fn on
// the same goroutine that drives the listener; WallClock is only safe when
// the host serializes timer callbacks with its own events.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is the handle to a pending one-shot callback.
type Timer interface {
	// Stop cancels the pending callback and reports whether it was
	// prevented from running.
	Stop() bool
}

// WallClock schedules callbacks with time.AfterFunc. Callbacks run on their
// own goroutine.
type WallClock struct{}

func (WallClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// debouncer coalesces repeated filter changes into at most one notification
// per cooldown window. At most one timer is outstanding: arming replaces
// any pending one.
type debouncer struct {
	sched    Scheduler
	interval time.Duration
	expired  func()

	pending Timer
}

func (d *debouncer) idle() bool { return d.pending == nil }

func (d *debouncer) arm() {
	d.cancel()
	d.pending = d.sched.AfterFunc(d.interval, d.fire)
}

func (d *debouncer) cancel() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

func (d *debouncer) fire() {
	d.pending = nil
	d.expired()
}
