package dom

import "time"

// Timer is a repeating timer created by [Document.SetInterval]. It stays
// active until Stop is called.
type Timer struct {
	interval time.Duration
	fn       func()
	next     time.Time
	stopped  bool
}

// Stop cancels the timer. Stopping an already stopped timer is a no-op.
func (t *Timer) Stop() { t.stopped = true }

// Active reports whether the timer has not been stopped.
func (t *Timer) Active() bool { return !t.stopped }

// SetInterval registers fn to run every interval, starting one interval
// from now. Timers do not fire on their own: the host drives them by
// calling [Document.StepTimers] (typically once per frame, or after
// advancing a fake clock in tests). An interval of zero or less is
// rejected and returns nil.
func (d *Document) SetInterval(interval time.Duration, fn func()) *Timer {
	if interval <= 0 || fn == nil {
		return nil
	}
	t := &Timer{
		interval: interval,
		fn:       fn,
		next:     Now().Add(interval),
	}
	d.timers = append(d.timers, t)
	return t
}

// StepTimers fires every active timer that has come due according to
// the package clock, catching up on missed intervals one callback per
// interval. Stopped timers are dropped from the document.
func (d *Document) StepTimers() {
	now := Now()
	// Snapshot so callbacks can create or stop timers safely.
	timers := append([]*Timer(nil), d.timers...)
	for _, t := range timers {
		for !t.stopped && !t.next.After(now) {
			t.next = t.next.Add(t.interval)
			t.fn()
		}
	}
	active := d.timers[:0]
	for _, t := range d.timers {
		if !t.stopped {
			active = append(active, t)
		}
	}
	d.timers = active
}

// ActiveTimers returns the number of timers that have not been stopped.
func (d *Document) ActiveTimers() int {
	n := 0
	for _, t := range d.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
