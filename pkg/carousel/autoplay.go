package carousel

// play starts the autoplay timer. A carousel never holds more than one
// active timer: starting while already running is a no-op.
func (c *Carousel) play() {
	if c.timer != nil {
		return
	}
	c.timer = c.doc.SetInterval(c.cfg.Interval, c.next)
}

// pause cancels the autoplay timer if one is running.
func (c *Carousel) pause() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Playing reports whether the autoplay timer is currently running.
func (c *Carousel) Playing() bool {
	return c.timer != nil && c.timer.Active()
}
