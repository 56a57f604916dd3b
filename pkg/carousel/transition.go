package carousel

import "strconv"

// transition is the single state-change routine. Every path that moves
// the carousel — controls, pagination, keyboard, autoplay — funnels
// through here. After it returns: exactly one pagination button is
// active and it matches the current index, slide i sits at horizontal
// offset 100% × (i − current), and the animation timelines of the new
// current slide have been restarted from the top. Re-selecting the
// current index is a valid transition and still restarts the timelines.
func (c *Carousel) transition(to int) {
	if c.cfg.Pagination {
		held := c.pages[c.current]
		held.RemoveClass("active")
		held.SetAttribute("aria-selected", "false")

		page := c.pages[to]
		page.AddClass("active")
		page.SetAttribute("aria-selected", "true")
	}

	c.current = to

	for i, slide := range c.slides {
		slide.SetStyle("left", offset(i, to))
	}

	for _, a := range c.slides[to].Animations() {
		a.Pause()
		a.SeekTo(0)
		a.Play()
	}
}

// next advances one slide, wrapping past the last back to the first.
func (c *Carousel) next() {
	c.transition(wrapIndex(c.current+1, len(c.slides)))
}

// previous moves back one slide, wrapping past the first to the last.
func (c *Carousel) previous() {
	c.transition(wrapIndex(c.current-1, len(c.slides)))
}

// jumpTo moves directly to the slide at index, even when index equals
// the current slide.
func (c *Carousel) jumpTo(index int) {
	c.transition(index)
}

// CurrentIndex returns the index of the currently visible slide.
func (c *Carousel) CurrentIndex() int {
	return c.current
}

// offset formats the inline horizontal offset for slide index when
// current is the visible slide.
func offset(index, current int) string {
	return strconv.Itoa((index-current)*100) + "%"
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}
