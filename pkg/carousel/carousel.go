package carousel

import (
	"fmt"
	"strconv"

	"github.com/go-drift/carousel/pkg/dom"
	"github.com/go-drift/carousel/pkg/errors"
)

// Key values handled by keyboard navigation.
const (
	keyArrowLeft  = "ArrowLeft"
	keyArrowRight = "ArrowRight"
)

// Carousel is one carousel instance. It owns the elements it creates
// (track wrapper, pagination strip, control buttons) and holds
// non-owning references to the pre-existing container and slides.
type Carousel struct {
	doc *dom.Document
	cfg Config

	container  *dom.Element
	slides     []*dom.Element
	wrapper    *dom.Element
	pagination *dom.Element
	pages      []*dom.Element
	prevButton *dom.Element
	nextButton *dom.Element

	current   int
	timer     *dom.Timer
	disposers []func()
}

// New resolves the configured selectors against doc and returns a
// carousel ready for Create. When the container selector matches
// nothing, or the slide selector matches nothing within the container,
// New reports a diagnostic through the global error handler and
// returns nil.
func New(doc *dom.Document, cfg Config) (*Carousel, error) {
	const op = "carousel.New"

	container, err := doc.QuerySelector(cfg.Container)
	if err != nil {
		return nil, report(op, errors.KindConfig, err)
	}
	if container == nil {
		return nil, report(op, errors.KindLookup,
			fmt.Errorf("no element matches container selector %q", cfg.Container))
	}

	slides, err := container.QuerySelectorAll(cfg.Slides)
	if err != nil {
		return nil, report(op, errors.KindConfig, err)
	}
	if len(slides) == 0 {
		return nil, report(op, errors.KindLookup,
			fmt.Errorf("no slides match %q within container %q", cfg.Slides, cfg.Container))
	}

	return &Carousel{
		doc:       doc,
		cfg:       cfg,
		container: container,
		slides:    slides,
	}, nil
}

// report routes a construction failure through the global handler and
// returns it as the error value for Go callers.
func report(op string, kind errors.ErrorKind, err error) error {
	ce := &errors.CarouselError{Op: op, Kind: kind, Err: err}
	errors.Report(ce)
	return ce
}

// Create performs the one-time DOM mutation pass and brings the
// carousel to life: it marks the container keyboard-focusable, wraps
// the slides in a track element, builds the pagination strip and the
// previous/next controls when enabled, wires all event listeners,
// applies the initial slide positions and animation state, and starts
// autoplay when enabled.
//
// The supported contract is a single call per instance; a second call
// duplicates the built structure.
func (c *Carousel) Create() {
	c.container.SetAttribute("tabindex", "0")

	c.wrapper = c.doc.CreateElement("div")
	c.wrapper.AddClass("carousel-track")
	c.slides[0].Parent().InsertBefore(c.wrapper, c.slides[0])

	if c.cfg.Pagination {
		c.pagination = c.doc.CreateElement("nav")
		c.pagination.AddClass("carousel-pagination")
		c.pagination.SetAttribute("role", "tablist")
		c.pagination.SetAttribute("aria-label", "Slides")
		c.container.AppendChild(c.pagination)
	}

	for i, slide := range c.slides {
		c.wrapper.AppendChild(slide)
		slide.SetStyle("left", offset(i, 0))
		if c.cfg.Pagination {
			c.addPage(i)
		}
	}

	if c.cfg.Controls {
		c.prevButton = c.addControl("carousel-prev", "Previous slide", "‹", c.previous)
		c.nextButton = c.addControl("carousel-next", "Next slide", "›", c.next)
	}

	c.listen(c.container, dom.EventKeyDown, c.handleKey)

	c.transition(0)

	if c.cfg.Autoplay && c.cfg.Interval > 0 {
		c.listen(c.container, dom.EventMouseEnter, func(*dom.Event) { c.pause() })
		c.listen(c.container, dom.EventMouseLeave, func(*dom.Event) { c.play() })
		c.play()
	}
}

// Destroy cancels the autoplay timer and detaches exactly the listeners
// Create attached, in reverse registration order. The structural
// changes Create made to the tree are deliberately left in place:
// destroy is cheap listener/timer cleanup, not a rollback.
func (c *Carousel) Destroy() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	for i := len(c.disposers) - 1; i >= 0; i-- {
		c.disposers[i]()
	}
	c.disposers = nil
}

// addPage appends one pagination button for the slide at index. The
// click handler closes over this call's index, so each button jumps to
// its own slide.
func (c *Carousel) addPage(index int) {
	page := c.doc.CreateElement("button")
	page.AddClass("carousel-page")
	page.SetAttribute("role", "tab")
	page.SetAttribute("aria-label", fmt.Sprintf("Go to slide %d", index+1))
	page.SetText(strconv.Itoa(index + 1))
	selected := "false"
	if index == 0 {
		page.AddClass("active")
		selected = "true"
	}
	page.SetAttribute("aria-selected", selected)
	c.listen(page, dom.EventClick, func(*dom.Event) { c.jumpTo(index) })
	c.pagination.AppendChild(page)
	c.pages = append(c.pages, page)
}

// addControl appends one previous/next button to the track wrapper.
func (c *Carousel) addControl(class, label, glyph string, action func()) *dom.Element {
	button := c.doc.CreateElement("button")
	button.AddClass("carousel-control")
	button.AddClass(class)
	button.SetAttribute("aria-label", label)
	button.SetText(glyph)
	c.listen(button, dom.EventClick, func(*dom.Event) { action() })
	c.wrapper.AppendChild(button)
	return button
}

// listen registers a handler and retains the exact registration handle,
// so Destroy detaches precisely what Create attached.
func (c *Carousel) listen(el *dom.Element, typ string, fn func(*dom.Event)) {
	l := el.AddEventListener(typ, fn)
	c.disposers = append(c.disposers, func() { el.RemoveEventListener(l) })
}

// handleKey moves one slide on left/right arrow keys. Only events
// targeted within the container and not already handled upstream act;
// everything else passes through untouched.
func (c *Carousel) handleKey(ev *dom.Event) {
	if ev.DefaultPrevented() {
		return
	}
	if !c.container.Contains(ev.Target) {
		return
	}
	switch ev.Key {
	case keyArrowLeft:
		c.previous()
	case keyArrowRight:
		c.next()
	default:
		return
	}
	ev.PreventDefault()
}
