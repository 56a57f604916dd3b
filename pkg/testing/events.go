package testing

import "github.com/go-drift/carousel/pkg/dom"

// Click dispatches a synthetic click to el and returns the event.
func Click(el *dom.Element) *dom.Event {
	ev := &dom.Event{Type: dom.EventClick}
	el.DispatchEvent(ev)
	return ev
}

// KeyDown dispatches a synthetic keydown with the given key value
// (e.g. "ArrowLeft") to el and returns the event, so tests can inspect
// whether the default action was suppressed.
func KeyDown(el *dom.Element, key string) *dom.Event {
	ev := &dom.Event{Type: dom.EventKeyDown, Key: key}
	el.DispatchEvent(ev)
	return ev
}

// PointerEnter dispatches a synthetic mouseenter to el.
func PointerEnter(el *dom.Element) *dom.Event {
	ev := &dom.Event{Type: dom.EventMouseEnter}
	el.DispatchEvent(ev)
	return ev
}

// PointerLeave dispatches a synthetic mouseleave to el.
func PointerLeave(el *dom.Element) *dom.Event {
	ev := &dom.Event{Type: dom.EventMouseLeave}
	el.DispatchEvent(ev)
	return ev
}
