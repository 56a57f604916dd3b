package dom

// Event type names used by interactive widgets.
const (
	EventClick      = "click"
	EventKeyDown    = "keydown"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
)

// Event is a synthetic event dispatched through the tree. Dispatch
// starts at Target and bubbles up through its ancestors until the root
// is reached or propagation is stopped.
type Event struct {
	// Type is the event name, e.g. "click" or "keydown".
	Type string

	// Key is the key value for keyboard events, e.g. "ArrowLeft".
	Key string

	// Target is the element the event was dispatched to.
	Target *Element

	defaultPrevented   bool
	propagationStopped bool
}

// PreventDefault marks the event's default action as suppressed.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault has been called,
// here or by an earlier listener in the dispatch.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents the event from bubbling past the current element.
func (e *Event) StopPropagation() { e.propagationStopped = true }

// Listener is the registration handle returned by AddEventListener.
// Removal is by handle identity: RemoveEventListener detaches exactly
// the registration the handle came from.
type Listener struct {
	typ string
	fn  func(*Event)
}

// AddEventListener registers fn for events of the given type on e and
// returns the handle needed to remove it again.
func (e *Element) AddEventListener(typ string, fn func(*Event)) *Listener {
	if e.listeners == nil {
		e.listeners = make(map[string][]*Listener)
	}
	l := &Listener{typ: typ, fn: fn}
	e.listeners[typ] = append(e.listeners[typ], l)
	return l
}

// RemoveEventListener detaches a previously added listener. Passing a
// handle that is not registered on e is a no-op.
func (e *Element) RemoveEventListener(l *Listener) {
	if l == nil || e.listeners == nil {
		return
	}
	regs := e.listeners[l.typ]
	for i, reg := range regs {
		if reg == l {
			e.listeners[l.typ] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// DispatchEvent dispatches ev with e as its target, bubbling up the
// ancestor chain. It returns false if any listener called
// PreventDefault, mirroring the DOM dispatchEvent contract.
func (e *Element) DispatchEvent(ev *Event) bool {
	ev.Target = e
	for cur := e; cur != nil; cur = cur.Parent() {
		// Snapshot so listeners can add or remove registrations
		// without affecting this dispatch.
		regs := append([]*Listener(nil), cur.listeners[ev.Type]...)
		for _, l := range regs {
			l.fn(ev)
		}
		if ev.propagationStopped {
			break
		}
	}
	return !ev.defaultPrevented
}
