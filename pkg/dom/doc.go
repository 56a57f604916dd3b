// Package dom provides a lightweight DOM-like document over
// golang.org/x/net/html nodes, with the capabilities an interactive
// widget needs from its host environment:
//
//   - [Document.QuerySelector] and [Element.QuerySelectorAll]: CSS selector
//     lookup, single and scoped-multiple, via cascadia.
//   - [Element] tree mutation: create, insert-before, append-with-move,
//     attribute/class/inline-style manipulation, text content.
//   - [Element.AddEventListener] / [Element.RemoveEventListener]: event
//     registration with exact listener identity, and bubbling dispatch
//     through [Element.DispatchEvent].
//   - [Document.SetInterval]: one repeating-timer primitive with cancel,
//     advanced explicitly by [Document.StepTimers].
//   - [Element.Animate] / [Element.Animations]: per-element animation
//     timelines with pause, seek and play.
//
// Time comes from the package clock. Production code uses system time;
// tests install a fake via [SetClock] to control timers and timelines
// deterministically.
//
// Document is not safe for concurrent use. Like a browser's main thread,
// all mutation and dispatch is expected to happen from a single goroutine.
package dom
