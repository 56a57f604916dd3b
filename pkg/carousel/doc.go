// Package carousel turns a set of sibling elements inside a container
// into a slide-based carousel: one slide visible at a time, with
// optional previous/next controls, pagination, keyboard navigation,
// and timed autoplay that pauses while the pointer hovers the
// container.
//
// # Lifecycle
//
// [New] validates the configuration against a document: the container
// selector must match an element, and the slide selector must match at
// least one element within it. Failure reports a diagnostic through
// pkg/errors and yields no instance.
//
// [Carousel.Create] performs one irreversible DOM mutation pass (track
// wrapper, slide offsets, pagination strip, control buttons), wires the
// event listeners, applies the initial animation state, and starts
// autoplay when enabled. [Carousel.Destroy] detaches exactly the
// listeners Create attached and cancels the autoplay timer; it does not
// undo the structural changes. Create is meant to be called once per
// instance — a second call would duplicate the built structure.
//
// # State
//
// The entire state machine is one integer, the current slide index.
// Every change path — previous/next click, pagination click, arrow key,
// autoplay tick — funnels through the same transition routine, which
// keeps the positioning law intact: the current slide sits at
// horizontal offset 0 and slide i at 100% × (i − current), and restarts
// the animation timelines of the newly current slide.
package carousel
