package dom

import "time"

// Animation is one animation timeline attached to an element. It tracks
// playback position against the package clock; it does not render
// anything itself. Widgets control timelines through the pause, seek
// and play operations, the same way browser code drives
// element.getAnimations().
type Animation struct {
	// Name identifies the timeline, e.g. the CSS animation name it
	// stands in for.
	Name string

	// Duration is the length of one run of the timeline.
	Duration time.Duration

	playing bool
	base    time.Duration
	mark    time.Time
}

// Animate creates a timeline with the given name and duration, attaches
// it to the element and starts it playing.
func (e *Element) Animate(name string, duration time.Duration) *Animation {
	a := &Animation{
		Name:     name,
		Duration: duration,
		playing:  true,
		mark:     Now(),
	}
	e.animations = append(e.animations, a)
	return a
}

// Animations returns the element's attached timelines. The slice is a
// copy; the timelines themselves are shared.
func (e *Element) Animations() []*Animation {
	return append([]*Animation(nil), e.animations...)
}

// CurrentTime returns the playback position.
func (a *Animation) CurrentTime() time.Duration {
	if a.playing {
		return a.base + Now().Sub(a.mark)
	}
	return a.base
}

// IsPlaying reports whether the timeline is advancing.
func (a *Animation) IsPlaying() bool { return a.playing }

// Pause freezes the timeline at its current position.
func (a *Animation) Pause() {
	if !a.playing {
		return
	}
	a.base = a.CurrentTime()
	a.playing = false
}

// SeekTo moves the playback position without changing play state.
func (a *Animation) SeekTo(position time.Duration) {
	a.base = position
	a.mark = Now()
}

// Play starts or resumes the timeline from its current position.
func (a *Animation) Play() {
	if a.playing {
		return
	}
	a.mark = Now()
	a.playing = true
}
