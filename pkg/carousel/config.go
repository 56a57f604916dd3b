package carousel

import "time"

// DefaultInterval is the autoplay interval used by DefaultConfig.
const DefaultInterval = 2 * time.Second

// Config describes one carousel instance.
type Config struct {
	// Container is the CSS selector for the carousel container. Required.
	Container string

	// Slides is the CSS selector for the slides, resolved within the
	// container. Required.
	Slides string

	// Controls enables the previous/next buttons.
	Controls bool

	// Pagination enables the pagination strip with one button per slide.
	Pagination bool

	// Autoplay enables the timed advance to the next slide.
	Autoplay bool

	// Interval is the autoplay period. Autoplay only runs when the
	// interval is positive.
	Interval time.Duration
}

// DefaultConfig returns the standard configuration: controls,
// pagination and autoplay all enabled, with a 2 second interval.
// Selectors must still be filled in by the caller.
func DefaultConfig() Config {
	return Config{
		Controls:   true,
		Pagination: true,
		Autoplay:   true,
		Interval:   DefaultInterval,
	}
}
