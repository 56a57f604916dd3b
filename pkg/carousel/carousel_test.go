package carousel_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/dom"
	caroustest "github.com/go-drift/carousel/pkg/testing"
)

const page = `<!DOCTYPE html><html><body>
<div id="demo">
  <div class="slide">One</div>
  <div class="slide">Two</div>
  <div class="slide">Three</div>
</div>
<p class="outside">elsewhere</p>
</body></html>`

// setup parses the fixture page and constructs a carousel on it.
// Autoplay is off unless a test turns it back on via mutate.
func setup(t *testing.T, mutate func(*carousel.Config)) (*dom.Document, *carousel.Carousel) {
	t.Helper()
	doc, err := dom.ParseString(page)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	cfg := carousel.DefaultConfig()
	cfg.Container = "#demo"
	cfg.Slides = ".slide"
	cfg.Autoplay = false
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := carousel.New(doc, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return doc, c
}

func container(t *testing.T, doc *dom.Document) *dom.Element {
	t.Helper()
	el, err := doc.QuerySelector("#demo")
	if err != nil || el == nil {
		t.Fatalf("container lookup failed: %v", err)
	}
	return el
}

func slides(t *testing.T, doc *dom.Document) []*dom.Element {
	t.Helper()
	out, err := doc.QuerySelectorAll("#demo .slide")
	if err != nil || len(out) == 0 {
		t.Fatalf("slide lookup failed: %v", err)
	}
	return out
}

func pages(t *testing.T, doc *dom.Document) []*dom.Element {
	t.Helper()
	out, err := doc.QuerySelectorAll("#demo .carousel-page")
	if err != nil {
		t.Fatalf("page lookup failed: %v", err)
	}
	return out
}

// activePage returns the index of the single active pagination button,
// failing the test if not exactly one is active.
func activePage(t *testing.T, doc *dom.Document) int {
	t.Helper()
	active := -1
	for i, p := range pages(t, doc) {
		if !p.HasClass("active") {
			if v, _ := p.Attribute("aria-selected"); v != "false" {
				t.Errorf("inactive page %d has aria-selected=%q", i, v)
			}
			continue
		}
		if v, _ := p.Attribute("aria-selected"); v != "true" {
			t.Errorf("active page %d has aria-selected=%q", i, v)
		}
		if active != -1 {
			t.Fatalf("pages %d and %d both active", active, i)
		}
		active = i
	}
	if active == -1 {
		t.Fatal("no active page")
	}
	return active
}

func TestCreateBuildsStructure(t *testing.T) {
	doc, c := setup(t, nil)
	c.Create()

	cont := container(t, doc)
	if v, _ := cont.Attribute("tabindex"); v != "0" {
		t.Errorf("container tabindex = %q, want 0", v)
	}

	wrapper, _ := cont.QuerySelector(".carousel-track")
	if wrapper == nil {
		t.Fatal("track wrapper not created")
	}
	if wrapper.Parent() != cont {
		t.Error("wrapper should be a direct child of the container")
	}

	// Slides moved into the wrapper, original order preserved.
	var order []string
	for _, s := range slides(t, doc) {
		if s.Parent() != wrapper {
			t.Error("slide not moved into the wrapper")
		}
		order = append(order, s.Text())
	}
	if order[0] != "One" || order[1] != "Two" || order[2] != "Three" {
		t.Errorf("slide order changed: %v", order)
	}

	// The pagination strip overlays the track: it hangs off the
	// container itself, never the wrapper.
	nav, _ := cont.QuerySelector("nav.carousel-pagination")
	if nav == nil {
		t.Fatal("pagination strip not created")
	}
	if nav.Parent() != cont {
		t.Error("pagination strip should be a direct child of the container")
	}
	if v, _ := nav.Attribute("role"); v != "tablist" {
		t.Errorf("pagination role = %q, want tablist", v)
	}

	ps := pages(t, doc)
	if len(ps) != 3 {
		t.Fatalf("got %d pagination buttons, want 3", len(ps))
	}
	for i, p := range ps {
		if p.Tag() != "button" {
			t.Errorf("page %d is <%s>, want <button>", i, p.Tag())
		}
		if v, _ := p.Attribute("role"); v != "tab" {
			t.Errorf("page %d role = %q, want tab", i, v)
		}
		if p.Text() != strconv.Itoa(i+1) {
			t.Errorf("page %d label = %q, want 1-based index", i, p.Text())
		}
	}
	if activePage(t, doc) != 0 {
		t.Error("page 0 should start active")
	}

	prev, _ := wrapper.QuerySelector(".carousel-prev")
	next, _ := wrapper.QuerySelector(".carousel-next")
	if prev == nil || next == nil {
		t.Fatal("previous/next controls not created in the wrapper")
	}
	if v, _ := prev.Attribute("aria-label"); v != "Previous slide" {
		t.Errorf("prev aria-label = %q", v)
	}
	if v, _ := next.Attribute("aria-label"); v != "Next slide" {
		t.Errorf("next aria-label = %q", v)
	}
}

func TestCreateWithoutOptionalParts(t *testing.T) {
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Controls = false
		cfg.Pagination = false
	})
	c.Create()

	cont := container(t, doc)
	if nav, _ := cont.QuerySelector("nav.carousel-pagination"); nav != nil {
		t.Error("pagination built although disabled")
	}
	if b, _ := cont.QuerySelector(".carousel-control"); b != nil {
		t.Error("controls built although disabled")
	}
	if doc.ActiveTimers() != 0 {
		t.Error("autoplay timer running although disabled")
	}
}

func TestInitialScenario(t *testing.T) {
	// 3 slides, pagination enabled, autoplay disabled: after
	// construction slide offsets are 0%, 100%, 200% and page 0 is
	// active. Two clicks on "next" land on index 2 with its offset at
	// 0% and page 2 active.
	doc, c := setup(t, nil)
	c.Create()

	ss := slides(t, doc)
	for i, want := range []string{"0%", "100%", "200%"} {
		if got := ss[i].Style("left"); got != want {
			t.Errorf("slide %d left = %q, want %q", i, got, want)
		}
	}

	next, _ := doc.QuerySelector("#demo .carousel-next")
	caroustest.Click(next)
	caroustest.Click(next)

	if c.CurrentIndex() != 2 {
		t.Fatalf("index = %d after two next clicks, want 2", c.CurrentIndex())
	}
	if got := ss[2].Style("left"); got != "0%" {
		t.Errorf("current slide left = %q, want 0%%", got)
	}
	if activePage(t, doc) != 2 {
		t.Error("page 2 should be active")
	}
}

func TestDestroyDetachesEverything(t *testing.T) {
	clk := caroustest.InstallFakeClock(t)
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Autoplay = true
		cfg.Interval = 2 * time.Second
	})
	c.Create()

	if doc.ActiveTimers() != 1 {
		t.Fatalf("ActiveTimers = %d after create, want 1", doc.ActiveTimers())
	}

	c.Destroy()

	if doc.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers = %d after destroy, want 0", doc.ActiveTimers())
	}

	// The structure stays, but no listener may fire: synthetic events
	// on the still-present elements must not change state.
	next, _ := doc.QuerySelector("#demo .carousel-next")
	caroustest.Click(next)
	for _, p := range pages(t, doc) {
		caroustest.Click(p)
	}
	ev := caroustest.KeyDown(slides(t, doc)[0], "ArrowRight")
	caroustest.PointerLeave(container(t, doc))
	clk.Advance(10 * time.Second)
	doc.StepTimers()

	if c.CurrentIndex() != 0 {
		t.Errorf("index = %d after post-destroy events, want 0", c.CurrentIndex())
	}
	if ev.DefaultPrevented() {
		t.Error("keydown default suppressed after destroy")
	}
	if activePage(t, doc) != 0 {
		t.Error("pagination state changed after destroy")
	}
	if doc.ActiveTimers() != 0 {
		t.Errorf("a timer came back after destroy: %d", doc.ActiveTimers())
	}
}

func TestDestroyWhileHovered(t *testing.T) {
	caroustest.InstallFakeClock(t)
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Autoplay = true
	})
	c.Create()

	caroustest.PointerEnter(container(t, doc))
	c.Destroy()

	if doc.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers = %d after destroy during hover, want 0", doc.ActiveTimers())
	}
}

func TestKeyboardNavigation(t *testing.T) {
	doc, c := setup(t, nil)
	c.Create()
	cont := container(t, doc)
	slide := slides(t, doc)[0]

	t.Run("arrow right advances", func(t *testing.T) {
		ev := caroustest.KeyDown(slide, "ArrowRight")
		if c.CurrentIndex() != 1 {
			t.Errorf("index = %d, want 1", c.CurrentIndex())
		}
		if !ev.DefaultPrevented() {
			t.Error("handled arrow key should suppress the default action")
		}
	})

	t.Run("arrow left moves back", func(t *testing.T) {
		caroustest.KeyDown(cont, "ArrowLeft")
		if c.CurrentIndex() != 0 {
			t.Errorf("index = %d, want 0", c.CurrentIndex())
		}
	})

	t.Run("other keys ignored", func(t *testing.T) {
		ev := caroustest.KeyDown(cont, "Enter")
		if c.CurrentIndex() != 0 {
			t.Errorf("index = %d after Enter, want 0", c.CurrentIndex())
		}
		if ev.DefaultPrevented() {
			t.Error("unhandled key should not suppress the default action")
		}
	})

	t.Run("outside target ignored", func(t *testing.T) {
		outside, _ := doc.QuerySelector(".outside")
		caroustest.KeyDown(outside, "ArrowRight")
		if c.CurrentIndex() != 0 {
			t.Errorf("index = %d after outside keydown, want 0", c.CurrentIndex())
		}
	})

	t.Run("already handled upstream", func(t *testing.T) {
		l := slide.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) {
			ev.PreventDefault()
		})
		defer slide.RemoveEventListener(l)

		caroustest.KeyDown(slide, "ArrowRight")
		if c.CurrentIndex() != 0 {
			t.Errorf("index = %d, want 0: prevented event must not act", c.CurrentIndex())
		}
	})
}
