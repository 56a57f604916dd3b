package carousel_test

import (
	"testing"
	"time"

	"github.com/go-drift/carousel/pkg/carousel"
	caroustest "github.com/go-drift/carousel/pkg/testing"
)

func TestAutoplayAdvances(t *testing.T) {
	clk := caroustest.InstallFakeClock(t)
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Autoplay = true
		cfg.Interval = 2 * time.Second
	})
	c.Create()

	if !c.Playing() {
		t.Fatal("autoplay should be running after create")
	}

	// N ticks advance the index by N mod slideCount.
	for tick := 1; tick <= 5; tick++ {
		clk.Advance(2 * time.Second)
		doc.StepTimers()
		if want := tick % 3; c.CurrentIndex() != want {
			t.Errorf("index = %d after %d ticks, want %d", c.CurrentIndex(), tick, want)
		}
	}
}

func TestAutoplayPausesOnHover(t *testing.T) {
	clk := caroustest.InstallFakeClock(t)
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Autoplay = true
		cfg.Interval = 2 * time.Second
	})
	c.Create()
	cont := container(t, doc)

	caroustest.PointerEnter(cont)
	if c.Playing() {
		t.Error("autoplay should be suspended while hovered")
	}

	// A tick that would have fired during the hover is suppressed.
	clk.Advance(3 * time.Second)
	doc.StepTimers()
	if c.CurrentIndex() != 0 {
		t.Errorf("index = %d during hover, want 0", c.CurrentIndex())
	}

	caroustest.PointerLeave(cont)
	if !c.Playing() {
		t.Error("autoplay should resume on pointer leave")
	}

	// The resumed timer runs a full interval from the leave.
	clk.Advance(2 * time.Second)
	doc.StepTimers()
	if c.CurrentIndex() != 1 {
		t.Errorf("index = %d one interval after leave, want 1", c.CurrentIndex())
	}
}

func TestRepeatedHoverKeepsOneTimer(t *testing.T) {
	caroustest.InstallFakeClock(t)
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Autoplay = true
	})
	c.Create()
	cont := container(t, doc)

	// Leave without a prior enter, twice: the driver must never hold
	// two concurrent timers.
	caroustest.PointerLeave(cont)
	caroustest.PointerLeave(cont)

	if doc.ActiveTimers() != 1 {
		t.Errorf("ActiveTimers = %d, want exactly 1", doc.ActiveTimers())
	}
}

func TestAutoplayDisabledWiresNoHoverListeners(t *testing.T) {
	caroustest.InstallFakeClock(t)
	doc, c := setup(t, nil)
	c.Create()
	cont := container(t, doc)

	caroustest.PointerLeave(cont)

	if c.Playing() {
		t.Error("pointer leave must not start autoplay when disabled")
	}
	if doc.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers = %d, want 0", doc.ActiveTimers())
	}
}

func TestAutoplayNonPositiveInterval(t *testing.T) {
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Autoplay = true
		cfg.Interval = 0
	})
	c.Create()

	if c.Playing() {
		t.Error("autoplay with a zero interval should stay stopped")
	}
	if doc.ActiveTimers() != 0 {
		t.Errorf("ActiveTimers = %d, want 0", doc.ActiveTimers())
	}
}

func TestAutoplayTickMatchesUserNext(t *testing.T) {
	clk := caroustest.InstallFakeClock(t)
	doc, c := setup(t, func(cfg *carousel.Config) {
		cfg.Autoplay = true
		cfg.Interval = 2 * time.Second
	})
	c.Create()

	// A timer tick goes through the same transition as a user "next":
	// pagination follows and the entered slide's timeline restarts.
	a := slides(t, doc)[1].Animate("enter", 400*time.Millisecond)
	clk.Advance(2 * time.Second)
	doc.StepTimers()

	if c.CurrentIndex() != 1 {
		t.Fatalf("index = %d after one tick, want 1", c.CurrentIndex())
	}
	if activePage(t, doc) != 1 {
		t.Error("pagination did not follow the autoplay tick")
	}
	if got := a.CurrentTime(); got != 0 {
		t.Errorf("entered slide timeline at %v, want restarted at 0", got)
	}
}
