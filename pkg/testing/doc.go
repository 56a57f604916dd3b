// Package testing provides test support for the carousel widget:
// a controllable clock for deterministic timer and timeline behavior,
// and helpers that dispatch the synthetic events a user would produce.
//
// A typical test installs the fake clock, builds a document, and drives
// the widget through events and time:
//
//	func TestMyCarousel(t *testing.T) {
//	    clk := caroustest.InstallFakeClock(t)
//	    doc, _ := dom.ParseString(page)
//
//	    c, err := carousel.New(doc, cfg)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    c.Create()
//
//	    // Simulate input
//	    caroustest.Click(nextButton)
//	    caroustest.KeyDown(container, "ArrowRight")
//
//	    // Let autoplay tick
//	    clk.Advance(2 * time.Second)
//	    doc.StepTimers()
//	}
package testing
