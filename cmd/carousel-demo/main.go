// Command carousel-demo is the thin bootstrap for the carousel widget.
// It parses a page (an embedded demo page by default), instantiates a
// carousel from the optional carousel.yaml, lets autoplay run for a
// while, then tears the instance down and prints the mutated document.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-drift/carousel/cmd/carousel-demo/internal/config"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/dom"
)

//go:embed page.html
var demoPage string

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "carousel-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "carousel.yaml", "path to the optional YAML configuration")
	pagePath := flag.String("page", "", "HTML page to mount the carousel on (default: embedded demo page)")
	duration := flag.Duration("duration", 6*time.Second, "how long to let autoplay run")
	flag.Parse()

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		return err
	}

	src := demoPage
	if *pagePath != "" {
		data, err := os.ReadFile(*pagePath)
		if err != nil {
			return fmt.Errorf("failed to read page: %w", err)
		}
		src = string(data)
	}

	doc, err := dom.ParseString(src)
	if err != nil {
		return err
	}

	c, err := carousel.New(doc, cfg)
	if err != nil {
		return err
	}
	// New returns no usable instance on validation failure; the
	// lifecycle calls below rely on the check above.
	c.Create()

	// Give each slide an enter timeline so transitions have something
	// to restart, the way a CSS animation would on a real page.
	slides, err := doc.QuerySelectorAll(cfg.Container + " " + cfg.Slides)
	if err == nil {
		for _, s := range slides {
			s.Animate("slide-in", 400*time.Millisecond)
		}
	}

	// Drive the document's timers in real time.
	if cfg.Autoplay && *duration > 0 {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		deadline := time.Now().Add(*duration)
		for t := range ticker.C {
			doc.StepTimers()
			if t.After(deadline) {
				break
			}
		}
	}

	c.Destroy()

	return doc.Render(os.Stdout)
}
