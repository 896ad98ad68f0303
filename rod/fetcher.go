// Package rod provides a browser-based implementation of locdata.Fetcher
// for pages that need JavaScript rendering or assemble their content from
// iframes.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/locdata"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"golang.org/x/sync/errgroup"
)

// Ensure Fetcher implements locdata.Fetcher at compile time.
var _ locdata.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML of the main
// document followed by the HTML of each iframe, in DOM order. Frames that
// cannot be read (cross-origin, detached mid-capture) are skipped.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, err
	}

	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	frames, err := frameHTML(page)
	if err != nil {
		return nil, err
	}

	docs := make([]string, 0, 1+len(frames))
	docs = append(docs, html)
	docs = append(docs, frames...)
	return docs, nil
}

// frameHTML captures the rendered HTML of every iframe on the page
// concurrently, preserving DOM order. A frame that fails to yield HTML is
// dropped rather than failing the whole fetch.
func frameHTML(page *rod.Page) ([]string, error) {
	elements, err := page.Elements("iframe")
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, nil
	}

	captured := make([]string, len(elements))
	var g errgroup.Group
	for i, el := range elements {
		g.Go(func() error {
			frame, err := el.Frame()
			if err != nil {
				return nil
			}
			html, err := frame.HTML()
			if err != nil {
				return nil
			}
			captured[i] = html
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var docs []string
	for _, html := range captured {
		if html != "" {
			docs = append(docs, html)
		}
	}
	return docs, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
