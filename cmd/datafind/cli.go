package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"

	"github.com/fwojciec/locdata"
	"github.com/fwojciec/locdata/html"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *stdslog.Logger

	Fetcher   locdata.Fetcher
	Finder    locdata.DataFinder
	Regions   locdata.RegionService
	Converter locdata.Converter
}

// LocateCmd handles the main locate operation.
type LocateCmd struct {
	URL      string
	Query    string
	Name     string
	Attempts int
}

// Run fetches the page, locates the data region and reports the outcome.
// Each attempt widens the result: later attempts return the unrefined
// container when earlier refinements missed the data.
func (c *LocateCmd) Run(deps *Dependencies) error {
	docs, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", c.URL, err)
	}

	attempts := c.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	var loc *locdata.Location
	var attempt int
	for attempt = range attempts {
		loc, err = deps.Finder.Find(deps.Ctx, docs, c.Query, c.Name, attempt)
		if err != nil {
			return err
		}
		if loc.Shape != locdata.ShapeNotFound {
			break
		}
	}

	fmt.Fprintf(deps.Stdout, "shape: %s\n", loc.Shape)
	fmt.Fprintf(deps.Stdout, "proportion: %.2f\n", loc.Proportion)
	if loc.SamplePath != "" {
		fmt.Fprintf(deps.Stdout, "sample: %s\n", loc.SamplePath)
	}

	if deps.Regions != nil {
		region := &locdata.Region{
			PageURL:    c.URL,
			Query:      c.Query,
			Shape:      loc.Shape,
			Proportion: loc.Proportion,
			SamplePath: loc.SamplePath,
			Attempt:    attempt,
		}
		if err := deps.Regions.CreateRegion(deps.Ctx, region); err != nil {
			return fmt.Errorf("failed to record region: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "region: %s\n", region.ID)
	}

	if deps.Converter != nil && loc.Sample != nil {
		md, err := deps.Converter.Convert(html.Render(loc.Sample))
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, md)
	}

	return nil
}
