// Package locdata locates a repeated data region (a table, list, or set of
// repeated records) inside an HTML page, given only a small structured sample
// of the values that appear in the first and last target records. It works
// purely on tree topology (anchor matching, common ancestors, text coverage)
// with no semantic understanding of the page.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., html/, gemini/, sqlite/).
package locdata
