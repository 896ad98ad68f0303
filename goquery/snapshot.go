// Package goquery provides a goquery-based text snapshotter: a flat,
// truncated rendition of a page's text used to prompt the sample oracle.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/locdata"
	xhtml "golang.org/x/net/html"
)

const (
	// DefaultMaxStringLen caps each individual text node's contribution.
	DefaultMaxStringLen = 100
	// DefaultMaxTextLen caps the total snapshot length.
	DefaultMaxTextLen = 50000
)

// Ensure Snapshotter implements locdata.Snapshotter at compile time.
var _ locdata.Snapshotter = (*Snapshotter)(nil)

// Snapshotter flattens HTML documents into one line of text per text node,
// with script and style contents removed and long strings truncated with an
// ellipsis. The truncation marker matters: the locator strips it back off
// anchor strings the oracle echoes.
type Snapshotter struct {
	maxStringLen int
	maxTextLen   int
}

// Option configures a Snapshotter.
type Option func(*Snapshotter)

// WithMaxStringLen caps each text node's contribution to the snapshot.
func WithMaxStringLen(n int) Option {
	return func(s *Snapshotter) {
		s.maxStringLen = n
	}
}

// WithMaxTextLen caps the total snapshot length.
func WithMaxTextLen(n int) Option {
	return func(s *Snapshotter) {
		s.maxTextLen = n
	}
}

// NewSnapshotter creates a Snapshotter with default limits.
func NewSnapshotter(opts ...Option) *Snapshotter {
	s := &Snapshotter{
		maxStringLen: DefaultMaxStringLen,
		maxTextLen:   DefaultMaxTextLen,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot extracts the text of every document, in order, as one flat
// string.
func (s *Snapshotter) Snapshot(docs []string) (string, error) {
	if len(docs) == 0 {
		return "", locdata.Errorf(locdata.EINVALID, "at least one document required")
	}

	var texts []string
	for _, src := range docs {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
		if err != nil {
			return "", locdata.Errorf(locdata.EINVALID, "parsing HTML: %v", err)
		}

		doc.Find("script, style").Remove()

		body := doc.Find("body")
		if body.Length() == 0 {
			continue
		}
		for _, node := range body.Nodes {
			collectTexts(node, s.maxStringLen, &texts)
		}
	}

	joined := strings.Join(strings.Fields(strings.Join(texts, " ")), " ")
	return splitWithEllipsis(joined, s.maxTextLen), nil
}

// collectTexts gathers trimmed text nodes in document order, truncating each
// to maxLen characters with a trailing ellipsis.
func collectTexts(n *xhtml.Node, maxLen int, texts *[]string) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xhtml.TextNode:
			text := strings.TrimSpace(c.Data)
			if text == "" {
				continue
			}
			if runes := []rune(text); len(runes) > maxLen {
				text = string(runes[:maxLen]) + "..."
			}
			*texts = append(*texts, text)
		case xhtml.ElementNode:
			collectTexts(c, maxLen, texts)
		}
	}
}

// splitWithEllipsis keeps the head and tail halves of an overlong snapshot,
// joined by an ellipsis. The middle of a long page is the least likely place
// for the first or last record. Limits count characters, not bytes, so
// multi-byte text is never cut mid-rune.
func splitWithEllipsis(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) < maxLen {
		return text
	}
	half := maxLen / 2
	return string(runes[:half]) + "..." + string(runes[len(runes)-half:])
}
