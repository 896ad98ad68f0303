package mock

import "github.com/fwojciec/locdata"

var _ locdata.Converter = (*Converter)(nil)

// Converter is a mock implementation of locdata.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
