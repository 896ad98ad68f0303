package mock

import "github.com/fwojciec/locdata"

var _ locdata.Snapshotter = (*Snapshotter)(nil)

// Snapshotter is a mock implementation of locdata.Snapshotter.
type Snapshotter struct {
	SnapshotFn func(docs []string) (string, error)
}

func (s *Snapshotter) Snapshot(docs []string) (string, error) {
	return s.SnapshotFn(docs)
}
