package locdata

// Snapshotter produces a flat text snapshot of one or more HTML documents
// for use in the sample oracle's prompt. Long strings are truncated so the
// snapshot stays within model context limits; the truncation marker is the
// same ellipsis the locator later tolerates when matching anchor strings.
type Snapshotter interface {
	Snapshot(docs []string) (string, error)
}
