package domain

import "time"

// Revision is a materialized snapshot of a subject. Revision IDs are opaque;
// their ordering is defined by the audit reader.
type Revision[T any] struct {
	ObjectID  string
	ID        string
	Snapshot  T
	CreatedAt time.Time
	Author    string
}
