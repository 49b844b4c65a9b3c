package domain

import (
	"maps"
	"slices"
)

// Sort orders.
const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Query is the datagrid's proxy query: filters, sort and pagination, plus an
// optional identifier constraint used by batch execution. Methods return
// modified copies.
type Query struct {
	Filters   map[string]string
	SortBy    string
	SortOrder string
	Page      int

	// PerPage is the page size; 0 means unpaginated.
	PerPage int

	// IDs constrains the query when non-nil. A non-nil empty slice matches
	// nothing.
	IDs []string
}

// DisablePagination returns a copy that covers the full logical selection.
func (q Query) DisablePagination() Query {
	q.Page = 0
	q.PerPage = 0
	q.Filters = maps.Clone(q.Filters)
	return q
}

// ConstrainToIDs returns a copy restricted to exactly ids.
func (q Query) ConstrainToIDs(ids []string) Query {
	q.IDs = append([]string{}, ids...)
	q.Filters = maps.Clone(q.Filters)
	return q
}

// Constrained reports whether an identifier constraint applies.
func (q Query) Constrained() bool {
	return q.IDs != nil
}

// Offset returns the zero-based row offset of the current page.
func (q Query) Offset() int {
	if q.PerPage <= 0 || q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}

// Pages returns the page count for total rows.
func (q Query) Pages(total int) int {
	if q.PerPage <= 0 || total == 0 {
		return 1
	}
	return (total + q.PerPage - 1) / q.PerPage
}

// HasID reports whether id passes the identifier constraint.
func (q Query) HasID(id string) bool {
	return !q.Constrained() || slices.Contains(q.IDs, id)
}
