package app

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// Reserved filter keys that drive sorting and paging.
const (
	filterSortBy    = "_sort_by"
	filterSortOrder = "_sort_order"
	filterPage      = "_page"
	filterPerPage   = "_per_page"

	paramFilters = "filters"
	filtersReset = "reset"
)

// Datagrid is the list query derived from the request (and, when filters are
// persisted, from the session).
type Datagrid struct {
	Query domain.Query

	// Values are the filter[...] parameters the query was built from; they
	// are carried on redirects back to the list.
	Values url.Values
}

// Filter returns the value of one filter for templates.
func (d Datagrid) Filter(name string) string {
	return d.Query.Filters[name]
}

func (e *engine[T]) filterSessionKey() string {
	return "filters." + e.res.Name
}

// filterValues resolves the active filter parameters.
func (e *engine[T]) filterValues(ctx context.Context, req *domain.Request) url.Values {
	values := req.FilterParams()
	if !e.res.PersistFilters || e.c.Session == nil || req.SessionID == "" {
		return values
	}

	key := e.filterSessionKey()
	switch {
	case req.Get(paramFilters) == filtersReset:
		values = url.Values{}
		e.setSession(ctx, req, key, "")
	case len(values) == 0:
		stored, ok, err := e.c.Session.Get(ctx, req.SessionID, key)
		if err != nil {
			e.logger.WarnContext(ctx, "failed to read persisted filters",
				slog.String("operation", "filterValues"),
				slog.Any("error", err),
			)
			return values
		}
		if ok && stored != "" {
			if parsed, err := url.ParseQuery(stored); err == nil {
				values = parsed
			}
		}
	default:
		e.setSession(ctx, req, key, values.Encode())
	}
	return values
}

// datagrid builds the paginated list query for req.
func (e *engine[T]) datagrid(ctx context.Context, req *domain.Request) Datagrid {
	values := e.filterValues(ctx, req)

	q := domain.Query{
		Filters:   map[string]string{},
		SortBy:    "id",
		SortOrder: domain.SortDesc,
		Page:      1,
		PerPage:   e.res.PerPage,
	}

	for key, vals := range values {
		name := strings.TrimSuffix(strings.TrimPrefix(key, "filter["), "]")
		v := strings.TrimSpace(firstOf(vals))
		switch name {
		case filterSortBy:
			if v != "" {
				q.SortBy = v
			}
		case filterSortOrder:
			if strings.EqualFold(v, domain.SortAsc) {
				q.SortOrder = domain.SortAsc
			}
		case filterPage:
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				q.Page = n
			}
		case filterPerPage:
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				q.PerPage = n
			}
		default:
			if v != "" {
				q.Filters[name] = v
			}
		}
	}

	return Datagrid{Query: q, Values: values}
}

func firstOf(vals []string) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
