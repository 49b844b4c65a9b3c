package app

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// redirectTo computes where a successful create, edit or delete lands.
// Explicit list buttons win, then "create another", then a DELETE
// completion, then the first of edit and show the actor may reach for obj,
// and finally the list.
func (e *engine[T]) redirectTo(ctx context.Context, req *domain.Request, obj T, deleted bool) string {
	switch {
	case req.Has(domain.ParamUpdateAndList), req.Has(domain.ParamCreateAndList):
		return e.listURL(ctx, req)

	case req.Has(domain.ParamCreateAndCreate):
		params := url.Values{}
		if sub := e.res.ActiveSubClass(req); sub != "" {
			params.Set(domain.ParamSubclass, sub)
		}
		return e.res.Routes.Generate(domain.ActionCreate, params)

	case deleted || req.RestMethod() == http.MethodDelete:
		return e.listURL(ctx, req)
	}

	id := e.c.Manager.ObjectID(obj)
	if id != "" {
		var params url.Values
		if tab := req.Get(domain.ParamTab); tab != "" {
			params = url.Values{domain.ParamTab: {tab}}
		}
		for _, route := range []string{domain.ActionEdit, domain.ActionShow} {
			if e.res.Routes.HasRoute(route) && e.isGranted(ctx, req, route, id) {
				return e.res.Routes.GenerateObject(route, id, params)
			}
		}
	}

	return e.listURL(ctx, req)
}
