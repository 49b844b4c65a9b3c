package app

import (
	"net/url"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/domain"
)

// Routes generates the URLs of one admin resource. Only enabled actions
// have a route.
type Routes struct {
	BasePath string
	enabled  map[string]bool
}

// NewRoutes creates the route set rooted at basePath. With no actions every
// action is enabled.
func NewRoutes(basePath string, actions ...string) Routes {
	r := Routes{BasePath: strings.TrimRight(basePath, "/")}
	if len(actions) > 0 {
		r.enabled = make(map[string]bool, len(actions))
		for _, a := range actions {
			r.enabled[a] = true
		}
	}
	return r
}

// HasRoute reports whether action is routable.
func (r Routes) HasRoute(action string) bool {
	return r.enabled == nil || r.enabled[action]
}

// Generate returns the URL of a collection action (list, create, batch,
// export).
func (r Routes) Generate(action string, params url.Values) string {
	return withQuery(r.BasePath+"/"+action, params)
}

// GenerateObject returns the URL of an object action (edit, show, delete,
// history, acl).
func (r Routes) GenerateObject(action, id string, params url.Values) string {
	return withQuery(r.BasePath+"/"+url.PathEscape(id)+"/"+action, params)
}

// RevisionURL returns the historyViewRevision URL.
func (r Routes) RevisionURL(id, revision string) string {
	return r.BasePath + "/" + url.PathEscape(id) + "/history/" + url.PathEscape(revision) + "/view"
}

// CompareURL returns the historyCompareRevisions URL.
func (r Routes) CompareURL(id, base, compare string) string {
	return r.BasePath + "/" + url.PathEscape(id) + "/history/" +
		url.PathEscape(base) + "/" + url.PathEscape(compare) + "/compare"
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// Resource is the resolved metadata of the managed resource. It is built
// once at startup and shared read-only by every request.
type Resource struct {
	Name  string
	Class string
	Label string

	// IDParam is the route parameter carrying the object identifier.
	IDParam string

	Templates         map[string]string
	TranslationDomain string

	SupportsPreview bool
	ACLEnabled      bool

	// SubClasses lists the selectable sub-classes. Abstract resources cannot
	// be instantiated without one.
	SubClasses []string
	Abstract   bool

	ExportFormats  []string
	PerPage        int
	PersistFilters bool

	Routes Routes
}

// Template resolves a template key, falling back to the key itself.
func (r *Resource) Template(key string) string {
	if t, ok := r.Templates[key]; ok && t != "" {
		return t
	}
	return key
}

// HasSubClass reports whether name is a declared sub-class.
func (r *Resource) HasSubClass(name string) bool {
	return name != "" && slices.Contains(r.SubClasses, name)
}

// ActiveSubClass returns the sub-class selected by the request, or "".
func (r *Resource) ActiveSubClass(req *domain.Request) string {
	if s := req.Get(domain.ParamSubclass); r.HasSubClass(s) {
		return s
	}
	return ""
}

// IsExportFormatAllowed reports whether format is in the allow-list.
func (r *Resource) IsExportFormatAllowed(format string) bool {
	return slices.Contains(r.ExportFormats, format)
}
