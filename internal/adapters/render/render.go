// Package render renders admin pages from embedded html/template files.
// Every page template defines a "content" block that the shared layout wraps.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time interface check.
var _ ports.TemplateRenderer = (*Renderer)(nil)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "layout.html"

// Renderer implements [ports.TemplateRenderer].
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page template. translator may be nil, in which case
// message keys are rendered as-is.
func New(translator ports.Translator) (*Renderer, error) {
	funcs := template.FuncMap{
		"trans": func(locale, key, translationDomain string) string {
			if translator == nil {
				return key
			}
			return translator.Trans(locale, key, nil, translationDomain)
		},
		"transWith": func(locale, key, translationDomain string, kv ...string) string {
			params := make(map[string]string, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				params[kv[i]] = kv[i+1]
			}
			if translator == nil {
				return key
			}
			return translator.Trans(locale, key, params, translationDomain)
		},
		// raw marks translator output that carries markup of our own making,
		// such as the lock conflict reload link.
		"raw":   func(s string) template.HTML { return template.HTML(s) }, //nolint:gosec // trusted catalog output
		"upper": strings.ToUpper,
		"list":  func(items ...string) []string { return items },
	}

	entries, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(entries))}
	for _, entry := range entries {
		file := path.Base(entry)
		if file == layoutFile {
			continue
		}
		t, err := template.New(layoutFile).Funcs(funcs).ParseFS(templateFS, "templates/"+layoutFile, entry)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", file, err)
		}
		r.pages[strings.TrimSuffix(file, ".html")] = t
	}
	return r, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	if err := t.ExecuteTemplate(w, layoutFile, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
