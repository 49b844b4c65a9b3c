// Package i18n loads the translation catalogs used for user feedback and
// labels, and resolves request locales against the configured set.
//
// Catalogs are YAML files named after their locale ({dir}/en.yaml). Their
// top-level keys are translation domains:
//
//	admin:
//	  flash_create_success: "Item \"%name%\" has been successfully created."
//
// Placeholders such as %name% are substituted verbatim from the parameter map.
package i18n

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time interface check.
var _ ports.Translator = (*Translator)(nil)

// Translator implements [ports.Translator] over an x/text catalog.
type Translator struct {
	catalog  *catalog.Builder
	matcher  language.Matcher
	locales  []string
	tags     []language.Tag
	fallback language.Tag
}

// Load reads one catalog per locale from dir. The default locale is used
// when a key or a locale is missing.
func Load(dir, defaultLocale string, locales []string) (*Translator, error) {
	messages := make(map[string]map[string]string, len(locales))
	for _, locale := range locales {
		path := filepath.Join(dir, locale+".yaml")

		k := koanf.New(".")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading catalog %s: %w", path, err)
		}

		flat := make(map[string]string, len(k.Keys()))
		for _, key := range k.Keys() {
			flat[key] = k.String(key)
		}
		messages[locale] = flat
	}
	return New(defaultLocale, messages)
}

// New builds a Translator from in-memory catalogs keyed by locale, then by
// "<domain>.<key>".
func New(defaultLocale string, messages map[string]map[string]string) (*Translator, error) {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parsing default locale %q: %w", defaultLocale, err)
	}
	if _, ok := messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q has no catalog", defaultLocale)
	}

	b := catalog.NewBuilder(catalog.Fallback(fallback))
	t := &Translator{catalog: b, fallback: fallback}

	// The default locale goes first so the matcher prefers it on ties.
	ordered := append([]string{defaultLocale}, withoutLocale(keys(messages), defaultLocale)...)
	for _, locale := range ordered {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("parsing locale %q: %w", locale, err)
		}
		for key, msg := range messages[locale] {
			// Catalog messages are printf formats; placeholders are not verbs.
			if err := b.SetString(tag, key, strings.ReplaceAll(msg, "%", "%%")); err != nil {
				return nil, fmt.Errorf("registering %s/%s: %w", locale, key, err)
			}
		}
		t.locales = append(t.locales, locale)
		t.tags = append(t.tags, tag)
	}
	t.matcher = language.NewMatcher(t.tags)

	return t, nil
}

// Trans returns the message for key in translationDomain, falling back to
// the default locale and then to the key itself.
func (t *Translator) Trans(locale, key string, params map[string]string, translationDomain string) string {
	ref := key
	if translationDomain != "" {
		ref = translationDomain + "." + key
	}

	tag := t.tag(locale)
	msg := t.lookup(tag, ref)
	if msg == ref && tag != t.fallback {
		msg = t.lookup(t.fallback, ref)
	}
	if msg == ref {
		msg = key
	}

	if len(params) == 0 {
		return msg
	}
	pairs := make([]string, 0, 2*len(params))
	for placeholder, value := range params {
		pairs = append(pairs, placeholder, value)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Match resolves an Accept-Language header (or a bare locale) to one of the
// configured locales.
func (t *Translator) Match(accept string) string {
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return t.locales[0]
	}
	_, index, _ := t.matcher.Match(tags...)
	return t.locales[index]
}

// Locales returns the configured locales, default first.
func (t *Translator) Locales() []string {
	return append([]string(nil), t.locales...)
}

// lookup prints ref for tag. A missing message prints ref itself.
func (t *Translator) lookup(tag language.Tag, ref string) string {
	return message.NewPrinter(tag, message.Catalog(t.catalog)).Sprintf(ref)
}

func (t *Translator) tag(locale string) language.Tag {
	for i, l := range t.locales {
		if l == locale {
			return t.tags[i]
		}
	}
	return t.fallback
}

func keys(m map[string]map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func withoutLocale(locales []string, drop string) []string {
	out := locales[:0]
	for _, l := range locales {
		if l != drop {
			out = append(out, l)
		}
	}
	return out
}
