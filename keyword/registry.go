package keyword

import (
	"sort"
	"strings"
)

// Registry resolves field aliases to canonical keywords.
//
// A Registry is immutable after construction, so concurrent lookups
// need no locking. The process-wide default is built once at package
// load; alternate tables can be constructed for tests or loaded from
// TOML configuration.
type Registry struct {
	byAlias map[string]Keyword
	aliases []string // lowercased, sorted longest-first for prefix matching
}

// NewRegistry builds a registry from canonical-name -> aliases tables.
// Alias lookup is case-insensitive. Later tables win on alias collisions,
// so nested operators shadow plain fields of the same name.
func NewRegistry(fields, dateFields, nested map[string][]string) *Registry {
	r := &Registry{byAlias: make(map[string]Keyword)}

	add := func(table map[string][]string, date, isNested bool) {
		for canonical, aliases := range table {
			kw := Keyword{Name: canonical, Date: date, Nested: isNested}
			for _, alias := range aliases {
				r.byAlias[strings.ToLower(alias)] = kw
			}
		}
	}
	add(fields, false, false)
	add(dateFields, true, false)
	add(nested, false, true)

	r.aliases = make([]string, 0, len(r.byAlias))
	for alias := range r.byAlias {
		r.aliases = append(r.aliases, alias)
	}
	// Longest-first so prefix matching prefers "date-added" over "date"
	// and "citedbyexcludingselfcites" over "citedby". Ties break
	// lexicographically to keep iteration deterministic.
	sort.Slice(r.aliases, func(i, j int) bool {
		if len(r.aliases[i]) != len(r.aliases[j]) {
			return len(r.aliases[i]) > len(r.aliases[j])
		}
		return r.aliases[i] < r.aliases[j]
	})

	return r
}

var defaultRegistry = NewRegistry(defaultFields, defaultDateFields, defaultNested)

// Default returns the process-wide registry with the INSPIRE tables.
func Default() *Registry {
	return defaultRegistry
}

// Resolve maps an alias to its canonical keyword. Input is trimmed and
// matched case-insensitively. A miss is not an error: the second return
// is false and callers decide whether the term demotes to free text.
func (r *Registry) Resolve(alias string) (Keyword, bool) {
	kw, ok := r.byAlias[strings.ToLower(strings.TrimSpace(alias))]
	return kw, ok
}

// MatchPrefix finds the longest registered alias that is a
// case-insensitive prefix of text. It performs no boundary checking;
// the grammar decides whether what follows the alias (colon, space,
// word boundary) actually makes it a field qualifier.
func (r *Registry) MatchPrefix(text string) (alias string, kw Keyword, ok bool) {
	lower := strings.ToLower(text)
	for _, a := range r.aliases {
		if strings.HasPrefix(lower, a) {
			return text[:len(a)], r.byAlias[a], true
		}
	}
	return "", Keyword{}, false
}

// Aliases returns all registered aliases sorted lexicographically.
func (r *Registry) Aliases() []string {
	out := make([]string, len(r.aliases))
	copy(out, r.aliases)
	sort.Strings(out)
	return out
}

// Canonical returns all canonical field names sorted lexicographically.
func (r *Registry) Canonical() []string {
	seen := make(map[string]struct{})
	for _, kw := range r.byAlias {
		seen[kw.Name] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
