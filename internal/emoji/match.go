package emoji

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Search returns catalog entries matching query. Substring hits on the
// name or a keyword come first, in catalog order; fuzzy name matches
// follow. An empty query returns the whole catalog.
func Search(query string) []Emoji {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Catalog
	}

	var out []Emoji
	seen := make(map[string]bool)
	for _, e := range Catalog {
		if matches(e, q) {
			out = append(out, e)
			seen[e.Char] = true
		}
	}

	for _, m := range fuzzy.FindFrom(q, names(Catalog)) {
		e := Catalog[m.Index]
		if !seen[e.Char] {
			out = append(out, e)
			seen[e.Char] = true
		}
	}
	return out
}

// ByGroup returns the catalog entries of one group.
func ByGroup(group string) []Emoji {
	var out []Emoji
	for _, e := range Catalog {
		if e.Group == group {
			out = append(out, e)
		}
	}
	return out
}

func matches(e Emoji, q string) bool {
	if strings.Contains(e.Name, q) {
		return true
	}
	for _, k := range e.Keywords {
		if strings.HasPrefix(k, q) {
			return true
		}
	}
	return false
}

type names []Emoji

func (n names) String(i int) string { return n[i].Name }
func (n names) Len() int            { return len(n) }
