package render

import "sort"

// table maps a request tag to a strategy. Unknown or empty tags resolve to
// the fallback entry, which must exist in entries.
type table[T any] struct {
	entries  map[string]T
	fallback string
}

func (t table[T]) lookup(tag string) T {
	_, v := t.resolve(tag)
	return v
}

// resolve returns the tag actually used along with its entry.
func (t table[T]) resolve(tag string) (string, T) {
	if v, ok := t.entries[tag]; ok {
		return tag, v
	}
	return t.fallback, t.entries[t.fallback]
}

// tags lists the known tags, fallback first, the rest sorted.
func (t table[T]) tags() []string {
	out := make([]string, 0, len(t.entries))
	for tag := range t.entries {
		if tag != t.fallback {
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return append([]string{t.fallback}, out...)
}
