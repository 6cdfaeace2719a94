package components

import (
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// SelectOption is one entry of a <select> rendered by the form.
type SelectOption struct {
	Value string
	Label string
}

// OptionsFrom labels tags by capitalizing them: "rounded" -> "Rounded".
func OptionsFrom(tags []string) []SelectOption {
	out := make([]SelectOption, 0, len(tags))
	for _, t := range tags {
		label := t
		if t != "" {
			label = strings.ToUpper(t[:1]) + t[1:]
		}
		out = append(out, SelectOption{Value: t, Label: label})
	}
	return out
}

const (
	inputBase  = "block w-full rounded-md border border-gray-300 px-3 py-2 text-sm"
	buttonBase = "inline-flex items-center rounded-md bg-gray-900 px-4 py-2 text-sm font-medium text-white"
)

// InputClass merges extra utility classes over the input defaults; later
// classes win on conflict.
func InputClass(extra ...string) string {
	return twmerge.Merge(append([]string{inputBase}, extra...)...)
}

// ButtonClass does the same for buttons.
func ButtonClass(extra ...string) string {
	return twmerge.Merge(append([]string{buttonBase}, extra...)...)
}
