// Package patterns contains a catalogue of seed patterns.
//
// The patterns are used to exercise the fractal construction, by the
// exporter and by the interactive editor.
package patterns

// All contains all patterns, grouped by category.
// The category name is used as a prefix in output filenames.
var All = map[string][]Case{
	"classic":    classicCases,
	"wave":       waveCases,
	"degenerate": degenerateCases,
}

// Lookup returns the case with the given category-prefixed name, such as
// "classic_seed".
func Lookup(name string) (Case, bool) {
	for category, cases := range All {
		for _, c := range cases {
			if category+"_"+c.Name == name {
				return c, true
			}
		}
	}
	return Case{}, false
}
