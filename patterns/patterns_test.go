package patterns

import (
	"maps"
	"regexp"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/fractal"
)

var validName = regexp.MustCompile(`^[a-z_]+$`)

func TestNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, c := range All[category] {
			name := category + "_" + c.Name
			if !validName.MatchString(name) {
				t.Errorf("invalid name %q", name)
			}
			if seen[name] {
				t.Errorf("duplicate name %q", name)
			}
			seen[name] = true

			got, ok := Lookup(name)
			if !ok || got.Name != c.Name {
				t.Errorf("Lookup(%q) failed", name)
			}
		}
	}
	if _, ok := Lookup("classic_nonexistent"); ok {
		t.Error("Lookup found a nonexistent case")
	}
}

func TestBuildAll(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, c := range All[category] {
			t.Run(category+"_"+c.Name, func(t *testing.T) {
				if len(c.Pattern) < 2 {
					t.Fatalf("pattern has %d points", len(c.Pattern))
				}
				f := c.Build()
				if f[0] != c.Pattern[0] || f[len(f)-1] != c.Pattern[len(c.Pattern)-1] {
					t.Error("anchors moved")
				}
				if len(f) < len(c.Pattern) {
					t.Errorf("fractal has %d points, pattern has %d", len(f), len(c.Pattern))
				}
			})
		}
	}
}

func TestDegenerate(t *testing.T) {
	for _, name := range []string{"degenerate_single_segment", "degenerate_closed_loop"} {
		c, ok := Lookup(name)
		if !ok {
			t.Fatalf("missing case %q", name)
		}
		if d := cmp.Diff(c.Pattern, c.Build()); d != "" {
			t.Errorf("%s: fractal differs from pattern:\n%s", name, d)
		}
	}
}

func TestSeed(t *testing.T) {
	f := fractal.Build(Seed())
	if len(f) != 4097 {
		t.Errorf("got %d points, want 4097", len(f))
	}

	// Seed returns a fresh copy each time
	a := Seed()
	a.Move(0, pt(0, 0))
	if Seed()[0] != pt(80, 600) {
		t.Error("Seed shares storage between calls")
	}
}
