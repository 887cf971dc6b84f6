package fractal

import (
	"fmt"
	"testing"
)

func BenchmarkBuild(b *testing.B) {
	for _, depth := range []int{4, 6, 8} {
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				BuildDepth(seed, depth)
			}
		})
	}
}

// BenchmarkGrow measures one threshold batch step on a freshly built
// fractal, which is what the editor does once per frame.
func BenchmarkGrow(b *testing.B) {
	base := Build(seed)
	opt := DefaultGrowOptions()
	b.ReportAllocs()
	for b.Loop() {
		f := base.Clone()
		Grow(&f, seed, opt)
	}
}

func BenchmarkGrowLongestBurst(b *testing.B) {
	base := Build(seed)
	b.ReportAllocs()
	for b.Loop() {
		f := base.Clone()
		GrowLongestBurst(&f, seed, 100)
	}
}
