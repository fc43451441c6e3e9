package benchmark

import (
	"strings"
	"testing"

	"github.com/vnykmshr/goseq/pkg/query/hash"
)

// BenchmarkHashPut measures insertion under the map-backed strategy.
func BenchmarkHashPut(b *testing.B) {
	sizes := []int{100, 1000, 10000}

	for _, size := range sizes {
		b.Run(sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				h := hash.New[int, int]()
				for k := 0; k < size; k++ {
					h.Put(k, k, false)
				}
			}
		})
	}
}

// BenchmarkHashGet measures lookup under the map-backed strategy.
func BenchmarkHashGet(b *testing.B) {
	h := hash.New[int, int]()
	for k := 0; k < 10000; k++ {
		h.Put(k, k, false)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Get(i % 10000)
	}
}

// BenchmarkHashFuncGet measures the linear-scan cost of custom equality.
func BenchmarkHashFuncGet(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		h := hash.NewFunc[string, int](strings.EqualFold)
		for k := 0; k < size; k++ {
			h.Put(strings.Repeat("k", k%32)+string(rune('a'+k%26)), k, false)
		}

		b.Run(sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = h.Get("kkkA")
			}
		})
	}
}
