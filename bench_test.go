package pinwatch

import (
	"fmt"
	"testing"
)

func benchTags(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch i % 5 {
		case 0:
			out = append(out, fmt.Sprintf("%d.%d.%d", i/100, i/10%10, i%10))
		case 1:
			out = append(out, fmt.Sprintf("%d.%d.%d-rc%d", i/100, i/10%10, i%10, i%3))
		case 2:
			out = append(out, fmt.Sprintf("%d.%d.%db1", i/100, i/10%10, i%10))
		case 3:
			out = append(out, fmt.Sprintf("%d.%d-alpine3.%d", i/100, i/10%10, i%10))
		default:
			out = append(out, fmt.Sprintf("v%d.%d", i/100, i%10))
		}
	}

	return out
}

func BenchmarkCompareVersions(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = CompareVersions("1.10.3-alpha2", "1.10.3pl1")
	}
}

func BenchmarkLatest(b *testing.B) {
	for _, n := range []int{100, 1000, 10000} {
		tags := benchTags(n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Latest(tags, Options{})
			}
		})
	}
}
