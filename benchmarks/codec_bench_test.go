package benchmarks

import (
	"testing"

	"github.com/comalice/turingx/internal/production"
)

func BenchmarkDecodeProgram(b *testing.B) {
	cfg := GenCycleConfig(32)
	for _, format := range []production.Format{production.FormatJSON, production.FormatYAML} {
		data := MustEncode(cfg, format)
		b.Run(string(format), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := production.DecodeProgram(data, format, "bench"); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCompile(b *testing.B) {
	cfg := GenCycleConfig(128)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		MustCompile(cfg)
	}
}
