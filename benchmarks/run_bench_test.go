package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/realtime"
)

func fmtCells(n int) string { return fmt.Sprintf("cells=%d", n) }

// BenchmarkStep measures single-step throughput over programs of growing
// state count.
func BenchmarkStep(b *testing.B) {
	for _, n := range []int{1, 16, 256} {
		b.Run(fmt.Sprintf("states=%d", n), func(b *testing.B) {
			m := MustCompile(GenCycleConfig(n))
			if err := m.Start(); err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := m.Step(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkShiftRun runs the unary shift program to termination.
func BenchmarkShiftRun(b *testing.B) {
	for _, ones := range []int{4, 64, 512} {
		b.Run(fmt.Sprintf("ones=%d", ones), func(b *testing.B) {
			cfg, words := GenShiftConfig(ones)
			m := MustCompile(cfg, turingx.WithTapeWords(words))
			seed, err := cfg.TapeSymbols()
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Reset()
				if err := m.WriteTape(seed); err != nil {
					b.Fatal(err)
				}
				status, err := m.Run()
				if err != nil {
					b.Fatal(err)
				}
				if status != turingx.Termination() {
					b.Fatalf("status = %v", status)
				}
			}
			b.ReportMetric(float64(m.Steps()), "steps/run")
		})
	}
}

// BenchmarkRunnerBudget measures the overhead of the bounded runner.
func BenchmarkRunnerBudget(b *testing.B) {
	const budget = 10_000
	m := MustCompile(GenCycleConfig(4))
	r := realtime.NewRunner(m, realtime.Config{MaxSteps: budget})
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.Run(ctx); err == nil {
			b.Fatal("expected step limit")
		}
	}
	b.ReportMetric(budget, "steps/op")
}
