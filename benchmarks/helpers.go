// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"strings"

	"github.com/comalice/turingx"
	"github.com/comalice/turingx/internal/production"
)

// GenCycleConfig creates n states s0..s(n-1) that flip the cell under the
// head and pass control to the next state. It never terminates.
func GenCycleConfig(n int) turingx.ProgramConfig {
	if n < 1 {
		n = 1
	}
	cfg := turingx.ProgramConfig{
		ID:      fmt.Sprintf("cycle_%d", n),
		Initial: "s0",
	}
	for i := 0; i < n; i++ {
		cfg.States = append(cfg.States, fmt.Sprintf("s%d", i))
	}
	for i := 0; i < n; i++ {
		from, to := fmt.Sprintf("s%d", i), fmt.Sprintf("s%d", (i+1)%n)
		cfg.Rules = append(cfg.Rules,
			turingx.RuleConfig{State: from, Read: 0, Write: 1, Move: "S", Next: to},
			turingx.RuleConfig{State: from, Read: 1, Write: 0, Move: "S", Next: to},
		)
	}
	return cfg
}

// GenShiftConfig creates the unary shift program over a block of ones ones,
// a gap and a second block of ones. It returns the config and the number of
// tape words needed to hold it to the right of the head.
func GenShiftConfig(ones int) (turingx.ProgramConfig, int) {
	if ones < 1 {
		ones = 1
	}
	cfg := turingx.ProgramConfig{
		ID:      fmt.Sprintf("shift_%d", ones),
		Initial: "q1",
		States:  []string{"q1", "q2", "q3", "q4"},
		Tape:    strings.Repeat("1", ones) + "0" + strings.Repeat("1", ones),
		Rules: []turingx.RuleConfig{
			{State: "q1", Read: 0, Write: 0, Move: "S", Next: turingx.NextTerminate},
			{State: "q1", Read: 1, Write: 0, Move: "R", Next: "q2"},
			{State: "q2", Read: 0, Write: 1, Move: "L", Next: "q3"},
			{State: "q2", Read: 1, Write: 1, Move: "R", Next: "q2"},
			{State: "q3", Read: 0, Write: 0, Move: "R", Next: "q4"},
			{State: "q3", Read: 1, Write: 1, Move: "L", Next: "q3"},
			{State: "q4", Read: 0, Write: 0, Move: "S", Next: turingx.NextHalt},
			{State: "q4", Read: 1, Write: 0, Move: "R", Next: turingx.NextTerminate},
		},
	}
	// The head sits at the midpoint, so twice the content fits on the right.
	words := 2 * ((len(cfg.Tape) + 1 + turingx.WordBits - 1) / turingx.WordBits)
	return cfg, max(words, turingx.DefaultTapeWords)
}

// MustCompile compiles cfg or panics.
func MustCompile(cfg turingx.ProgramConfig, opts ...turingx.Option) *turingx.Machine {
	m, _, err := turingx.Compile(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// MustEncode encodes cfg in the given format or panics.
func MustEncode(cfg turingx.ProgramConfig, format production.Format) []byte {
	data, err := production.EncodeProgram(cfg, format)
	if err != nil {
		panic(err)
	}
	return data
}
