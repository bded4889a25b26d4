// Package testutil holds shared fixtures for tests outside the core engine.
package testutil

import (
	"testing"

	"github.com/comalice/turingx"
)

// UnaryGolden is the expected tape from the head origin after running the
// unary program on "11110111".
const UnaryGolden = "00111111"

// UnarySteps is the step count of the unary program run.
const UnarySteps = 10

// UnaryConfig returns the unary program: it moves the leading block of ones
// one cell right across the gap, then terminates.
func UnaryConfig() turingx.ProgramConfig {
	return turingx.ProgramConfig{
		ID:      "unary",
		Initial: "q1",
		States:  []string{"q1", "q2", "q3", "q4"},
		Tape:    "11110111",
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
}

// UnaryMachine compiles UnaryConfig, failing the test on error.
func UnaryMachine(tb testing.TB, opts ...turingx.Option) (*turingx.Machine, *turingx.Builder) {
	tb.Helper()
	m, b, err := turingx.Compile(UnaryConfig(), opts...)
	if err != nil {
		tb.Fatalf("compile unary: %v", err)
	}
	return m, b
}

// LoopConfig returns a program that walks right forever until it runs off
// the tape.
func LoopConfig() turingx.ProgramConfig {
	return turingx.ProgramConfig{
		ID:      "walk",
		Initial: "w",
		States:  []string{"w"},
		Rules: []turingx.RuleConfig{
			{State: "w", Read: 0, Write: 0, Move: "R", Next: "w"},
			{State: "w", Read: 1, Write: 1, Move: "R", Next: "w"},
		},
	}
}

// SpinConfig returns a program that never leaves its state or cell.
func SpinConfig() turingx.ProgramConfig {
	return turingx.ProgramConfig{
		ID:      "spin",
		Initial: "s",
		States:  []string{"s"},
		Rules: []turingx.RuleConfig{
			{State: "s", Read: 0, Write: 0, Move: "S", Next: "s"},
			{State: "s", Read: 1, Write: 1, Move: "S", Next: "s"},
		},
	}
}

// AssertCells fails the test unless n cells from origin read as want.
func AssertCells(tb testing.TB, m *turingx.Machine, origin int, want string) {
	tb.Helper()
	cells, err := m.Cells(origin, len(want))
	if err != nil {
		tb.Fatalf("Cells(%d, %d): %v", origin, len(want), err)
	}
	if got := turingx.FormatSymbols(cells); got != want {
		tb.Errorf("Cells(%d, %d) = %s, want %s", origin, len(want), got, want)
	}
}
