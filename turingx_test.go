package turingx_test

import (
	"errors"
	"testing"

	. "github.com/comalice/turingx"
)

const (
	q1 ProgramState = iota + 1
	q2
	q3
	q4
)

// unaryMachine is the four state successor-style golden program.
func unaryMachine(t *testing.T, opts ...Option) *Machine {
	t.Helper()
	m := New(opts...)
	m.DefineStates(q1, q2, q3, q4)
	err := m.DefineTransitionTable([]TransitionRule{
		NewRule(q1, Zero, Zero, Stay, Termination()),
		NewRule(q1, One, Zero, Right, Running(q2)),
		NewRule(q2, Zero, One, Left, Running(q3)),
		NewRule(q2, One, One, Right, Running(q2)),
		NewRule(q3, Zero, Zero, Right, Running(q4)),
		NewRule(q3, One, One, Left, Running(q3)),
		NewRule(q4, Zero, Zero, Stay, Halt()),
		NewRule(q4, One, Zero, Right, Termination()),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetInitialState(q1); err != nil {
		t.Fatal(err)
	}
	tape, err := SymbolsFromInts([]int{1, 1, 1, 1, 0, 1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if err := m.WriteTape(tape); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestUnaryProgramGolden(t *testing.T) {
	m := unaryMachine(t)
	origin := m.Head()

	status, err := m.Run()
	if err != nil {
		t.Fatal(err)
	}
	if status.Kind != KindTermination {
		t.Fatalf("status = %v, want termination", status)
	}

	cells, err := m.Cells(origin-1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := FormatSymbols(cells), "0001111110"; got != want {
		t.Errorf("tape around origin = %s, want %s", got, want)
	}
	if got := m.Head() - origin; got != 2 {
		t.Errorf("head offset = %d, want 2", got)
	}
	if m.Steps() != 10 {
		t.Errorf("steps = %d, want 10", m.Steps())
	}
}

func TestEmptyTableHalts(t *testing.T) {
	m := New()
	m.DefineStates(1)
	if err := m.SetInitialState(1); err != nil {
		t.Fatal(err)
	}
	status, err := m.Run()
	if err != nil {
		t.Fatal(err)
	}
	if status != Halt() {
		t.Errorf("status = %v, want halt", status)
	}
}

func TestRunBeforeInitialState(t *testing.T) {
	m := New()
	m.DefineStates(1)
	if err := m.WriteTape([]Symbol{One, One}); err != nil {
		t.Fatal(err)
	}
	before := m.Words()

	if _, err := m.Run(); !errors.Is(err, ErrNoInitialState) {
		t.Fatalf("err = %v, want ErrNoInitialState", err)
	}
	after := m.Words()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("tape mutated")
		}
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	var final []string
	var statuses []State
	for i := 0; i < 3; i++ {
		m := unaryMachine(t)
		s, err := m.Run()
		if err != nil {
			t.Fatal(err)
		}
		cells, err := m.Cells(0, m.Capacity())
		if err != nil {
			t.Fatal(err)
		}
		final = append(final, FormatSymbols(cells))
		statuses = append(statuses, s)
	}
	for i := 1; i < len(final); i++ {
		if final[i] != final[0] || statuses[i] != statuses[0] {
			t.Fatalf("run %d diverged", i)
		}
	}
}

func TestTapeCapacityIsFixed(t *testing.T) {
	m := New(WithTapeWords(4))
	if m.Capacity() != 4*WordBits {
		t.Fatalf("Capacity() = %d", m.Capacity())
	}
	if err := m.WriteTape(make([]Symbol, m.Capacity())); !errors.Is(err, ErrCapacity) {
		t.Errorf("err = %v, want ErrCapacity", err)
	}
	if _, err := m.Symbol(m.Capacity()); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

func TestSymbolConversion(t *testing.T) {
	for v := 0; v <= 1; v++ {
		s, err := SymbolFromInt(v)
		if err != nil || s.Int() != v {
			t.Errorf("SymbolFromInt(%d) = %v, %v", v, s, err)
		}
	}
	if _, err := SymbolFromInt(2); !errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("err = %v", err)
	}
}
