// Package core provides the runtime core tier of the Turing machine engine:
// program definition (states, transition table, initial state), the head,
// the bit tape and the run loop.
// Dependencies: internal/primitives, internal/tape.
// Stdlib-only implementation.
//
// A Machine is a plain owned value. It is not safe for concurrent use and
// is mutated in place by Run; use Reset between runs.
package core

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/comalice/turingx/internal/primitives"
	"github.com/comalice/turingx/internal/tape"
)

// ErrNotStarted is returned by Step before Start.
var ErrNotStarted = errors.New("machine not started")

// StepEvent describes one step of a run. Step numbers events from 1.
// Matched is false for the implicit halt, in which case only Step, From,
// Head, Read and Next are set; that event is numbered after the last applied
// rule but is not counted by Machine.Steps.
type StepEvent struct {
	Step    uint64
	From    primitives.ProgramState
	Head    int
	Read    primitives.Symbol
	Matched bool
	Write   primitives.Symbol
	Move    primitives.Direction
	NewHead int
	Next    primitives.State
}

// Observer is notified synchronously after every step.
type Observer interface {
	OnStep(ev StepEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev StepEvent)

func (f ObserverFunc) OnStep(ev StepEvent) { f(ev) }

// Option applies configuration to Machine via functional options pattern.
type Option func(*Machine)

// Machine aggregates the tape, head, defined states, transition table and
// optional initial state.
type Machine struct {
	tape       *tape.Tape
	tapeWords  int
	head       int
	states     map[primitives.ProgramState]struct{}
	table      *TransitionTable
	initial    primitives.ProgramState
	hasInitial bool
	status     primitives.State
	steps      uint64
	logger     *slog.Logger
	observers  []Observer
}

// NewMachine creates an empty machine: zero tape, no states, no rules,
// no initial state. The head starts at the tape midpoint.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		tapeWords: DefaultTapeWords,
		states:    make(map[primitives.ProgramState]struct{}),
		table:     NewTransitionTable(),
		logger:    slog.New(slog.DiscardHandler),
	}

	// Apply functional options
	for _, opt := range opts {
		opt(m)
	}

	m.tape = tape.New(m.tapeWords)
	m.head = m.tape.Capacity() / 2
	return m
}

// DefineStates registers states by identifier. Re-registering is a no-op.
func (m *Machine) DefineStates(ids ...primitives.ProgramState) {
	for _, id := range ids {
		m.states[id] = struct{}{}
	}
}

// Defined reports whether id was registered.
func (m *Machine) Defined(id primitives.ProgramState) bool {
	_, ok := m.states[id]
	return ok
}

// States returns the registered states in ascending order.
func (m *Machine) States() []primitives.ProgramState {
	out := make([]primitives.ProgramState, 0, len(m.states))
	for id := range m.states {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SetInitialState records the state a run starts from.
func (m *Machine) SetInitialState(id primitives.ProgramState) error {
	if !m.Defined(id) {
		return fmt.Errorf("initial state q%d: %w", id, primitives.ErrUndefinedState)
	}
	m.initial = id
	m.hasInitial = true
	return nil
}

// Initial returns the initial state and whether one was set.
func (m *Machine) Initial() (primitives.ProgramState, bool) {
	return m.initial, m.hasInitial
}

// DefineTransitionTable validates the whole batch, then installs it.
// On error the table is left exactly as it was.
// A rule may not reuse the (state, symbol) key of another rule in the batch
// or of an already installed rule.
func (m *Machine) DefineTransitionTable(rules []primitives.TransitionRule) error {
	if err := m.validateRules(rules); err != nil {
		return err
	}
	for _, r := range rules {
		m.table.insert(r)
	}
	m.logger.Info("transition table defined", "added", len(rules), "total", m.table.Len())
	return nil
}

func (m *Machine) validateRules(rules []primitives.TransitionRule) error {
	batch := make(map[primitives.RuleKey]int, len(rules))
	for i, r := range rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("rule %d %v: %w", i, r.Key(), err)
		}
		if !m.Defined(r.From) {
			return fmt.Errorf("rule %d: from state q%d: %w", i, r.From, primitives.ErrUndefinedState)
		}
		key := r.Key()
		if prev, ok := batch[key]; ok {
			return fmt.Errorf("rule %d repeats %v from rule %d: %w", i, key, prev, primitives.ErrDuplicateRule)
		}
		if m.table.Has(key) {
			return fmt.Errorf("rule %d: %v already installed: %w", i, key, primitives.ErrDuplicateRule)
		}
		batch[key] = i
	}
	return nil
}

// Rule returns the rule for (id, symbol).
func (m *Machine) Rule(id primitives.ProgramState, symbol primitives.Symbol) (primitives.TransitionRule, bool) {
	return m.table.Lookup(id, symbol)
}

// Rules returns all installed rules ordered by state then symbol.
func (m *Machine) Rules() []primitives.TransitionRule {
	return m.table.Rules()
}

// WriteTape seeds symbols starting at the current head position.
func (m *Machine) WriteTape(symbols []primitives.Symbol) error {
	return m.WriteTapeAt(m.head, symbols)
}

// WriteTapeAt seeds symbols starting at origin. Nothing is written when the
// sequence does not fit in the remaining capacity.
func (m *Machine) WriteTapeAt(origin int, symbols []primitives.Symbol) error {
	if err := m.tape.Write(origin, symbols); err != nil {
		return fmt.Errorf("write tape: %w", err)
	}
	return nil
}

// Head returns the head position.
func (m *Machine) Head() int {
	return m.head
}

// Capacity returns the tape capacity in cells.
func (m *Machine) Capacity() int {
	return m.tape.Capacity()
}

// Symbol returns the symbol at cell i.
func (m *Machine) Symbol(i int) (primitives.Symbol, error) {
	return m.tape.Get(i)
}

// Cells returns n cells starting at origin.
func (m *Machine) Cells(origin, n int) ([]primitives.Symbol, error) {
	return m.tape.Read(origin, n)
}

// Words returns a copy of the packed tape words, cell 0 in the top bit of word 0.
func (m *Machine) Words() []uint {
	return m.tape.Words()
}

// Bounds returns the first and last One cells, or -1, -1 on a blank tape.
func (m *Machine) Bounds() (first, last int) {
	return m.tape.FirstSet(), m.tape.LastSet()
}

// Ones returns the number of One cells on the tape.
func (m *Machine) Ones() int {
	return m.tape.PopCount()
}

// Status returns the current machine status.
func (m *Machine) Status() primitives.State {
	return m.status
}

// Steps returns the number of rules applied since Start.
func (m *Machine) Steps() uint64 {
	return m.steps
}

// Reset clears the tape, re-centres the head and forgets the run status.
// States, rules and the initial state are kept.
func (m *Machine) Reset() {
	m.tape.Clear()
	m.head = m.tape.Capacity() / 2
	m.status = primitives.State{}
	m.steps = 0
}
