package core

import (
	"fmt"

	"github.com/comalice/turingx/internal/primitives"
)

// Start sets the status to Running(initial). It fails before touching
// anything when no initial state was set.
func (m *Machine) Start() error {
	if !m.hasInitial {
		return primitives.ErrNoInitialState
	}
	m.status = primitives.Running(m.initial)
	m.steps = 0
	m.logger.Info("run started", "initial", m.status, "head", m.head, "capacity", m.tape.Capacity())
	return nil
}

// Step performs one read, lookup, write, move and transition.
//
// No rule for (state, symbol) ends the run with Halt. A rule whose target is a
// Running state that was never defined ends it with Invalid(id). A move that
// would leave the tape fails with ErrOutOfBounds before the write, leaving
// tape, head and status unchanged.
//
// Step on a terminal machine returns the terminal status again.
func (m *Machine) Step() (primitives.State, error) {
	switch m.status.Kind {
	case primitives.KindNone:
		return m.status, ErrNotStarted
	case primitives.KindRunning:
	default:
		return m.status, nil
	}

	from := m.status.ID
	read, err := m.tape.Get(m.head)
	if err != nil {
		return m.status, fmt.Errorf("q%d: read head: %w", from, err)
	}

	rule, ok := m.table.Lookup(from, read)
	if !ok {
		m.status = primitives.Halt()
		m.notify(StepEvent{Step: m.steps + 1, From: from, Head: m.head, Read: read, NewHead: m.head, Next: m.status})
		return m.status, nil
	}

	newHead := m.head + rule.Move.Offset()
	if newHead < 0 || newHead >= m.tape.Capacity() {
		return m.status, fmt.Errorf("q%d: move %v from %d to %d, capacity %d: %w",
			from, rule.Move, m.head, newHead, m.tape.Capacity(), primitives.ErrOutOfBounds)
	}
	if err := m.tape.Set(m.head, rule.Write); err != nil {
		return m.status, fmt.Errorf("q%d: write head: %w", from, err)
	}

	next := rule.To
	if next.IsRunning() && !m.Defined(next.ID) {
		next = primitives.Invalid(next.ID)
	}

	ev := StepEvent{
		Step:    m.steps + 1,
		From:    from,
		Head:    m.head,
		Read:    read,
		Matched: true,
		Write:   rule.Write,
		Move:    rule.Move,
		NewHead: newHead,
		Next:    next,
	}
	m.head = newHead
	m.steps++
	m.status = next
	m.notify(ev)
	return m.status, nil
}

// Run starts the machine and steps until Termination, Halt or Invalid.
// There is no step limit; see the realtime package for a bounded runner.
func (m *Machine) Run() (primitives.State, error) {
	if err := m.Start(); err != nil {
		return m.status, err
	}
	for m.status.IsRunning() {
		if _, err := m.Step(); err != nil {
			m.logger.Error("run failed", "state", m.status, "head", m.head, "steps", m.steps, "error", err)
			return m.status, err
		}
	}
	m.logger.Info("run finished", "status", m.status, "head", m.head, "steps", m.steps)
	return m.status, nil
}

func (m *Machine) notify(ev StepEvent) {
	m.logger.Debug("step",
		"n", ev.Step,
		"state", fmt.Sprintf("q%d", ev.From),
		"head", ev.Head,
		"read", ev.Read,
		"write", ev.Write,
		"move", ev.Move,
		"next", ev.Next,
	)
	for _, o := range m.observers {
		o.OnStep(ev)
	}
}
