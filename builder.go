package turingx

import (
	"errors"
	"fmt"

	"github.com/comalice/turingx/internal/primitives"
)

// Builder provides a fluent API for constructing programs using string state
// names instead of manual integer identifiers. IDs are assigned sequentially
// from 1 in first-mention order, so the same program text always produces the
// same IDs.
type Builder struct {
	id       string
	nextID   ProgramState
	nameToID map[string]ProgramState
	idToName map[ProgramState]string
	order    []ProgramState
	defined  map[ProgramState]bool
	initial  string
	rules    []*RuleBuilder
	tape     []Symbol
	errs     []error
}

// RuleBuilder configures one transition rule.
type RuleBuilder struct {
	b      *Builder
	from   string
	read   Symbol
	write  Symbol
	move   Direction
	target string // state name, or NextTerminate / NextHalt
}

// NewBuilder creates a builder for the program id.
func NewBuilder(id string) *Builder {
	return &Builder{
		id:       id,
		nextID:   1,
		nameToID: make(map[string]ProgramState),
		idToName: make(map[ProgramState]string),
		defined:  make(map[ProgramState]bool),
	}
}

// State defines a state by name and returns its ID.
func (b *Builder) State(name string) ProgramState {
	id := b.assignID(name)
	if !b.defined[id] {
		b.defined[id] = true
		b.order = append(b.order, id)
	}
	return id
}

// States defines several states at once.
func (b *Builder) States(names ...string) *Builder {
	for _, n := range names {
		b.State(n)
	}
	return b
}

// Initial sets the initial state by name.
func (b *Builder) Initial(name string) *Builder {
	b.initial = name
	return b
}

// Tape sets the symbols written at the head before the first run.
func (b *Builder) Tape(symbols ...Symbol) *Builder {
	b.tape = append([]Symbol(nil), symbols...)
	return b
}

// TapeString sets the seed tape from a string such as "11110111".
func (b *Builder) TapeString(s string) *Builder {
	symbols, err := primitives.ParseSymbols(s)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("tape: %w", err))
		return b
	}
	return b.Tape(symbols...)
}

// On starts a rule for (state, read). The written symbol defaults to read;
// the move has no default and must be set.
func (b *Builder) On(state string, read Symbol) *RuleBuilder {
	r := &RuleBuilder{b: b, from: state, read: read, write: read}
	b.rules = append(b.rules, r)
	return r
}

// Write sets the symbol written under the head.
func (r *RuleBuilder) Write(s Symbol) *RuleBuilder {
	r.write = s
	return r
}

// Move sets the head movement.
func (r *RuleBuilder) Move(d Direction) *RuleBuilder {
	r.move = d
	return r
}

// Goto finishes the rule with a transition to the named state.
func (r *RuleBuilder) Goto(name string) *Builder {
	r.target = name
	return r.b
}

// Terminate finishes the rule with the Termination outcome.
func (r *RuleBuilder) Terminate() *Builder {
	r.target = NextTerminate
	return r.b
}

// Halt finishes the rule with the Halt outcome.
func (r *RuleBuilder) Halt() *Builder {
	r.target = NextHalt
	return r.b
}

// ID returns the assigned ID for a state name.
func (b *Builder) ID(name string) (ProgramState, bool) {
	id, ok := b.nameToID[name]
	return id, ok
}

// Name returns the name for a given ID, or "q<id>" if the ID is unknown.
func (b *Builder) Name(id ProgramState) string {
	if name, ok := b.idToName[id]; ok {
		return name
	}
	return fmt.Sprintf("q%d", id)
}

// Names returns the ID to name mapping of defined states.
func (b *Builder) Names() map[ProgramState]string {
	out := make(map[ProgramState]string, len(b.order))
	for _, id := range b.order {
		out[id] = b.idToName[id]
	}
	return out
}

// assignID returns the existing ID for a name, or creates a new sequential ID.
func (b *Builder) assignID(name string) ProgramState {
	if id, exists := b.nameToID[name]; exists {
		return id
	}
	id := b.nextID
	b.nextID++
	b.nameToID[name] = id
	b.idToName[id] = name
	return id
}

// Rules resolves names and returns the rule list.
func (b *Builder) Rules() ([]TransitionRule, error) {
	out := make([]TransitionRule, 0, len(b.rules))
	for i, r := range b.rules {
		from, ok := b.nameToID[r.from]
		if !ok || !b.defined[from] {
			return nil, fmt.Errorf("rule %d: state %q: %w", i, r.from, ErrUndefinedState)
		}
		var to State
		switch r.target {
		case "":
			return nil, fmt.Errorf("rule %d (%s, %s): no target: %w", i, r.from, r.read, ErrInvalidRule)
		case NextTerminate:
			to = Termination()
		case NextHalt:
			to = Halt()
		default:
			id, ok := b.nameToID[r.target]
			if !ok || !b.defined[id] {
				return nil, fmt.Errorf("rule %d: target %q: %w", i, r.target, ErrUndefinedState)
			}
			to = Running(id)
		}
		out = append(out, NewRule(from, r.read, r.write, r.move, to))
	}
	return out, nil
}

// validate checks that the program is complete before building.
func (b *Builder) validate() error {
	if len(b.errs) > 0 {
		return errors.Join(b.errs...)
	}
	if b.initial == "" {
		return ErrNoInitialState
	}
	if id, ok := b.nameToID[b.initial]; !ok || !b.defined[id] {
		return fmt.Errorf("initial state %q: %w", b.initial, ErrUndefinedState)
	}
	for name := range b.nameToID {
		if primitives.IsReserved(name) {
			return fmt.Errorf("state name %q is reserved: %w", name, ErrInvalidConfig)
		}
	}
	return nil
}

// Build validates the program and constructs a Machine with the seed tape
// written at the head.
func (b *Builder) Build(opts ...Option) (*Machine, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	rules, err := b.Rules()
	if err != nil {
		return nil, err
	}

	m := New(opts...)
	m.DefineStates(b.order...)
	if err := m.DefineTransitionTable(rules); err != nil {
		return nil, err
	}
	if err := m.SetInitialState(b.nameToID[b.initial]); err != nil {
		return nil, err
	}
	if err := m.WriteTape(b.tape); err != nil {
		return nil, err
	}
	return m, nil
}

// Config exports the program as a ProgramConfig.
func (b *Builder) Config() ProgramConfig {
	cfg := ProgramConfig{
		ID:      b.id,
		Initial: b.initial,
		Tape:    primitives.FormatSymbols(b.tape),
	}
	for _, id := range b.order {
		cfg.States = append(cfg.States, b.idToName[id])
	}
	for _, r := range b.rules {
		cfg.Rules = append(cfg.Rules, RuleConfig{
			State: r.from,
			Read:  r.read.Int(),
			Write: r.write.Int(),
			Move:  r.move.String(),
			Next:  r.target,
		})
	}
	return cfg
}

// FromConfig validates cfg and loads it into a new Builder.
func FromConfig(cfg ProgramConfig) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := NewBuilder(cfg.ID).States(cfg.States...).Initial(cfg.Initial).TapeString(cfg.Tape)
	for _, rc := range cfg.Rules {
		read, write, err := rc.Symbols()
		if err != nil {
			return nil, err
		}
		move, err := primitives.ParseDirection(rc.Move)
		if err != nil {
			return nil, err
		}
		r := b.On(rc.State, read).Write(write).Move(move)
		r.target = rc.Next
	}
	return b, nil
}

// Compile validates cfg and builds a Machine from it.
func Compile(cfg ProgramConfig, opts ...Option) (*Machine, *Builder, error) {
	b, err := FromConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	m, err := b.Build(opts...)
	if err != nil {
		return nil, nil, err
	}
	return m, b, nil
}
