// ProgramConfig is the serialisable form of a Turing machine program:
// named states, an initial state, an optional seed tape and a flat rule list.
// Validation checks names, symbols, directions, references and rule uniqueness
// per (state, symbol) so a config that validates always compiles.

package primitives

import (
	"errors"
	"fmt"
)

// ProgramConfig defines a complete program.
type ProgramConfig struct {
	ID      string       `json:"id" yaml:"id"`
	Initial string       `json:"initial" yaml:"initial"`
	States  []string     `json:"states" yaml:"states"`
	Tape    string       `json:"tape,omitempty" yaml:"tape,omitempty"`
	Rules   []RuleConfig `json:"rules" yaml:"rules"`
}

// NewProgramConfig creates an empty program with the given ID and initial state.
func NewProgramConfig(id, initial string) *ProgramConfig {
	return &ProgramConfig{ID: id, Initial: initial}
}

// WithStates appends state names.
func (p *ProgramConfig) WithStates(names ...string) *ProgramConfig {
	p.States = append(p.States, names...)
	return p
}

// WithTape sets the seed tape, e.g. "11110111".
func (p *ProgramConfig) WithTape(tape string) *ProgramConfig {
	p.Tape = tape
	return p
}

// AddRule appends a rule.
func (p *ProgramConfig) AddRule(r RuleConfig) *ProgramConfig {
	p.Rules = append(p.Rules, r)
	return p
}

// TapeSymbols parses Tape.
func (p *ProgramConfig) TapeSymbols() ([]Symbol, error) {
	return ParseSymbols(p.Tape)
}

// Validate validates the entire program:
// - Non-empty ID and Initial
// - State names are well formed, unique and not reserved
// - Initial exists in States
// - Every rule validates and references defined states
// - At most one rule per (state, read) pair
// - Tape parses as symbols
func (p *ProgramConfig) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: program ID is required", ErrInvalidConfig)
	}
	if p.Initial == "" {
		return fmt.Errorf("%w: initial state is required", ErrInvalidConfig)
	}
	if len(p.States) == 0 {
		return fmt.Errorf("%w: states list is required and cannot be empty", ErrInvalidConfig)
	}

	defined := make(map[string]bool, len(p.States))
	for i, name := range p.States {
		if err := validateName(name); err != nil {
			return fmt.Errorf("%w: state %d: %w", ErrInvalidConfig, i, err)
		}
		if IsReserved(name) {
			return fmt.Errorf("%w: state name %q is reserved", ErrInvalidConfig, name)
		}
		if defined[name] {
			return fmt.Errorf("%w: state %q listed twice", ErrInvalidConfig, name)
		}
		defined[name] = true
	}
	if !defined[p.Initial] {
		return fmt.Errorf("%w: initial state %q: %w", ErrInvalidConfig, p.Initial, ErrUndefinedState)
	}

	type key struct {
		state string
		read  int
	}
	seen := make(map[key]int, len(p.Rules))
	for i, r := range p.Rules {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("%w: rule %d: %w", ErrInvalidConfig, i, err)
		}
		if !defined[r.State] {
			return fmt.Errorf("%w: rule %d: state %q: %w", ErrInvalidConfig, i, r.State, ErrUndefinedState)
		}
		if !IsReserved(r.Next) && !defined[r.Next] {
			return fmt.Errorf("%w: rule %d: next %q: %w", ErrInvalidConfig, i, r.Next, ErrUndefinedState)
		}
		k := key{r.State, r.Read}
		if prev, ok := seen[k]; ok {
			return fmt.Errorf("%w: rule %d repeats (%s, %d) from rule %d: %w", ErrInvalidConfig, i, r.State, r.Read, prev, ErrDuplicateRule)
		}
		seen[k] = i
	}

	if _, err := p.TapeSymbols(); err != nil {
		return fmt.Errorf("%w: tape: %w", ErrInvalidConfig, err)
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return errors.New("empty name")
	}
	// Basic ID validation: alphanumeric + underscores/hyphens
	for i, r := range name {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return fmt.Errorf("invalid name %q: invalid character '%c' at index %d", name, r, i)
		}
	}
	return nil
}
