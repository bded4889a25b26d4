package primitives

import "fmt"

// RuleKey identifies a rule: at most one exists per (state, symbol) pair.
type RuleKey struct {
	State  ProgramState
	Symbol Symbol
}

func (k RuleKey) String() string {
	return fmt.Sprintf("(q%d, %s)", k.State, k.Symbol)
}

// TransitionRule maps (From, Read) to (To, Write, Move).
type TransitionRule struct {
	From  ProgramState
	Read  Symbol
	To    State
	Write Symbol
	Move  Direction
}

// NewRule mirrors the reading order of a rule table row.
func NewRule(from ProgramState, read Symbol, write Symbol, move Direction, to State) TransitionRule {
	return TransitionRule{From: from, Read: read, Write: write, Move: move, To: to}
}

// Key returns the lookup key of the rule.
func (r TransitionRule) Key() RuleKey {
	return RuleKey{State: r.From, Symbol: r.Read}
}

// Validate checks the symbols, direction and target kind. It does not check
// that From or To are defined; that needs the machine's state set.
func (r TransitionRule) Validate() error {
	if !r.Read.Valid() {
		return fmt.Errorf("%w: read %v: %w", ErrInvalidRule, r.Read, ErrInvalidSymbol)
	}
	if !r.Write.Valid() {
		return fmt.Errorf("%w: write %v: %w", ErrInvalidRule, r.Write, ErrInvalidSymbol)
	}
	if !r.Move.Valid() {
		return fmt.Errorf("%w: move %v: %w", ErrInvalidRule, r.Move, ErrInvalidDirection)
	}
	if !r.To.Target() {
		return fmt.Errorf("%w: target %v", ErrInvalidRule, r.To)
	}
	return nil
}

func (r TransitionRule) String() string {
	return fmt.Sprintf("%v -> (%s, %s, %v)", r.Key(), r.Write, r.Move, r.To)
}
