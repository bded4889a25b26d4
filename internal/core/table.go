package core

import (
	"sort"

	"github.com/comalice/turingx/internal/primitives"
)

// ruleRow holds the rules of one state, indexed by the symbol read.
type ruleRow [2]*primitives.TransitionRule

// TransitionTable maps (state, symbol) to at most one rule.
// Lookup is two O(1) steps: a map hit on the state then an array index on the symbol.
type TransitionTable struct {
	rows  map[primitives.ProgramState]*ruleRow
	count int
}

// NewTransitionTable creates an empty table.
func NewTransitionTable() *TransitionTable {
	return &TransitionTable{rows: make(map[primitives.ProgramState]*ruleRow)}
}

// Lookup returns the rule for (state, symbol).
func (t *TransitionTable) Lookup(state primitives.ProgramState, symbol primitives.Symbol) (primitives.TransitionRule, bool) {
	row, ok := t.rows[state]
	if !ok || !symbol.Valid() || row[symbol] == nil {
		return primitives.TransitionRule{}, false
	}
	return *row[symbol], true
}

// Has reports whether a rule exists for key.
func (t *TransitionTable) Has(key primitives.RuleKey) bool {
	_, ok := t.Lookup(key.State, key.Symbol)
	return ok
}

// insert stores r without checks. Callers validate first.
func (t *TransitionTable) insert(r primitives.TransitionRule) {
	row, ok := t.rows[r.From]
	if !ok {
		row = &ruleRow{}
		t.rows[r.From] = row
	}
	if row[r.Read] == nil {
		t.count++
	}
	rule := r
	row[r.Read] = &rule
}

// Len returns the number of rules.
func (t *TransitionTable) Len() int {
	return t.count
}

// Rules returns every rule ordered by state then symbol.
func (t *TransitionTable) Rules() []primitives.TransitionRule {
	states := make([]primitives.ProgramState, 0, len(t.rows))
	for s := range t.rows {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	out := make([]primitives.TransitionRule, 0, t.count)
	for _, s := range states {
		for _, r := range t.rows[s] {
			if r != nil {
				out = append(out, *r)
			}
		}
	}
	return out
}
