// Package turingx simulates a single-tape, single-head binary Turing machine.
//
// A Machine holds a fixed-capacity bit-packed tape, a head that starts at the
// tape midpoint, a set of program states and a transition table keyed by
// (state, symbol). Run steps the machine until it reaches Termination (declared
// by the program), Halt (no rule for the current state and symbol) or an
// invalid state (a rule targets a state that was never defined).
//
// Programs are defined either directly on a Machine, through the name-based
// Builder, or from a ProgramConfig loaded from JSON, YAML or CUE.
package turingx

import (
	"github.com/comalice/turingx/internal/core"
	"github.com/comalice/turingx/internal/primitives"
	"github.com/comalice/turingx/internal/tape"
)

type (
	Symbol         = primitives.Symbol
	Direction      = primitives.Direction
	ProgramState   = primitives.ProgramState
	State          = primitives.State
	StateKind      = primitives.StateKind
	TransitionRule = primitives.TransitionRule
	RuleKey        = primitives.RuleKey
	ProgramConfig  = primitives.ProgramConfig
	RuleConfig     = primitives.RuleConfig

	Machine      = core.Machine
	Option       = core.Option
	StepEvent    = core.StepEvent
	Observer     = core.Observer
	ObserverFunc = core.ObserverFunc
)

const (
	Zero = primitives.Zero
	One  = primitives.One

	Left  = primitives.Left
	Right = primitives.Right
	Stay  = primitives.Stay

	KindRunning     = primitives.KindRunning
	KindTermination = primitives.KindTermination
	KindHalt        = primitives.KindHalt
	KindInvalid     = primitives.KindInvalid

	NextTerminate = primitives.NextTerminate
	NextHalt      = primitives.NextHalt

	// WordBits is the number of cells packed into one tape word.
	WordBits = tape.WordBits
	// DefaultTapeWords is the tape size used when WithTapeWords is not given.
	DefaultTapeWords = core.DefaultTapeWords
)

var (
	ErrInvalidSymbol    = primitives.ErrInvalidSymbol
	ErrInvalidDirection = primitives.ErrInvalidDirection
	ErrUndefinedState   = primitives.ErrUndefinedState
	ErrDuplicateRule    = primitives.ErrDuplicateRule
	ErrInvalidRule      = primitives.ErrInvalidRule
	ErrNoInitialState   = primitives.ErrNoInitialState
	ErrInvalidConfig    = primitives.ErrInvalidConfig
	ErrOutOfBounds      = primitives.ErrOutOfBounds
	ErrCapacity         = primitives.ErrCapacity
	ErrNotStarted       = core.ErrNotStarted
)

// New constructs an empty machine with a fixed tape capacity.
func New(opts ...Option) *Machine {
	return core.NewMachine(opts...)
}

var (
	WithTapeWords = core.WithTapeWords
	WithLogger    = core.WithLogger
	WithObserver  = core.WithObserver
)

func Running(id ProgramState) State { return primitives.Running(id) }
func Termination() State            { return primitives.Termination() }
func Halt() State                   { return primitives.Halt() }

// NewRule builds a rule in table order: (from, read) -> (write, move, to).
func NewRule(from ProgramState, read, write Symbol, move Direction, to State) TransitionRule {
	return primitives.NewRule(from, read, write, move, to)
}

var (
	SymbolFromInt   = primitives.SymbolFromInt
	SymbolsFromInts = primitives.SymbolsFromInts
	ParseSymbols    = primitives.ParseSymbols
	FormatSymbols   = primitives.FormatSymbols
	ParseDirection  = primitives.ParseDirection
)
