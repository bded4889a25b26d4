package primitives

import "fmt"

// ProgramState is an opaque caller-assigned state identifier.
type ProgramState uint32

// StateKind discriminates the State union.
type StateKind uint8

const (
	// KindNone is the zero value: the machine has not been started.
	KindNone StateKind = iota
	KindRunning
	KindTermination
	KindHalt
	// KindInvalid reports a transition into a state that was never defined.
	// It is produced by the engine only and is not a legal rule target.
	KindInvalid
)

func (k StateKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindRunning:
		return "running"
	case KindTermination:
		return "termination"
	case KindHalt:
		return "halt"
	case KindInvalid:
		return "invalid"
	}
	return fmt.Sprintf("StateKind(%d)", uint8(k))
}

// State is the machine status. ID is meaningful only for KindRunning and KindInvalid.
type State struct {
	Kind StateKind
	ID   ProgramState
}

// Running returns the status of a machine executing program state id.
func Running(id ProgramState) State {
	return State{Kind: KindRunning, ID: id}
}

// Termination returns the program-declared accepting outcome.
func Termination() State {
	return State{Kind: KindTermination}
}

// Halt returns the engine-declared outcome for "no transition defined".
func Halt() State {
	return State{Kind: KindHalt}
}

// Invalid returns the outcome for a transition into an undefined state id.
func Invalid(id ProgramState) State {
	return State{Kind: KindInvalid, ID: id}
}

// IsRunning reports whether the machine should take another step.
func (s State) IsRunning() bool {
	return s.Kind == KindRunning
}

// IsTerminal reports whether s ends a run.
func (s State) IsTerminal() bool {
	switch s.Kind {
	case KindTermination, KindHalt, KindInvalid:
		return true
	}
	return false
}

// Target reports whether s may appear as a rule's destination.
func (s State) Target() bool {
	switch s.Kind {
	case KindRunning, KindTermination, KindHalt:
		return true
	}
	return false
}

func (s State) String() string {
	switch s.Kind {
	case KindRunning:
		return fmt.Sprintf("q%d", s.ID)
	case KindInvalid:
		return fmt.Sprintf("invalid(q%d)", s.ID)
	}
	return s.Kind.String()
}
