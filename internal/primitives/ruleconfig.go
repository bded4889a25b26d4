package primitives

import (
	"errors"
	"fmt"
)

// Reserved rule targets.
const (
	NextTerminate = "terminate"
	NextHalt      = "halt"
)

// IsReserved reports whether name is a reserved rule target.
func IsReserved(name string) bool {
	return name == NextTerminate || name == NextHalt
}

// RuleConfig is one row of a program's rule table.
type RuleConfig struct {
	State string `json:"state" yaml:"state"`
	Read  int    `json:"read" yaml:"read"`
	Write int    `json:"write" yaml:"write"`
	Move  string `json:"move" yaml:"move"`
	Next  string `json:"next" yaml:"next"`
}

// Validate checks field syntax. References are checked by ProgramConfig.Validate.
func (r *RuleConfig) Validate() error {
	if r.State == "" {
		return errors.New("state is required")
	}
	if r.Next == "" {
		return errors.New("next is required")
	}
	if err := validateName(r.Next); err != nil {
		return fmt.Errorf("next: %w", err)
	}
	if _, err := SymbolFromInt(r.Read); err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if _, err := SymbolFromInt(r.Write); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if _, err := ParseDirection(r.Move); err != nil {
		return fmt.Errorf("move: %w", err)
	}
	return nil
}

// Symbols returns the parsed read and write symbols.
func (r *RuleConfig) Symbols() (read, write Symbol, err error) {
	if read, err = SymbolFromInt(r.Read); err != nil {
		return
	}
	write, err = SymbolFromInt(r.Write)
	return
}
