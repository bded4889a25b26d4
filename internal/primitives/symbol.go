package primitives

import (
	"fmt"
	"strings"
)

// Symbol is a binary tape value.
type Symbol uint8

const (
	Zero Symbol = 0
	One  Symbol = 1
)

// SymbolFromInt converts 0 or 1 to a Symbol. Any other value is rejected.
func SymbolFromInt(v int) (Symbol, error) {
	switch v {
	case 0:
		return Zero, nil
	case 1:
		return One, nil
	}
	return Zero, fmt.Errorf("%w: %d", ErrInvalidSymbol, v)
}

// SymbolsFromInts converts a slice of 0/1 values, failing on the first bad one.
func SymbolsFromInts(values []int) ([]Symbol, error) {
	out := make([]Symbol, len(values))
	for i, v := range values {
		s, err := SymbolFromInt(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// ParseSymbols parses a string of '0' and '1' characters.
// Spaces, underscores and commas are ignored so "1111 0111" and "1,1,0" are accepted.
func ParseSymbols(s string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out = append(out, Zero)
		case '1':
			out = append(out, One)
		case ' ', '_', ',', '\t', '\n':
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, r, i)
		}
	}
	return out, nil
}

// FormatSymbols is the inverse of ParseSymbols.
func FormatSymbols(symbols []Symbol) string {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for _, s := range symbols {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// Valid reports whether s is Zero or One.
func (s Symbol) Valid() bool {
	return s == Zero || s == One
}

// Int returns 0 or 1.
func (s Symbol) Int() int {
	return int(s)
}

func (s Symbol) String() string {
	switch s {
	case Zero:
		return "0"
	case One:
		return "1"
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}
