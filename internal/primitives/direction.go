package primitives

import (
	"fmt"
	"strings"
)

// Direction is a head movement. The zero value is invalid.
type Direction uint8

const (
	Left Direction = iota + 1
	Right
	Stay
)

// Valid reports whether d is one of Left, Right or Stay.
func (d Direction) Valid() bool {
	return d >= Left && d <= Stay
}

// Offset returns the signed head displacement: -1, +1 or 0.
// Offset panics on an invalid direction; rules are validated before they run.
func (d Direction) Offset() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	case Stay:
		return 0
	}
	panic(fmt.Sprintf("offset of %v", d))
}

// ParseDirection accepts L/R/S, left/right/stay and the signed forms -1/+1/0.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left", "-1", "<":
		return Left, nil
	case "r", "right", "+1", "1", ">":
		return Right, nil
	case "s", "stay", "0", "=":
		return Stay, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case Stay:
		return "S"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}
