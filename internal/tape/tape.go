package tape

import (
	"fmt"
	"math/bits"

	"github.com/comalice/turingx/internal/primitives"
)

// WordBits is the native word width used by Tape.
const WordBits = bits.UintSize

// Tape is a fixed number of native words, one bit per cell.
// Every cell not yet written reads as Zero.
type Tape struct {
	words []uint
}

// New creates a tape of n words (n*WordBits cells). n < 1 is raised to 1.
func New(n int) *Tape {
	if n < 1 {
		n = 1
	}
	return &Tape{words: make([]uint, n)}
}

// Capacity returns the number of cells.
func (t *Tape) Capacity() int {
	return len(t.words) * WordBits
}

// Len returns the number of words.
func (t *Tape) Len() int {
	return len(t.words)
}

func (t *Tape) check(i int) error {
	if i < 0 || i >= t.Capacity() {
		return fmt.Errorf("index %d, capacity %d: %w", i, t.Capacity(), primitives.ErrOutOfBounds)
	}
	return nil
}

// Get returns the symbol at cell i.
func (t *Tape) Get(i int) (primitives.Symbol, error) {
	if err := t.check(i); err != nil {
		return primitives.Zero, err
	}
	w, b := Locate(i, WordBits)
	return primitives.Symbol(GetBit(t.words[w], b)), nil
}

// Set writes s at cell i. Zero clears the bit, One sets it.
func (t *Tape) Set(i int, s primitives.Symbol) error {
	if err := t.check(i); err != nil {
		return err
	}
	w, b := Locate(i, WordBits)
	switch s {
	case primitives.Zero:
		t.words[w] = ClearBit(t.words[w], b)
	case primitives.One:
		t.words[w] = SetBit(t.words[w], b)
	default:
		return fmt.Errorf("cell %d: %w: %d", i, primitives.ErrInvalidSymbol, uint8(s))
	}
	return nil
}

// Write lays symbols out contiguously starting at origin. Nothing is written
// if the run does not fit or contains an invalid symbol.
func (t *Tape) Write(origin int, symbols []primitives.Symbol) error {
	if err := t.check(origin); err != nil {
		if len(symbols) == 0 && origin == t.Capacity() {
			return nil
		}
		return err
	}
	if remaining := t.Capacity() - origin; len(symbols) > remaining {
		return fmt.Errorf("writing %d cells at %d, %d remaining: %w", len(symbols), origin, remaining, primitives.ErrCapacity)
	}
	for i, s := range symbols {
		if !s.Valid() {
			return fmt.Errorf("cell %d: %w: %d", origin+i, primitives.ErrInvalidSymbol, uint8(s))
		}
	}
	for i, s := range symbols {
		// bounds and symbols were checked above
		_ = t.Set(origin+i, s)
	}
	return nil
}

// Read returns n cells starting at origin.
func (t *Tape) Read(origin, n int) ([]primitives.Symbol, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative length %d: %w", n, primitives.ErrOutOfBounds)
	}
	if n == 0 {
		return []primitives.Symbol{}, nil
	}
	if err := t.check(origin); err != nil {
		return nil, err
	}
	if err := t.check(origin + n - 1); err != nil {
		return nil, err
	}
	out := make([]primitives.Symbol, n)
	for i := range out {
		w, b := Locate(origin+i, WordBits)
		out[i] = primitives.Symbol(GetBit(t.words[w], b))
	}
	return out, nil
}

// Clear resets every cell to Zero.
func (t *Tape) Clear() {
	clear(t.words)
}

// Words returns a copy of the backing words.
func (t *Tape) Words() []uint {
	out := make([]uint, len(t.words))
	copy(out, t.words)
	return out
}

// FirstSet returns the index of the leftmost One cell, or -1.
func (t *Tape) FirstSet() int {
	for i, w := range t.words {
		if w != 0 {
			return i*WordBits + bits.LeadingZeros(w)
		}
	}
	return -1
}

// LastSet returns the index of the rightmost One cell, or -1.
func (t *Tape) LastSet() int {
	for i := len(t.words) - 1; i >= 0; i-- {
		if w := t.words[i]; w != 0 {
			return i*WordBits + WordBits - 1 - bits.TrailingZeros(w)
		}
	}
	return -1
}

// PopCount returns the number of One cells.
func (t *Tape) PopCount() int {
	count := 0
	for _, w := range t.words {
		count += bits.OnesCount(w)
	}
	return count
}
