// Package tape provides the fixed-capacity, bit-packed binary tape.
//
// Addressing is isolated here: cell i lives in word i/W at bit i%W, and bit 0
// of a word is its most significant bit, so printing words in big-endian
// binary order matches logical tape order left to right.
package tape

import "unsafe"

// Word is any unsigned integer used as tape storage.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Width returns the bit width of W.
func Width[W Word]() int {
	var w W
	return int(unsafe.Sizeof(w)) * 8
}

// Locate splits a global bit index into a word index and a bit offset.
func Locate(index, width int) (word, bit int) {
	return index / width, index % width
}

// mask returns the single-bit mask for bit i (0 = MSB).
func mask[W Word](i int) W {
	return W(1) << (Width[W]() - 1 - i)
}

// GetBit returns bit i of w (0 = MSB) as 0 or 1.
func GetBit[W Word](w W, i int) uint8 {
	return uint8((w >> (Width[W]() - 1 - i)) & 1)
}

// SetBit returns w with bit i set.
func SetBit[W Word](w W, i int) W {
	return w | mask[W](i)
}

// ClearBit returns w with bit i cleared.
func ClearBit[W Word](w W, i int) W {
	return w &^ mask[W](i)
}
