package tape

import "testing"

func TestWidth(t *testing.T) {
	if Width[uint8]() != 8 || Width[uint16]() != 16 || Width[uint32]() != 32 || Width[uint64]() != 64 {
		t.Fatal("unexpected widths")
	}
	if Width[uint]() != WordBits {
		t.Errorf("Width[uint]() = %d, want %d", Width[uint](), WordBits)
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		index, width   int
		wantWord, want int
	}{
		{0, 64, 0, 0},
		{63, 64, 0, 63},
		{64, 64, 1, 0},
		{130, 64, 2, 2},
		{9, 8, 1, 1},
	}
	for _, tt := range tests {
		w, b := Locate(tt.index, tt.width)
		if w != tt.wantWord || b != tt.want {
			t.Errorf("Locate(%d, %d) = (%d, %d), want (%d, %d)", tt.index, tt.width, w, b, tt.wantWord, tt.want)
		}
	}
}

func TestBitOrderIsMSBFirst(t *testing.T) {
	var w uint8
	w = SetBit(w, 0)
	if w != 0b1000_0000 {
		t.Errorf("bit 0 should be the top bit, got %08b", w)
	}
	w = SetBit(w, 7)
	if w != 0b1000_0001 {
		t.Errorf("bit 7 should be the bottom bit, got %08b", w)
	}
	if GetBit(w, 0) != 1 || GetBit(w, 7) != 1 || GetBit(w, 3) != 0 {
		t.Errorf("GetBit mismatch on %08b", w)
	}
	w = ClearBit(w, 0)
	if w != 0b0000_0001 {
		t.Errorf("ClearBit(0) = %08b", w)
	}

	var wide uint64
	wide = SetBit(wide, 1)
	if wide != 1<<62 {
		t.Errorf("uint64 bit 1 = %064b", wide)
	}
}

func TestSetClearRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		var w uint32
		w = SetBit(w, i)
		if GetBit(w, i) != 1 {
			t.Fatalf("bit %d not set", i)
		}
		for j := 0; j < 32; j++ {
			if j != i && GetBit(w, j) != 0 {
				t.Fatalf("setting bit %d disturbed bit %d", i, j)
			}
		}
		if ClearBit(w, i) != 0 {
			t.Fatalf("bit %d not cleared", i)
		}
	}
}
