package testutil

import "testing"

func TestUnaryFixture(t *testing.T) {
	m, _ := UnaryMachine(t)
	origin := m.Head()
	AssertCells(t, m, origin, "11110111")

	if _, err := m.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if m.Steps() != UnarySteps {
		t.Errorf("Steps() = %d, want %d", m.Steps(), UnarySteps)
	}
	AssertCells(t, m, origin, UnaryGolden)
}

func TestFixturesValidate(t *testing.T) {
	for _, cfg := range []func() interface{ Validate() error }{
		func() interface{ Validate() error } { c := UnaryConfig(); return &c },
		func() interface{ Validate() error } { c := LoopConfig(); return &c },
		func() interface{ Validate() error } { c := SpinConfig(); return &c },
	} {
		if err := cfg().Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	}
}
