package difficulty

import (
	"testing"
)

var modTests = map[Mod]struct {
	name string
	rate float64
}{
	ModNone:       {"NM", 1.0},
	ModHalfTime:   {"HT", 0.75},
	ModDoubleTime: {"DT", 1.5},
}

func TestModAdjust(t *testing.T) {
	for mod, expected := range modTests {
		keys, rate := mod.Adjust(7)
		if keys != 7 || rate != expected.rate || mod.String() != expected.name {
			t.Log("mod     ", mod.String(), keys, rate)
			t.Log("expected", expected.name, 7, expected.rate)
			t.Fail()
		}
	}
}

func TestRatedModsCoverAllRates(t *testing.T) {
	seen := map[float64]bool{}
	for _, mod := range RatedMods() {
		seen[mod.Rate()] = true
	}
	for _, expected := range modTests {
		if !seen[expected.rate] {
			t.Log("missing rate", expected.rate)
			t.Fail()
		}
	}
}
