package difficulty

import (
	"math/rand"
	"testing"
)

func TestAggregateEmpty(t *testing.T) {
	if r := aggregate(DefaultTuning(), binned{}); r != 0 {
		t.Log("rating", r)
		t.Fail()
	}
}

func TestAggregatePeakOrderIndependent(t *testing.T) {
	a := aggregate(DefaultTuning(), binned{
		peaks: []float64{1, 3, 2},
		sums:  []float64{2, 6, 4},
	})
	b := aggregate(DefaultTuning(), binned{
		peaks: []float64{3, 2, 1},
		sums:  []float64{6, 4, 2},
	})
	if a != b {
		t.Log("a", a)
		t.Log("b", b)
		t.Fail()
	}
}

func TestConsistencyFactorBounds(t *testing.T) {
	tuning := DefaultTuning()
	lo, hi := 1-tuning.MaxConsistencyPenalty, 1+tuning.MaxConsistencyBonus

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		sums := make([]float64, r.Intn(50)+1)
		for j := range sums {
			switch r.Intn(4) {
			case 0:
				sums[j] = 0
			case 1:
				sums[j] = r.Float64() * 1e6
			default:
				sums[j] = r.Float64() * 50
			}
		}
		f := consistencyFactor(tuning, r.Float64()*10, sums)
		if f < lo || f > hi {
			t.Log("factor", f)
			t.Log("sums  ", sums)
			t.Fail()
		}
	}
}

func TestConsistencyUnmeasurable(t *testing.T) {
	tuning := DefaultTuning()
	for _, sums := range [][]float64{nil, {}, {0, 0, 0}} {
		if f := consistencyFactor(tuning, 5, sums); f != 1 {
			t.Log("sums  ", sums)
			t.Log("factor", f)
			t.Fail()
		}
	}
}

func TestConsistencyEvenBeatsUneven(t *testing.T) {
	tuning := DefaultTuning()
	even := consistencyFactor(tuning, 5, []float64{10, 10, 10, 10})
	uneven := consistencyFactor(tuning, 5, []float64{40, 0, 0, 0})
	if even <= 1 || uneven >= 1 || uneven >= even {
		t.Log("even  ", even)
		t.Log("uneven", uneven)
		t.Fail()
	}
}
