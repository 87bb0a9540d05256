package difficulty

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/msd/internal/game"
)

var (
	ErrBadRate     = errors.New("time rate must be positive")
	ErrBadKeyCount = errors.New("bad key count")
)

// Attributes is the calculator's output: the rating and the judgement
// window derived for the same rate.
type Attributes struct {
	Rating         float64
	GreatHitWindow float64 // ms
}

// Calculator rates charts. The zero value uses the default tuning. Runs
// share no mutable state, so a single Calculator may rate any number of
// charts from concurrent goroutines.
type Calculator struct {
	Tuning *Tuning
}

var defaultTuning = DefaultTuning()

func (c *Calculator) tuning() *Tuning {
	if nil != c.Tuning {
		return c.Tuning
	}
	return defaultTuning
}

// Calculate rates notes for a key count and playback rate. Note order
// does not matter and mines are ignored. An empty chart rates zero,
// which is a result, not an error.
func (c *Calculator) Calculate(notes []*game.Note, nKeys int, rate float64) (Attributes, error) {
	if rate <= 0 {
		return Attributes{}, fmt.Errorf("rate %v: %w", rate, ErrBadRate)
	}
	if nKeys < 1 {
		return Attributes{}, fmt.Errorf("%d keys: %w", nKeys, ErrBadKeyCount)
	}

	t := c.tuning()
	attrs := Attributes{GreatHitWindow: t.GreatHitWindow / rate}

	ordered := sequence(notes)
	if len(ordered) == 0 {
		return attrs, nil
	}
	for _, n := range ordered {
		if n.column >= nKeys {
			return Attributes{}, fmt.Errorf("column %d on %d keys: %w", n.column, nKeys, ErrBadKeyCount)
		}
	}

	simulate(t, ordered, nKeys, rate)
	attrs.Rating = aggregate(t, bin(t, ordered, rate))
	return attrs, nil
}

// CalculateChart rates a parsed chart under a modifier.
func (c *Calculator) CalculateChart(chart *game.Chart, mod Mod) (Attributes, error) {
	nKeys, rate := mod.Adjust(chart.Difficulty.NKeys)
	return c.Calculate(chart.Notes, nKeys, rate)
}
