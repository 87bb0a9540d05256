package difficulty

import (
	"math"
)

// binned is the per-window sampling of the strain timeline: the peak
// combined strain and the summed combined strain of each window.
type binned struct {
	peaks []float64
	sums  []float64
}

// bin samples fixed windows of StrainStep*rate ms, aligned to
// absolute-time boundaries. A window crossed without a note carries the
// previous note's strain decayed to the boundary instead of resetting,
// so sparse sections do not read as artificially easy.
func bin(tuning *Tuning, notes []*strainNote, rate float64) binned {
	var b binned
	if len(notes) == 0 {
		return b
	}

	window := tuning.StrainStep * rate
	end := (math.Floor(notes[0].start/window) + 1) * window

	peak := 0.0
	sum := 0.0
	for i, n := range notes {
		for n.start >= end {
			b.peaks = append(b.peaks, peak)
			b.sums = append(b.sums, sum)
			sum = 0

			prev := notes[i-1]
			elapsed := (end - prev.start) / rate
			peak = prev.individual*decay(tuning.IndividualDecayBase, elapsed) +
				prev.sharedMax*decay(tuning.OverallDecayBase, elapsed)
			end += window
		}
		if c := n.combined(); c > peak {
			peak = c
		}
		sum += n.combined()
	}
	b.peaks = append(b.peaks, peak)
	b.sums = append(b.sums, sum)
	return b
}
