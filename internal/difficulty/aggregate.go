package difficulty

import (
	"math"
	"sort"
)

// aggregate turns the window samples into the final rating: a sorted,
// decay-weighted sum of the peaks, adjusted by how evenly the window
// sums are spread across the chart.
func aggregate(tuning *Tuning, b binned) float64 {
	if len(b.peaks) == 0 {
		return 0
	}

	peaks := append([]float64(nil), b.peaks...)
	sort.Sort(sort.Reverse(sort.Float64Slice(peaks)))

	difficulty := 0.0
	weight := 1.0
	for _, p := range peaks {
		difficulty += p * weight
		weight *= tuning.DecayWeight
	}
	difficulty *= tuning.StarScalingFactor

	return difficulty * consistencyFactor(tuning, difficulty, b.sums)
}

// consistencyFactor is the multiplicative bonus or penalty derived from
// the spread of per-window strain sums. It always lies within
// [1-MaxConsistencyPenalty, 1+MaxConsistencyBonus], damped toward 1 for
// low ratings.
func consistencyFactor(tuning *Tuning, difficulty float64, sums []float64) float64 {
	err, ok := consistencyError(tuning, sums)
	if !ok {
		return 1
	}
	weight := difficulty / tuning.ConsistencyDampThreshold
	if weight > 1 {
		weight = 1
	}

	if err <= tuning.ConsistencyThreshold {
		closeness := 1 - err/tuning.ConsistencyThreshold
		return 1 + tuning.MaxConsistencyBonus*closeness*closeness*weight
	}
	penalty := (err - tuning.ConsistencyThreshold) * tuning.ConsistencyPenaltyRate
	if penalty > tuning.MaxConsistencyPenalty {
		penalty = tuning.MaxConsistencyPenalty
	}
	return 1 - penalty*weight
}

// consistencyError measures how unevenly strain is distributed in time.
// A chart with no windows, or no strain at all, has nothing to measure
// and reports false.
func consistencyError(tuning *Tuning, sums []float64) (float64, bool) {
	if len(sums) == 0 {
		return 0, false
	}
	mean := 0.0
	max := 0.0
	for _, s := range sums {
		mean += s
		if s > max {
			max = s
		}
	}
	mean /= float64(len(sums))
	if mean == 0 {
		return 0, false
	}

	total := 0.0
	for _, s := range sums {
		total += math.Pow((max-s)/mean, tuning.ConsistencyExponent)
	}
	return total / float64(len(sums)) / 100.0, true
}
