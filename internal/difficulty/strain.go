package difficulty

import (
	"math"
	"sort"
)

// strainNote is the per-note state produced by the model: the strain this
// note asserts for its own column, the cross-column density strain, and
// the reconciled chord maximum the interval binner samples.
type strainNote struct {
	column     int
	start, end float64 // ms

	individual float64
	overall    float64
	sharedMax  float64
}

func (n *strainNote) held() bool { return n.end > n.start }

func (n *strainNote) combined() float64 { return n.individual + n.sharedMax }

// columnState is the model's view of one key column at the previous
// instant: its decayed jack strain, how long something sounds in it, and
// the last note that owned it.
type columnState struct {
	strain    float64
	heldUntil float64
	last      *strainNote
}

// model folds sequenced notes into strain values. The column array, the
// pending hold tail queue and the current chord group all belong to the
// fold alone, so emitted notes never share mutable state with each other.
type model struct {
	tuning *Tuning
	rate   float64
	nkeys  int

	cols    []columnState
	pending []*strainNote // unresolved hold tails, ascending end time
	group   []*strainNote // notes sharing the current start time
	prev    *strainNote
}

func newModel(tuning *Tuning, nkeys int, rate float64) *model {
	return &model{
		tuning: tuning,
		rate:   rate,
		nkeys:  nkeys,
		cols:   make([]columnState, nkeys),
	}
}

// simulate annotates the ordered notes in place.
func simulate(tuning *Tuning, notes []*strainNote, nkeys int, rate float64) {
	m := newModel(tuning, nkeys, rate)
	for _, n := range notes {
		m.step(n)
	}
	m.flush()
}

func decay(base, ms float64) float64 {
	return math.Pow(base, ms/1000.0)
}

// elapsed returns the rate-adjusted gap between two chart times.
func (m *model) elapsed(from, to float64) float64 {
	return (to - from) / m.rate
}

// keyScale shrinks per-note tail bonuses on wider layouts.
func (m *model) keyScale() float64 {
	return 4.0 / (3.0 + float64(m.nkeys))
}

// tailRamp scales a tail bonus by hold length, ramping in below the
// duration threshold and saturating past it.
func (m *model) tailRamp(holdMs float64) float64 {
	if holdMs >= m.tuning.TailDurationThreshold {
		return 1
	}
	return holdMs / m.tuning.TailDurationThreshold
}

func (m *model) step(note *strainNote) {
	if m.prev == nil {
		m.seed(note)
		return
	}
	if note.start != m.prev.start {
		m.flush()
	}

	t := m.tuning
	elapsed := m.elapsed(m.prev.start, note.start)
	individualDecay := decay(t.IndividualDecayBase, elapsed)

	// Survey the columns: holds releasing awkwardly inside this note grant
	// an addition, holds sounding straight through it grow the factor with
	// diminishing returns, and a release landing exactly with this note
	// cancels the addition outright.
	holdFactor := 1.0
	holdAddition := 0.0
	sharedRelease := false
	holds := 0
	for i := range m.cols {
		held := m.cols[i].heldUntil
		if note.start < held && held < note.end {
			holdAddition = t.HoldAddition
		}
		if held == note.end {
			sharedRelease = true
		}
		if held > note.end {
			holds++
			if holds == 1 {
				holdFactor = t.HoldFactorBump
			} else {
				holdFactor += (t.HoldFactorLimit - holdFactor) / 2
			}
		}
		m.cols[i].strain *= individualDecay
	}
	if sharedRelease {
		holdAddition = 0
	}

	// Own-column baseline. A hold occupant decays slower across its body,
	// pays out a tail bonus on release, then decays normally over the gap.
	c := note.column
	own := m.cols[c].strain
	if occ := m.cols[c].last; occ != nil && occ.held() {
		holdMs := m.elapsed(occ.start, occ.end)
		own = occ.individual * decay(t.IndividualDecayHoldBase, holdMs)
		own += t.TailBonus * m.tailRamp(holdMs) * m.keyScale()
		if gap := m.elapsed(occ.end, note.start); gap > 0 {
			own *= decay(t.IndividualDecayBase, gap)
		}
	}
	own += t.PressStrain * holdFactor
	note.individual = own
	m.cols[c].strain = own
	if note.end > m.cols[c].heldUntil {
		m.cols[c].heldUntil = note.end
	}

	// Overall strain: fold in any tails that resolved since the previous
	// note, segment by segment, then decay the rest of the way here.
	overall := m.prev.overall
	last := m.prev.start
	for len(m.pending) > 0 && m.pending[0].end <= note.start {
		tail := m.pending[0]
		m.pending = m.pending[1:]
		overall *= decay(t.OverallDecayBase, m.elapsed(last, tail.end))
		overall += t.TailBonus * m.tailRamp(m.elapsed(tail.start, tail.end)) * m.keyScale()
		last = tail.end
	}
	overall *= decay(t.OverallDecayBase, m.elapsed(last, note.start))
	overall += (1 + holdAddition) * holdFactor
	note.overall = overall
	note.sharedMax = overall

	m.register(note)
}

// seed anchors the first note of a chart.
func (m *model) seed(note *strainNote) {
	note.individual = m.tuning.PressStrain
	note.overall = 1
	note.sharedMax = note.overall
	m.cols[note.column].strain = note.individual
	if note.end > m.cols[note.column].heldUntil {
		m.cols[note.column].heldUntil = note.end
	}
	m.register(note)
}

func (m *model) register(note *strainNote) {
	m.cols[note.column].last = note
	if note.held() {
		i := sort.Search(len(m.pending), func(i int) bool {
			return m.pending[i].end > note.end
		})
		m.pending = append(m.pending, nil)
		copy(m.pending[i+1:], m.pending[i:])
		m.pending[i] = note
	}
	m.group = append(m.group, note)
	m.prev = note
}

// flush reconciles the notes sharing the last seen start time: every
// member takes the group maximum for both overall fields. Running it
// again over the same group changes nothing.
func (m *model) flush() {
	max := 0.0
	for _, n := range m.group {
		if n.sharedMax > max {
			max = n.sharedMax
		}
	}
	for _, n := range m.group {
		n.overall = max
		n.sharedMax = max
	}
	m.group = m.group[:0]
}
