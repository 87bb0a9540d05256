package difficulty

import (
	"sort"

	"git.lost.host/meutraa/msd/internal/game"
)

// sequence converts chart notes into rating order: ascending start time,
// ties broken by descending end time, remaining ties by ascending column.
// The model's decay and chord reconciliation assume exactly this order.
// Mines never reach the model.
func sequence(notes []*game.Note) []*strainNote {
	out := make([]*strainNote, 0, len(notes))
	for _, n := range notes {
		if n.IsMine {
			continue
		}
		start, end := n.Ms()
		out = append(out, &strainNote{column: int(n.Index), start: start, end: end})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.start != b.start {
			return a.start < b.start
		}
		if a.end != b.end {
			return a.end > b.end
		}
		return a.column < b.column
	})
	return out
}
