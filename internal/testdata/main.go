package testdata

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/msd/internal/game"
)

// SimpleSM is a one-measure single chart at 120 bpm with a hold and a
// mine, small enough to verify every timestamp by hand. Each line is half
// a second apart.
const SimpleSM = `#TITLE:Test;
#OFFSET:0.000;
#BPMS:0.000=120.000;
#NOTES:
     dance-single:
     :
     Beginner:
     1:
     0.000,0.000:
1000
00M0
2001
3000
;`

// Stream returns a deterministic pseudo-random chart for property tests.
// Roughly a quarter of the notes are holds.
func Stream(seed int64, count int, nKeys int) []*game.Note {
	r := rand.New(rand.NewSource(seed))
	notes := make([]*game.Note, 0, count)
	t := time.Duration(0)
	for i := 0; i < count; i++ {
		t += time.Duration(r.Intn(350)+30) * time.Millisecond
		note := &game.Note{Index: uint8(r.Intn(nKeys)), Time: t}
		if r.Intn(4) == 0 {
			note.TimeEnd = t + time.Duration(r.Intn(600)+60)*time.Millisecond
		}
		notes = append(notes, note)
	}
	return notes
}
