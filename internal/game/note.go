package game

import (
	"time"
)

type Note struct {
	Index   uint8 // The chart column
	IsMine  bool
	Time    time.Duration // The time the note should be hit
	TimeEnd time.Duration // The time a hold should be released, zero for taps
}

func (note *Note) IsHold() bool {
	return note.TimeEnd > note.Time
}

// Ms returns the note span in milliseconds, keeping the sub-millisecond
// precision produced by the parser's beat arithmetic. For taps both values
// are the hit time.
func (note *Note) Ms() (start, end float64) {
	start = float64(note.Time) / float64(time.Millisecond)
	end = start
	if note.IsHold() {
		end = float64(note.TimeEnd) / float64(time.Millisecond)
	}
	return start, end
}
