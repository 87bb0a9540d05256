package difficulty

import (
	"testing"
	"time"

	"git.lost.host/meutraa/msd/internal/game"
)

func ms(v int64) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func TestSequenceOrder(t *testing.T) {
	notes := []*game.Note{
		{Index: 2, Time: ms(500)},
		{Index: 1, Time: ms(100), TimeEnd: ms(300)},
		{Index: 0, Time: ms(100)},
		{Index: 3, Time: ms(100), TimeEnd: ms(600)},
		{Index: 2, Time: ms(100)},
		{Index: 1, Time: ms(50)},
	}
	expected := []struct {
		column int
		start  float64
	}{
		{1, 50},
		{3, 100}, // longest hold first
		{1, 100},
		{0, 100}, // equal spans by ascending column
		{2, 100},
		{2, 500},
	}

	out := sequence(notes)
	if len(out) != len(expected) {
		t.Fatal("length", len(out))
	}
	for i, e := range expected {
		if out[i].column != e.column || out[i].start != e.start {
			t.Log("index   ", i)
			t.Log("out     ", out[i].column, out[i].start)
			t.Log("expected", e.column, e.start)
			t.Fail()
		}
	}
}

func TestSequenceSkipsMines(t *testing.T) {
	notes := []*game.Note{
		{Index: 0, Time: ms(100)},
		{Index: 1, Time: ms(200), IsMine: true},
		{Index: 2, Time: ms(300)},
	}
	out := sequence(notes)
	if len(out) != 2 {
		t.Fatal("length", len(out))
	}
	for _, n := range out {
		if n.column == 1 {
			t.Log("mine survived sequencing")
			t.Fail()
		}
	}
}
