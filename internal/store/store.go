package store

import (
	"git.lost.host/meutraa/msd/internal/game"
)

type Store interface {
	Init(file string) error
	Deinit()

	// Save a computed rating for this chart
	Save(chart *game.Chart, mod string, rate float64, rating float64)

	// Load previous ratings for the chart
	Load(chart *game.Chart) []Entry
}

type Entry struct {
	Sum    string
	Mod    string
	Rate   float64
	Rating float64
}
