package parser

import "git.lost.host/meutraa/msd/internal/game"

type Parser interface {
	Parse(file string) ([]*game.Chart, error)
}
