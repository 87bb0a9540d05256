package config

import (
	"git.lost.host/meutraa/msd/internal/difficulty"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Directory  = kingpin.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Rate       = kingpin.Flag("rate", "Playback rate").Default("1.0").Short('r').Float64()
	AllMods    = kingpin.Flag("all-mods", "Rate every modifier combination").Short('a').Bool()
	Database   = kingpin.Flag("database", "Rating history database").Default("./ratings.db").String()
	NoStore    = kingpin.Flag("no-store", "Skip writing rating history").Bool()
	tuningFile = kingpin.Flag("tuning", "Calibration overrides (yaml)").Short('t').String()
)

func Parse() {
	kingpin.Version("0.1.0")
	kingpin.Parse()
}

// Tuning returns the calibration table, with the --tuning file overlaid
// on the defaults when given.
func Tuning() (*difficulty.Tuning, error) {
	if *tuningFile == "" {
		return difficulty.DefaultTuning(), nil
	}
	return difficulty.LoadTuning(*tuningFile)
}
