package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sync"

	"git.lost.host/meutraa/msd/internal/config"
	"git.lost.host/meutraa/msd/internal/difficulty"
	"git.lost.host/meutraa/msd/internal/parser"
	"git.lost.host/meutraa/msd/internal/store"
	"golang.org/x/term"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

type rating struct {
	mod   difficulty.Mod
	rate  float64
	attrs difficulty.Attributes
	err   error
}

func run() error {
	config.Parse()

	tuning, err := config.Tuning()
	if nil != err {
		return err
	}

	var psr parser.Parser = &parser.DefaultParser{}

	var st store.Store
	if !*config.NoStore {
		st = &store.DefaultStore{}
		if err := st.Init(*config.Database); nil != err {
			return fmt.Errorf("unable to open rating store: %w", err)
		}
		defer st.Deinit()
	}

	chartFiles := []string{}
	if err := filepath.Walk(*config.Directory, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if path.Ext(info.Name()) == ".sm" {
			chartFiles = append(chartFiles, p)
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}
	if len(chartFiles) == 0 {
		return errors.New("unable to find any .sm file in given directory")
	}

	nameWidth := 24
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); nil == err && width > 72 {
		nameWidth += width - 72
	}

	calc := difficulty.Calculator{Tuning: tuning}
	mods := []difficulty.Mod{difficulty.ModNone}
	if *config.AllMods {
		mods = difficulty.RatedMods()
	}

	for _, file := range chartFiles {
		charts, err := psr.Parse(file)
		if nil != err {
			return fmt.Errorf("unable to parse %v: %w", file, err)
		}

		fmt.Println(file)
		for _, chart := range charts {
			// Independent runs share nothing, rate every mod at once
			results := make([]rating, len(mods))
			var wg sync.WaitGroup
			for i, mod := range mods {
				nKeys, rate := mod.Adjust(chart.Difficulty.NKeys)
				if mod == difficulty.ModNone {
					rate = *config.Rate
				}
				results[i] = rating{mod: mod, rate: rate}

				wg.Add(1)
				go func(r *rating) {
					defer wg.Done()
					r.attrs, r.err = calc.Calculate(chart.Notes, nKeys, r.rate)
				}(&results[i])
			}
			wg.Wait()

			prior := 0
			if nil != st {
				prior = len(st.Load(chart))
			}

			for _, r := range results {
				if nil != r.err {
					return r.err
				}
				fmt.Printf("  %-*.*s %5v notes  %s x%4.2f  %7.3f  ±%.1fms  (listed %v)\n",
					nameWidth, nameWidth, chart.Difficulty.Name,
					chart.NoteCount, r.mod, r.rate,
					r.attrs.Rating, r.attrs.GreatHitWindow,
					chart.Difficulty.Msd)
				if nil != st {
					st.Save(chart, r.mod.String(), r.rate, r.attrs.Rating)
				}
			}
			if nil != st && prior > 0 {
				fmt.Printf("  %-*.*s %v prior ratings on record\n",
					nameWidth, nameWidth, "", prior)
			}
		}
	}
	return nil
}
