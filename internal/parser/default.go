package parser

import (
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/msd/internal/game"
)

type DefaultParser struct{}

type bpm struct {
	startingBeat float64
	value        float64
}

func secondsPerNote(bpms []bpm, currentBeat float64, beatsPerNote float64) float64 {
	sel := 0.0
	for _, b := range bpms {
		if currentBeat >= b.startingBeat {
			sel = b.value
		} else {
			break
		}
	}
	secondsPerBeat := 60.0 / sel
	return beatsPerNote * secondsPerBeat
}

// 0 – No note
// 1 – Normal note
// 2 – Hold head
// 3 – Hold/Roll tail
// 4 – Roll head
// M – Mine (or other negative note)

func isNote(c byte) bool {
	return c == '1' || c == '2' || c == '4' || c == 'M'
}

func (p *DefaultParser) Parse(file string) ([]*game.Chart, error) {
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.ParseBytes(data)
}

func (p *DefaultParser) ParseBytes(data []byte) ([]*game.Chart, error) {
	str := strings.ReplaceAll(string(data), "\r", "")
	sections := strings.Split(str, "#NOTES:")
	meta := sections[0]

	difficulties := []game.Difficulty{}
	for _, section := range sections[1:] {
		lines := strings.SplitN(section, "\n", 7)
		if len(lines) < 7 {
			continue
		}
		chartType := strings.TrimSuffix(strings.TrimSpace(lines[1]), ":")
		nKeys, ok := game.NKeyMap[chartType]
		if !ok {
			continue
		}
		difficulties = append(difficulties, game.Difficulty{
			Name:    strings.TrimSuffix(strings.TrimSpace(lines[3]), ":"),
			Msd:     strings.TrimSuffix(strings.TrimSpace(lines[4]), ":"),
			Section: lines[6],
			NKeys:   nKeys,
		})
	}

	offset := 0.0
	bpms := []bpm{}

	for _, mdl := range strings.Split(meta, "\n#") {
		mdl = strings.TrimSpace(mdl)
		if strings.HasPrefix(mdl, "OFFSET:") {
			mdl = strings.TrimPrefix(mdl, "OFFSET:")
			mdl = strings.TrimSuffix(mdl, ";")
			offs, err := strconv.ParseFloat(mdl, 64)
			if nil != err {
				return nil, err
			}
			// The sm offset is how far the first beat sits before the
			// audio, so the chart starts at its negation.
			offset = -offs
		} else if strings.HasPrefix(mdl, "BPMS:") {
			mdl = strings.TrimPrefix(mdl, "BPMS:")
			mdl = strings.ReplaceAll(mdl, "\n", "")
			for _, pair := range strings.Split(strings.TrimSuffix(mdl, ";"), ",") {
				as := strings.Split(pair, "=")
				if len(as) != 2 {
					continue
				}
				sb, err := strconv.ParseFloat(as[0], 64)
				if nil != err {
					return nil, err
				}
				value, err := strconv.ParseFloat(as[1], 64)
				if nil != err {
					return nil, err
				}
				bpms = append(bpms, bpm{startingBeat: sb, value: value})
			}
		}
	}

	charts := []*game.Chart{}
	for _, difficulty := range difficulties {
		charts = append(charts, buildChart(difficulty, offset, bpms))
	}
	return charts, nil
}

func buildChart(difficulty game.Difficulty, offset float64, bpms []bpm) *game.Chart {
	seconds := offset
	currentBeat := 0.0

	notes := []*game.Note{}
	var noteCount, holdCount, mineCount int64

	for _, block := range strings.Split(difficulty.Section, "\n,") {
		lines := []string{}
		for _, l := range strings.Split(block, "\n") {
			if strings.HasPrefix(l, " ") || strings.Contains(l, "-") {
				continue
			}
			l = strings.TrimSpace(l)
			if len(l) > 3 {
				lines = append(lines, l)
			}
		}
		if len(lines) == 0 {
			continue
		}

		// Beat count is 4 per block
		beatsPerNote := 4.0 / float64(len(lines))

		for _, line := range lines {
			spn := secondsPerNote(bpms, currentBeat, beatsPerNote)

			for i := 0; i < len(line); i++ {
				c := line[i]
				if isNote(c) {
					if c == 'M' {
						mineCount++
					} else {
						noteCount++
						if c == '2' || c == '4' {
							holdCount++
						}
					}
					notes = append(notes, &game.Note{
						Index:  uint8(i),
						IsMine: c == 'M',
						Time:   time.Duration(seconds * float64(time.Second)),
					})
				} else if c == '3' {
					// This is the release of a previous head, find the
					// last note in this column and close it off.
					for j := len(notes) - 1; j >= 0; j-- {
						note := notes[j]
						if int(note.Index) != i {
							continue
						}
						note.TimeEnd = time.Duration(seconds * float64(time.Second))
						break
					}
				}
			}

			seconds += spn
			currentBeat += beatsPerNote
		}
	}

	return &game.Chart{
		Notes:      notes,
		NoteCount:  noteCount,
		HoldCount:  holdCount,
		MineCount:  mineCount,
		Difficulty: difficulty,
	}
}
