package difficulty

// Mod is a difficulty-relevant modifier. Only modifiers changing the
// time rate or the column count matter to the rating; everything else is
// presentation and rates identically to ModNone.
type Mod uint8

const (
	ModNone Mod = iota
	ModHalfTime
	ModDoubleTime
)

func (m Mod) String() string {
	switch m {
	case ModHalfTime:
		return "HT"
	case ModDoubleTime:
		return "DT"
	}
	return "NM"
}

// Rate returns the playback rate multiplier of the modifier.
func (m Mod) Rate() float64 {
	switch m {
	case ModHalfTime:
		return 0.75
	case ModDoubleTime:
		return 1.5
	}
	return 1.0
}

// Adjust maps the modifier onto the (columnCount, timeRate) pair the
// calculator consumes for a chart with the given key count.
func (m Mod) Adjust(nKeys uint8) (int, float64) {
	return int(nKeys), m.Rate()
}

// RatedMods enumerates the modifier combinations worth rating
// separately. Each run is independent, so callers may rate them in
// parallel.
func RatedMods() []Mod {
	return []Mod{ModNone, ModHalfTime, ModDoubleTime}
}
