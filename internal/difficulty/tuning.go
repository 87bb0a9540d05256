package difficulty

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

// Tuning holds every calibration constant of the rating model. The
// recurrence in strain.go only ever reads these, so recalibration is an
// edit here (or a yaml file), never an edit to the model.
type Tuning struct {
	// Per-column (jack) strain decay per second of gap.
	IndividualDecayBase float64 `yaml:"individual_decay_base"`
	// Slower decay applied across the body of a hold in the same column.
	IndividualDecayHoldBase float64 `yaml:"individual_decay_hold_base"`
	// Cross-column density strain decay per second of gap.
	OverallDecayBase float64 `yaml:"overall_decay_base"`

	// Bonus for a hold releasing inside this note's span but not with it.
	HoldAddition float64 `yaml:"hold_addition"`
	// Multiplier granted by the first note held through this note.
	HoldFactorBump float64 `yaml:"hold_factor_bump"`
	// Asymptote the factor approaches as more simultaneous holds stack.
	HoldFactorLimit float64 `yaml:"hold_factor_limit"`

	// Strain granted to the own column by the press itself.
	PressStrain float64 `yaml:"press_strain"`

	// Bonus granted when a hold tail resolves, before key scaling.
	TailBonus float64 `yaml:"tail_bonus"`
	// Hold duration (ms) over which the tail bonus ramps in.
	TailDurationThreshold float64 `yaml:"tail_duration_threshold"`

	// Width (ms) of the peak-sampling window, before rate adjustment.
	StrainStep float64 `yaml:"strain_step"`
	// Weight multiplier per step down the sorted window peaks.
	DecayWeight float64 `yaml:"decay_weight"`
	// Scale bringing the weighted sum into the displayed range.
	StarScalingFactor float64 `yaml:"star_scaling_factor"`

	// Consistency error at which the bonus flips to a penalty.
	ConsistencyThreshold float64 `yaml:"consistency_threshold"`
	// Exponent of the per-window error term.
	ConsistencyExponent float64 `yaml:"consistency_exponent"`
	// Caps on the multiplicative adjustment, as fractions of the rating.
	MaxConsistencyBonus   float64 `yaml:"max_consistency_bonus"`
	MaxConsistencyPenalty float64 `yaml:"max_consistency_penalty"`
	// Slope of the penalty past the threshold.
	ConsistencyPenaltyRate float64 `yaml:"consistency_penalty_rate"`
	// Rating below which the adjustment's influence is damped away.
	ConsistencyDampThreshold float64 `yaml:"consistency_damp_threshold"`

	// Base "Great" judgement window (ms) reported alongside the rating.
	GreatHitWindow float64 `yaml:"great_hit_window"`
}

func DefaultTuning() *Tuning {
	return &Tuning{
		IndividualDecayBase:     0.125,
		IndividualDecayHoldBase: 0.17,
		OverallDecayBase:        0.30,

		HoldAddition:    0.75,
		HoldFactorBump:  1.25,
		HoldFactorLimit: 1.45,

		PressStrain: 2.0,

		TailBonus:             0.5,
		TailDurationThreshold: 200.0,

		StrainStep:        400.0,
		DecayWeight:       0.92,
		StarScalingFactor: 0.8 * 0.018,

		ConsistencyThreshold:     0.13,
		ConsistencyExponent:      2.25,
		MaxConsistencyBonus:      0.06,
		MaxConsistencyPenalty:    0.12,
		ConsistencyPenaltyRate:   0.2,
		ConsistencyDampThreshold: 2.5,

		GreatHitWindow: 40.0,
	}
}

// LoadTuning overlays a yaml calibration file onto the defaults. Keys not
// present in the file keep their default value.
func LoadTuning(file string) (*Tuning, error) {
	t := DefaultTuning()
	data, err := ioutil.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, t); nil != err {
		return nil, fmt.Errorf("unable to parse tuning file: %w", err)
	}
	return t, nil
}
