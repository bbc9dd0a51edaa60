package domain

import "fmt"

const (
	// MinLevel and MaxLevel bound the canonical brightness steps,
	// 0=black through 10=white.
	MinLevel = 0
	MaxLevel = 10

	// GridSteps is the size of the canonical value grid.
	GridSteps = 11

	// MinSplit and MaxSplit bound the even-split step count (-n).
	MinSplit = 2
	MaxSplit = 11
)

// LevelSet is an ordered set of distinct canonical levels, strictly
// ascending, each within [MinLevel, MaxLevel]. Constructed once per run and
// immutable thereafter.
type LevelSet []int

// DefaultLevelSet returns all eleven canonical levels.
func DefaultLevelSet() LevelSet {
	s := make(LevelSet, GridSteps)
	for i := range s {
		s[i] = i
	}
	return s
}

// NewLevelSet validates raw user levels. An empty input defaults to all
// eleven levels. Out-of-range or non-ascending values are an InvalidLevel
// configuration error, never clamped.
func NewLevelSet(raw []int) (LevelSet, error) {
	if len(raw) == 0 {
		return DefaultLevelSet(), nil
	}
	if len(raw) > GridSteps {
		return nil, &OpError{
			Op:   "domain.new_level_set",
			Kind: KindInvalidLevel,
			Err:  fmt.Errorf("at most %d levels allowed, got %d", GridSteps, len(raw)),
		}
	}
	set := make(LevelSet, 0, len(raw))
	prev := MinLevel - 1
	for _, v := range raw {
		if v < MinLevel || v > MaxLevel {
			return nil, &OpError{
				Op:   "domain.new_level_set",
				Kind: KindInvalidLevel,
				Err:  fmt.Errorf("level %d outside [%d,%d]", v, MinLevel, MaxLevel),
			}
		}
		if v <= prev {
			return nil, &OpError{
				Op:   "domain.new_level_set",
				Kind: KindInvalidLevel,
				Err:  fmt.Errorf("levels must be strictly ascending, got %d after %d", v, prev),
			}
		}
		set = append(set, v)
		prev = v
	}
	return set, nil
}

// Mode selects how bucket boundaries are derived.
type Mode int

const (
	// ModeEvenSplit divides 0-255 into n evenly sized buckets.
	ModeEvenSplit Mode = iota
	// ModeExplicit derives buckets from a user-chosen LevelSet.
	ModeExplicit
)

func (m Mode) String() string {
	switch m {
	case ModeEvenSplit:
		return "even_split"
	case ModeExplicit:
		return "explicit"
	default:
		return "unknown"
	}
}

// Selection is the validated level selection for one run: a mode tag plus its
// payload. Keep is only meaningful in explicit mode.
type Selection struct {
	Mode   Mode
	Split  int      // even-split step count
	Levels LevelSet // explicit levels
	Keep   bool     // re-space surviving buckets evenly
}

// NewSelection resolves the raw CLI inputs into a Selection. Supplying both
// explicit levels and a split count is a ConflictingMode error; split counts
// outside [MinSplit, MaxSplit] are rejected. With neither given, the
// selection defaults to the full canonical grid.
func NewSelection(levels []int, split int, keep bool) (Selection, error) {
	if len(levels) > 0 && split > 0 {
		return Selection{}, &OpError{
			Op:   "domain.new_selection",
			Kind: KindConflictingMode,
			Err:  fmt.Errorf("explicit levels and an even split of %d are mutually exclusive", split),
		}
	}

	if split > 0 {
		if split < MinSplit || split > MaxSplit {
			return Selection{}, &OpError{
				Op:   "domain.new_selection",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("split count %d outside [%d,%d]", split, MinSplit, MaxSplit),
			}
		}
		return Selection{Mode: ModeEvenSplit, Split: split}, nil
	}

	set, err := NewLevelSet(levels)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Mode: ModeExplicit, Levels: set, Keep: keep}, nil
}

// OutputCount is the number of distinct output values the selection yields,
// which is also the required ColorTable length.
func (s Selection) OutputCount() int {
	if s.Mode == ModeEvenSplit {
		return s.Split
	}
	return len(s.Levels)
}
