package domain

// Preset is a named, reusable posterization configuration loaded from a
// preset file. Raw fields mirror the CLI surface; resolution and validation
// happen through NewSelection/ParseColorTable exactly as for flags.
type Preset struct {
	Name   string
	Levels []int
	Split  int
	Keep   bool
	Colors []string
}

// Resolve turns the preset into a validated Selection and ColorTable.
func (p Preset) Resolve() (Selection, ColorTable, error) {
	colors, err := ParseColorTable(p.Colors)
	if err != nil {
		return Selection{}, nil, err
	}

	levels := p.Levels
	split := p.Split
	// A pure color preset picks an even split of matching size, same as
	// giving -c without -v or -n.
	if len(levels) == 0 && split == 0 && len(colors) > 0 {
		split = len(colors)
	}

	sel, err := NewSelection(levels, split, p.Keep)
	if err != nil {
		return Selection{}, nil, err
	}
	if err := ValidateColors(sel, colors); err != nil {
		return Selection{}, nil, err
	}
	return sel, colors, nil
}
