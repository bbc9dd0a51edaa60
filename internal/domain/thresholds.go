package domain

// gridBucket is the canonical bucket size: 255 divided by the grid size with
// truncating integer division. The truncation is load-bearing; the canonical
// value of level v is exactly v*23.
const gridBucket = 255 / GridSteps

// Stop pairs a bucket boundary with the output color of every luma at or
// above it (up to the next stop).
type Stop struct {
	Boundary uint8
	Color    RGB
}

// evenBoundaries returns the boundary grid for an n-way even split:
// boundary(i) = i * (255/n). Bucket sizes are not perfectly uniform for
// non-divisor step counts; the final bucket absorbs the remainder.
func evenBoundaries(steps int) []uint8 {
	size := 255 / steps
	out := make([]uint8, steps)
	for i := range out {
		out[i] = uint8(i * size)
	}
	return out
}

// explicitRamp walks the canonical 11-step grid and assigns each level the
// value of the nearest selected level seen so far. Unselected levels before
// the first selected one redirect forward to it; runs of unselected levels
// between two selected ones collapse into the preceding selected level.
func explicitRamp(levels LevelSet) [GridSteps]uint8 {
	var ramp [GridSteps]uint8
	counter := 0
	next := -1
	if len(levels) > 1 {
		next = levels[1]
	}
	for n := 0; n < GridSteps; n++ {
		ramp[n] = uint8(levels[counter] * gridBucket)
		if n+1 == next {
			counter++
			if counter < len(levels)-1 {
				next = levels[counter+1]
			}
		}
	}
	return ramp
}

// respacedRamp replaces each surviving run of the ramp with evenly spaced
// values, runIndex * (255/n). This is the keep-mode transform.
func respacedRamp(ramp [GridSteps]uint8, n int) [GridSteps]uint8 {
	step := 255 / n
	var out [GridSteps]uint8
	counter := 0
	curr := ramp[0]
	for i, v := range ramp {
		if v != curr {
			curr = v
			counter++
		}
		out[i] = uint8(counter * step)
	}
	return out
}

// ValueRamp returns the selection's output value per canonical grid position
// (explicit mode) or per even-split step. Useful for previews and debugging.
func ValueRamp(sel Selection) []uint8 {
	if sel.Mode == ModeEvenSplit {
		return evenBoundaries(sel.Split)
	}
	ramp := explicitRamp(sel.Levels)
	if sel.Keep {
		ramp = respacedRamp(ramp, len(sel.Levels))
	}
	return ramp[:]
}

// Stops derives the ordered boundary/color stops for a selection. With no
// ColorTable the output colors are greyscale repeats of each boundary value,
// except that an even split paints its brightest bucket pure white.
func Stops(sel Selection, colors ColorTable) ([]Stop, error) {
	if err := ValidateColors(sel, colors); err != nil {
		return nil, err
	}

	if sel.Mode == ModeEvenSplit {
		bounds := evenBoundaries(sel.Split)
		stops := make([]Stop, len(bounds))
		for i, b := range bounds {
			switch {
			case len(colors) > 0:
				stops[i] = Stop{Boundary: b, Color: colors[i]}
			case i == len(bounds)-1:
				stops[i] = Stop{Boundary: b, Color: Grey(255)}
			default:
				stops[i] = Stop{Boundary: b, Color: Grey(b)}
			}
		}
		return stops, nil
	}

	ramp := explicitRamp(sel.Levels)
	if sel.Keep {
		ramp = respacedRamp(ramp, len(sel.Levels))
	}

	// The ramp is non-decreasing; each distinct value opens one bucket.
	stops := make([]Stop, 0, len(sel.Levels))
	for i, v := range ramp {
		if i > 0 && v == ramp[i-1] {
			continue
		}
		c := Grey(v)
		if len(colors) > 0 {
			c = colors[len(stops)]
		}
		stops = append(stops, Stop{Boundary: v, Color: c})
	}
	return stops, nil
}

// LookupTable maps every 8-bit luma to its output color. Built once per run,
// immutable and safe to share across images without synchronization.
type LookupTable [256]RGB

// BuildLookupTable populates all 256 entries from ordered stops using
// inclusive-lower-bound semantics: luma l takes the color of the greatest
// boundary <= l. Luma below the first boundary clamps up to the first stop.
func BuildLookupTable(stops []Stop) *LookupTable {
	var table LookupTable
	if len(stops) == 0 {
		return &table
	}
	si := 0
	for l := 0; l < 256; l++ {
		for si+1 < len(stops) && int(stops[si+1].Boundary) <= l {
			si++
		}
		table[l] = stops[si].Color
	}
	return &table
}

// NewLookupTable validates the selection/color pairing and derives the table.
func NewLookupTable(sel Selection, colors ColorTable) (*LookupTable, error) {
	stops, err := Stops(sel, colors)
	if err != nil {
		return nil, err
	}
	return BuildLookupTable(stops), nil
}
