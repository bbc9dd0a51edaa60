package domain

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is one output color of the lookup table.
type RGB struct {
	R, G, B uint8
}

// Grey returns the value v replicated across all three channels.
func Grey(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// Hex formats the color as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorTable is an optional ordered list of output colors, one per selected
// level (or per even-split step), replacing the computed greyscale values.
type ColorTable []RGB

// ParseColorTable parses comma-style hex triples ("1a2b3c" or "#1a2b3c").
// A malformed color is an InvalidConfig error.
func ParseColorTable(hexes []string) (ColorTable, error) {
	if len(hexes) == 0 {
		return nil, nil
	}
	out := make(ColorTable, 0, len(hexes))
	for _, h := range hexes {
		s := strings.TrimPrefix(strings.TrimSpace(h), "#")
		if len(s) != 6 {
			return nil, &OpError{
				Op:   "domain.parse_color_table",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("invalid hex color %q: must be 6 hex digits", h),
			}
		}
		c, err := colorful.Hex("#" + s)
		if err != nil {
			return nil, &OpError{
				Op:   "domain.parse_color_table",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("invalid hex color %q: %w", h, err),
			}
		}
		r, g, b := c.RGB255()
		out = append(out, RGB{R: r, G: g, B: b})
	}
	return out, nil
}

// ValidateColors rejects a ColorTable whose length disagrees with the
// selection before any image is decoded.
func ValidateColors(sel Selection, colors ColorTable) error {
	if len(colors) == 0 {
		return nil
	}
	if want := sel.OutputCount(); len(colors) != want {
		return &OpError{
			Op:   "domain.validate_colors",
			Kind: KindColorCountMismatch,
			Err:  fmt.Errorf("%d colors given for %d output levels", len(colors), want),
		}
	}
	return nil
}
