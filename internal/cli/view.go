package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/okaneco/posterust/internal/domain"
)

// printSelection writes a human-readable summary of the resolved
// configuration: mode, levels, and the boundary/color stops as swatches.
func printSelection(w io.Writer, sel domain.Selection, colors domain.ColorTable) {
	switch sel.Mode {
	case domain.ModeEvenSplit:
		fmt.Fprintf(w, "Mode:   even split (%d steps)\n", sel.Split)
	case domain.ModeExplicit:
		fmt.Fprintf(w, "Mode:   explicit %v", []int(sel.Levels))
		if sel.Keep {
			fmt.Fprint(w, " (keep)")
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Ramp:   %v\n", domain.ValueRamp(sel))

	stops, err := domain.Stops(sel, colors)
	if err != nil {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Stops:  %s\n", renderStops(stops))
}

// renderStops draws each bucket as a colored swatch followed by its
// boundary value.
func renderStops(stops []domain.Stop) string {
	var b strings.Builder
	for i, s := range stops {
		if i > 0 {
			b.WriteString("  ")
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(s.Color.Hex())).
			Render("   ")
		b.WriteString(fmt.Sprintf("%s %d", swatch, s.Boundary))
	}
	return b.String()
}
