package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"standplanner/internal/layout"
)

func (c *CLI) renderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <plan.json>",
		Short: "Print the grid with zones and stands",
		Long: `Print the plan grid. Each stand shows its zone letter and size; "*"
marks a stand with an exhibitor. Empty cells are ".".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := readPlan(args[0])
			if err != nil {
				return err
			}
			renderPlan(c.out, plan)
			return nil
		},
	}
}

// zoneLetters assigns A..Z, then a..z, in zone order.
func zoneLetters(plan *layout.EventPlan) map[string]byte {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	out := make(map[string]byte, len(plan.Zones))
	for i, z := range plan.Zones {
		if i < len(letters) {
			out[z.ID] = letters[i]
		} else {
			out[z.ID] = '#'
		}
	}
	return out
}

func cellToken(stand layout.Stand, letters map[string]byte) string {
	letter, ok := letters[stand.ZoneID]
	if !ok {
		letter = '?'
	}
	mark := " "
	if stand.IsOccupied() {
		mark = "*"
	}
	return string(letter) + string(stand.Size) + mark
}

func renderPlan(w io.Writer, plan *layout.EventPlan) {
	letters := zoneLetters(plan)
	grid := plan.GridSize

	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf("%s  %dx%d", plan.EventID, grid.Width, grid.Height)))

	var header strings.Builder
	header.WriteString("    ")
	for x := 0; x < grid.Width; x++ {
		fmt.Fprintf(&header, "%-3d", x%100)
	}
	fmt.Fprintln(w, styleDim.Render(strings.TrimRight(header.String(), " ")))

	for y := 0; y < grid.Height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%3d ", y)
		for x := 0; x < grid.Width; x++ {
			if stand, ok := plan.StandAt(x, y); ok {
				row.WriteString(cellToken(stand, letters))
			} else {
				row.WriteString(" . ")
			}
		}
		fmt.Fprintln(w, strings.TrimRight(row.String(), " "))
	}

	if len(plan.Zones) > 0 {
		fmt.Fprintln(w)
		for _, z := range plan.Zones {
			fmt.Fprintf(w, "  %c  %s (%s) %s\n", letters[z.ID], z.Name, z.Category, styleDim.Render(z.Color))
		}
	}

	if stranded := plan.OutOfBounds(); len(stranded) > 0 {
		fmt.Fprintln(w)
		for _, s := range stranded {
			printWarning(w, "stand %s (%s) at (%d,%d) is outside the grid", s.ID, cellToken(s, letters), s.X, s.Y)
		}
	}
}
