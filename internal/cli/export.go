package cli

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"standplanner/internal/layout"
)

type exportOpts struct {
	applications string
	output       string
}

func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <plan.json>",
		Short: "Export stands with their exhibitors as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(c.Logger)

			plan, err := readPlan(args[0])
			if err != nil {
				return err
			}
			var exhibitors []layout.Exhibitor
			if opts.applications != "" {
				if exhibitors, err = readExhibitors(opts.applications); err != nil {
					return err
				}
			}

			w := c.out
			if opts.output != "" && opts.output != "-" {
				f, err := os.Create(opts.output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if err := exportCSV(w, plan, exhibitors); err != nil {
				return err
			}
			p.done("exported " + strconv.Itoa(len(plan.Stands)) + " stands")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.applications, "applications", "a", "", "JSON array of exhibitors to resolve occupants")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

var exportHeader = []string{
	"stand_id", "zone", "category", "x", "y", "size",
	"exhibitor_id", "brand", "contact", "phone", "email", "requested_size", "size_match",
}

// exportCSV writes one row per stand, ordered by zone then row then column.
func exportCSV(w io.Writer, plan *layout.EventPlan, exhibitors []layout.Exhibitor) error {
	zoneOrder := make(map[string]int, len(plan.Zones))
	for i, z := range plan.Zones {
		zoneOrder[z.ID] = i
	}
	stands := append([]layout.Stand(nil), plan.Stands...)
	sort.SliceStable(stands, func(i, j int) bool {
		a, b := stands[i], stands[j]
		if zoneOrder[a.ZoneID] != zoneOrder[b.ZoneID] {
			return zoneOrder[a.ZoneID] < zoneOrder[b.ZoneID]
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, s := range stands {
		zoneName, category := "", ""
		if z, ok := plan.Zone(s.ZoneID); ok {
			zoneName, category = z.Name, string(z.Category)
		}
		row := []string{
			s.ID, zoneName, category, strconv.Itoa(s.X), strconv.Itoa(s.Y), string(s.Size),
			s.Occupant(), "", "", "", "", "", "",
		}
		if ex, ok := layout.Occupant(s, exhibitors); ok {
			row[7], row[8], row[9], row[10] = ex.BrandName, ex.ContactPerson, ex.Phone, ex.Email
			row[11] = string(ex.RequestedSize)
			row[12] = string(layout.MatchSize(ex, s))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
