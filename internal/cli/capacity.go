package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"standplanner/internal/layout"
)

func (c *CLI) capacityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "capacity <plan.json>",
		Short: "Print placed and occupied stands against each zone's budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := readPlan(args[0])
			if err != nil {
				return err
			}
			return renderCapacity(c.out, layout.CapacityReport(plan))
		},
	}
}

func renderCapacity(w io.Writer, report []layout.ZoneCapacity) error {
	if len(report) == 0 {
		fmt.Fprintln(w, styleDim.Render("no zones"))
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ZONE\tSIZE\tPLACED\tOCCUPIED\tBUDGET\tUSE\t")
	for _, zone := range report {
		for _, sc := range zone.Sizes {
			flag := ""
			if sc.Overbooked {
				flag = styleError.Render("over")
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%.0f%%\t%s\n",
				zone.ZoneName, sc.Size, sc.PlacedStands, sc.Used, sc.Total, sc.Utilization, flag)
		}
	}
	return tw.Flush()
}
