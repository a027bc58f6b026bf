package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"standplanner/internal/layout"
)

func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <plan.json>",
		Short: "Check a plan for overlapping, stranded or dangling stands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := readPlan(args[0])
			if err != nil {
				return err
			}

			issues := layout.Check(plan)
			if len(issues) == 0 {
				printSuccess(c.out, "%s: %d zones, %d stands, no issues", plan.EventID, len(plan.Zones), len(plan.Stands))
				return nil
			}
			for _, issue := range issues {
				printError(c.out, "%s", issue)
			}
			return fmt.Errorf("%w: %d found", ErrPlanHasIssues, len(issues))
		},
	}
}
