package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"standplanner/internal/layout"
)

type initOpts struct {
	template     string
	output       string
	width        int
	height       int
	spotDefaults bool
}

func (c *CLI) initCommand() *cobra.Command {
	var opts initOpts

	cmd := &cobra.Command{
		Use:   "init <event-id>",
		Short: "Create a new plan document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInit(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "TOML template with grid, zones and pricing")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.width, "width", layout.DefaultGridWidth, "grid width in cells")
	cmd.Flags().IntVar(&opts.height, "height", layout.DefaultGridHeight, "grid height in cells")
	cmd.Flags().BoolVar(&opts.spotDefaults, "spot-defaults", false, "fill prices and equipment from the spot catalog")

	return cmd
}

func (c *CLI) runInit(eventID string, opts initOpts, editorOpts ...layout.Option) error {
	if err := layout.ValidateEventID(eventID); err != nil {
		return err
	}

	plan := layout.NewEventPlanWithGrid(eventID, opts.width, opts.height)
	if opts.template != "" {
		tmpl, err := loadTemplate(opts.template)
		if err != nil {
			return err
		}
		if err := tmpl.apply(plan, editorOpts...); err != nil {
			return err
		}
		c.Logger.Debug("applied template", "path", opts.template, "zones", len(tmpl.Zones))
	}
	if opts.spotDefaults {
		plan.ApplySpotDefaults()
	}

	if err := c.writePlan(opts.output, plan); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		c.Logger.Info("plan created", "event", eventID, "file", opts.output,
			"grid", fmt.Sprintf("%dx%d", plan.GridSize.Width, plan.GridSize.Height), "zones", len(plan.Zones))
	}
	return nil
}
