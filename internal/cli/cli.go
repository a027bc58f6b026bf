// Package cli implements planctl, the offline companion to the planner API.
//
// planctl works on plan documents exported from the API (the same JSON the
// plans table stores): it creates new plans from TOML templates, renders the
// grid as text, prints the capacity report, checks a plan and exports the
// stand list as CSV.
package cli

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "planctl"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// ErrPlanHasIssues is returned by validate when the plan breaks an
// invariant. main maps it to exit status 2.
var ErrPlanHasIssues = errors.New("plan has issues")

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI printing results to out and logging to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "planctl works with market floor plans offline",
		Long:          `planctl creates, renders, checks and exports event floor plans: zones of S/M/L stands on a grid, with exhibitors bound to stands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(c.initCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.capacityCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.exportCommand())

	return root
}
