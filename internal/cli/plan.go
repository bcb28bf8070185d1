package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/movergraph/pkg/pipeline"
)

type planOpts struct {
	settings settingsFlags
	jsonOut  string
	noCache  bool
	table    bool
}

// planCommand creates the plan command: place movers, build the graph and
// print a summary.
func (c *CLI) planCommand() *cobra.Command {
	opts := planOpts{}

	cmd := &cobra.Command{
		Use:   "plan FILE",
		Short: "Place movers on a structure and summarize their interaction graph",
		Long: `Plan reads an MDL molfile or SDF record, places a mover on every matching
group and builds the interaction graph between the movers.

The summary lists the number of movers, edges and connected components. Groups
that matched a pattern but whose geometry could not hold a mover are reported
as warnings. Use --json to write the full plan document.`,
		Example: `  movergraph plan ligand.sdf
  movergraph plan ligand.sdf --exact --probe 0.3 --table
  movergraph plan ligand.sdf --config settings.toml --json plan.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlan(cmd, args[0], opts)
		},
	}

	opts.settings.register(cmd)
	cmd.Flags().StringVar(&opts.jsonOut, "json", "", "write the plan document to this file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")
	cmd.Flags().BoolVar(&opts.table, "table", false, "list every mover")

	return cmd
}

func (c *CLI) runPlan(cmd *cobra.Command, path string, opts planOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := opts.settings.load(cmd)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Path:    path,
		Config:  cfg,
		NoCache: opts.noCache,
		Logger:  logger,
	}
	if opts.jsonOut != "" {
		popts.Formats = []string{pipeline.FormatJSON}
	}

	var spin *spinner
	if logger.GetLevel() > log.DebugLevel {
		spin = newSpinner(ctx, cmd.ErrOrStderr(), "Placing movers...")
		spin.start()
	}

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, popts)
	if spin != nil {
		if err != nil {
			spin.fail("Planning failed")
		} else {
			spin.stop()
		}
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Planned %s", path))

	out := cmd.OutOrStdout()
	printSummary(out, result)
	if opts.table && len(result.Plan.Movers) > 0 {
		fmt.Fprintln(out, moverTable(result.Plan))
	}

	if opts.jsonOut != "" {
		if err := os.WriteFile(opts.jsonOut, result.Artifacts[pipeline.FormatJSON], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.jsonOut, err)
		}
		printSuccess(out, "Wrote plan")
		printFile(out, opts.jsonOut)
	}
	return nil
}
