package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/movergraph/pkg/pipeline"
)

type graphOpts struct {
	settings settingsFlags
	output   string
	clusters bool
	detailed bool
	noCache  bool
}

// graphCommand creates the graph command, which writes the interaction graph
// as DOT, SVG, PNG or a JSON plan.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{}

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Write the interaction graph of a structure",
		Long: `Graph places movers on a structure and writes their interaction graph.

The output format follows the extension of --output: .dot, .svg, .png or
.json. Without --output the DOT source is printed to stdout.`,
		Example: `  movergraph graph ligand.sdf > ligand.dot
  movergraph graph ligand.sdf -o ligand.svg --clusters
  movergraph graph ligand.sdf -o ligand.png --exact --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd, args[0], opts)
		},
	}

	opts.settings.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.dot, .svg, .png, .json)")
	cmd.Flags().BoolVar(&opts.clusters, "clusters", false, "box each connected component")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show atom IDs and position counts")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan cache")

	return cmd
}

func (c *CLI) runGraph(cmd *cobra.Command, path string, opts graphOpts) error {
	ctx := cmd.Context()

	format := pipeline.FormatDOT
	if opts.output != "" {
		var err error
		if format, err = formatFromPath(opts.output); err != nil {
			return err
		}
	}

	cfg, err := opts.settings.load(cmd)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Path:     path,
		Config:   cfg,
		NoCache:  opts.noCache,
		Formats:  []string{format},
		Clusters: opts.clusters,
		Detailed: opts.detailed,
		Logger:   loggerFromContext(ctx),
	})
	if err != nil {
		return err
	}

	data := result.Artifacts[format]
	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	out := cmd.ErrOrStderr()
	printSuccess(out, "Rendered %d movers in %d components", result.Stats.Movers, result.Stats.Components)
	printFile(out, opts.output)
	return nil
}

// formatFromPath maps an output file extension to a pipeline format.
func formatFromPath(path string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if format == "gv" {
		format = pipeline.FormatDOT
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return "", fmt.Errorf("output %s: %w", path, err)
	}
	return format, nil
}
