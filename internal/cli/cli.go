// Package cli implements the movergraph command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/movergraph/pkg/buildinfo"
	"github.com/matzehuels/movergraph/pkg/cache"
	"github.com/matzehuels/movergraph/pkg/config"
	"github.com/matzehuels/movergraph/pkg/interaction"
	"github.com/matzehuels/movergraph/pkg/observability"
	"github.com/matzehuels/movergraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "movergraph"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level every pipeline
// stage is also logged through the observability hooks.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := observability.NewLogHooks(c.Logger)
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Movergraph finds the flexible atoms of a structure and how they interact",
		Long: `Movergraph places movers (rotatable hydrogens, methyls, NH3 groups and amide flips)
on a molecular structure and builds the graph of movers that may touch each other.
Connected components of that graph can be optimized independently.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.planCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Cache keys carry the
// build version so plans from an older binary are never reused.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	fc, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	return pipeline.NewRunner(fc, keyer, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/movergraph/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// settingsFlags are the config overrides shared by plan and graph.
type settingsFlags struct {
	configPath string
	exact      bool
	probe      float64
	workers    int
}

func (f *settingsFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "TOML settings file")
	cmd.Flags().BoolVar(&f.exact, "exact", false, "use the exact interaction graph")
	cmd.Flags().Float64Var(&f.probe, "probe", interaction.DefaultProbeRadius, "probe radius in Å")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "goroutines for the exact graph (0 = GOMAXPROCS)")
}

// load reads the settings file, if any, then applies the flags the user set
// explicitly on cmd.
func (f *settingsFlags) load(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}
	if cmd.Flags().Changed("exact") && f.exact {
		cfg.Graph = interaction.AlgorithmExact
	}
	if cmd.Flags().Changed("probe") {
		cfg.ProbeRadius = f.probe
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}
