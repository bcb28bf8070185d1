package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/movergraph/pkg/cache"
	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/graph"
	"github.com/matzehuels/movergraph/pkg/interaction"
	"github.com/matzehuels/movergraph/pkg/molfile"
	"github.com/matzehuels/movergraph/pkg/observability"
	"github.com/matzehuels/movergraph/pkg/placement"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// planKeyType labels plan entries in cache hooks.
const planKeyType = "plan"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete read → place → graph → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.New()}
	logger := opts.Logger.With("run", result.RunID.String()[:8])

	data, err := r.readSource(ctx, opts.Path)
	if err != nil {
		return nil, err
	}
	result.StructureHash = cache.Hash(data)
	key := r.Keyer.PlanKey(result.StructureHash, opts.PlanKeyOpts())

	if !opts.NoCache {
		if p, ok := r.cachedPlan(ctx, key); ok {
			result.Plan = p
			result.CacheHit = true
			result.Stats = statsFromPlan(p)
			logger.Info("loaded plan from cache",
				"movers", result.Stats.Movers,
				"components", result.Stats.Components)
		}
	}

	if !result.CacheHit {
		if err := r.plan(ctx, data, opts, result, logger); err != nil {
			return nil, err
		}
		if !opts.NoCache {
			r.storePlan(ctx, key, result.Plan)
		}
	}

	if len(opts.Formats) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		renderStart := time.Now()
		artifacts, err := Render(ctx, result.Plan, opts)
		if err != nil {
			return nil, fmt.Errorf("render: %w", err)
		}
		result.Artifacts = artifacts
		result.Stats.RenderTime = time.Since(renderStart)
		logger.Info("rendered outputs",
			"formats", opts.Formats,
			"duration", result.Stats.RenderTime)
	}

	return result, nil
}

// plan runs the read, place and graph stages on the file bytes.
func (r *Runner) plan(ctx context.Context, data []byte, opts Options, result *Result, logger *log.Logger) error {
	hooks := observability.Pipeline()
	cfg := opts.Config

	// Stage 1: Read
	readStart := time.Now()
	hooks.OnReadStart(ctx, opts.Path)
	s, err := molfile.Read(bytes.NewReader(data))
	result.Stats.ReadTime = time.Since(readStart)
	atoms := 0
	if s != nil {
		atoms = s.AtomCount()
	}
	hooks.OnReadComplete(ctx, opts.Path, atoms, result.Stats.ReadTime, err)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.Path, err)
	}
	result.Structure = s
	result.Stats.Atoms = atoms
	logger.Info("read structure",
		"atoms", s.AtomCount(),
		"bonds", s.BondCount(),
		"duration", result.Stats.ReadTime)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 2: Place
	placeStart := time.Now()
	hooks.OnPlaceStart(ctx, s.AtomCount())
	placed := placement.Place(s, cfg.MoverOptions())
	result.Stats.PlaceTime = time.Since(placeStart)
	hooks.OnPlaceComplete(ctx, len(placed.Movers), len(placed.Failures), result.Stats.PlaceTime)
	for _, f := range placed.Failures {
		logger.Warn("mover not built", "atom", f.Atom.String(), "kind", f.Kind, "error", f.Err)
	}
	logger.Info("placed movers",
		"movers", len(placed.Movers),
		"failures", len(placed.Failures),
		"duration", result.Stats.PlaceTime)

	if err := ctx.Err(); err != nil {
		return err
	}

	// Stage 3: Graph
	graphStart := time.Now()
	hooks.OnGraphStart(ctx, string(cfg.Graph), len(placed.Movers))
	g, err := interaction.Build(cfg.Graph, placed.Movers, structure.ElementRadii(s), cfg.GraphOptions())
	result.Stats.GraphTime = time.Since(graphStart)
	if err != nil {
		hooks.OnGraphComplete(ctx, string(cfg.Graph), 0, 0, result.Stats.GraphTime, err)
		return fmt.Errorf("graph: %w", err)
	}
	result.Graph = g

	p, err := graph.FromInteraction(g, placed.Failures)
	if err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	p.Algorithm = string(cfg.Graph)
	p.ProbeRadius = cfg.ProbeRadius
	result.Plan = p

	stats := statsFromPlan(p)
	stats.Atoms, stats.ReadTime, stats.PlaceTime, stats.GraphTime =
		result.Stats.Atoms, result.Stats.ReadTime, result.Stats.PlaceTime, result.Stats.GraphTime
	result.Stats = stats
	hooks.OnGraphComplete(ctx, string(cfg.Graph), stats.Edges, stats.Components, stats.GraphTime, nil)

	logger.Info("built interaction graph",
		"algorithm", cfg.Graph,
		"edges", stats.Edges,
		"components", stats.Components,
		"largest", stats.Largest,
		"duration", stats.GraphTime)
	return nil
}

// readSource validates the path and returns the file bytes.
func (r *Runner) readSource(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := apperrors.ValidateStructurePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return data, nil
}

// cachedPlan returns the plan stored under key, if any. Unreadable entries
// count as misses.
func (r *Runner) cachedPlan(ctx context.Context, key string) (graph.Plan, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, planKeyType)
		return graph.Plan{}, false
	}
	p, err := graph.UnmarshalPlan(data)
	if err != nil {
		r.Logger.Debug("discarding cached plan", "error", err)
		observability.Cache().OnCacheMiss(ctx, planKeyType)
		return graph.Plan{}, false
	}
	observability.Cache().OnCacheHit(ctx, planKeyType)
	return p, true
}

func (r *Runner) storePlan(ctx context.Context, key string, p graph.Plan) {
	data, err := graph.MarshalPlan(p)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.DefaultTTL); err != nil {
		r.Logger.Debug("cache write failed", "error", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, planKeyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
