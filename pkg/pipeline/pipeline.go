// Package pipeline runs the read → place → graph → render sequence for one
// structure file.
//
// This package is the single entry point used by the CLI. By centralizing the
// sequence here, every command applies the same defaults, caching and hooks.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Read: Parse the structure file into atoms and bonds
//  2. Place: Find mover patterns and build one mover per match
//  3. Graph: Build the interaction graph and split it into components
//  4. Render: Produce the requested artifacts (JSON, DOT, SVG, PNG)
//
// Stages 1-3 produce a [graph.Plan], which is cached by file content and
// settings. Rendering always runs, from the plan.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "ligand.sdf",
//	    Config:  config.Default(),
//	    Formats: []string{pipeline.FormatJSON},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Stats.Components)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/movergraph/pkg/cache"
	"github.com/matzehuels/movergraph/pkg/config"
	"github.com/matzehuels/movergraph/pkg/graph"
	"github.com/matzehuels/movergraph/pkg/interaction"
	"github.com/matzehuels/movergraph/pkg/structure"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Path is the structure file (.sdf, .sd or .mol).
	Path string
	// Config holds the mover and graph settings. The zero value is replaced
	// by config.Default().
	Config config.Config
	// NoCache skips both reading and writing the plan cache.
	NoCache bool

	// Render options
	Formats  []string // Empty means no artifacts
	Clusters bool     // Box connected components in diagrams
	Detailed bool     // Atom IDs and candidate counts in node labels

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this execution in logs.
	RunID uuid.UUID

	// StructureHash is the SHA-256 of the structure file bytes.
	StructureHash string

	// Plan is the serializable summary of movers, edges and components.
	Plan graph.Plan

	// Structure and Graph are the live objects behind Plan. Both are nil
	// when the plan came from the cache.
	Structure *structure.Structure
	Graph     *interaction.Graph

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether Plan was read from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Atoms      int
	Movers     int
	Failures   int
	Edges      int
	Components int
	Largest    int
	ReadTime   time.Duration
	PlaceTime  time.Duration
	GraphTime  time.Duration
	RenderTime time.Duration
}

// statsFromPlan fills the size fields that a plan alone determines.
func statsFromPlan(p graph.Plan) Stats {
	return Stats{
		Movers:     len(p.Movers),
		Failures:   len(p.Failures),
		Edges:      len(p.Edges),
		Components: len(p.Components),
		Largest:    p.LargestComponent(),
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, dot, svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Path == "" {
		return fmt.Errorf("path is required")
	}
	if o.Config == (config.Config{}) {
		o.Config = config.Default()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// PlanKeyOpts returns cache key options for the plan.
func (o *Options) PlanKeyOpts() cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		CoarseStep:      o.Config.CoarseStep,
		FineStep:        o.Config.FineStep,
		PreferenceScale: o.Config.PreferenceScale,
		ProbeRadius:     o.Config.ProbeRadius,
		Algorithm:       string(o.Config.Graph),
	}
}
