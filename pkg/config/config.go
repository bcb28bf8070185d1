// Package config loads the run settings for mover placement and interaction
// graph construction from a TOML file.
//
// Every key is optional; a missing key keeps its default:
//
//	coarse_step_degrees = 30.0
//	fine_step_degrees = 1.0
//	preferred_orientation_scale = 1.0
//	probe_radius = 0.25
//	graph = "approximate"   # or "exact"
//	workers = 0             # 0 means GOMAXPROCS
//
// Defaults are resolved here and handed to the core packages as explicit
// option values.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/matzehuels/movergraph/pkg/errors"
	"github.com/matzehuels/movergraph/pkg/interaction"
	"github.com/matzehuels/movergraph/pkg/mover"
)

// Config holds the settings of one run.
type Config struct {
	CoarseStep      float64               `toml:"coarse_step_degrees" json:"coarse_step_degrees"`
	FineStep        float64               `toml:"fine_step_degrees" json:"fine_step_degrees"`
	PreferenceScale float64               `toml:"preferred_orientation_scale" json:"preferred_orientation_scale"`
	ProbeRadius     float64               `toml:"probe_radius" json:"probe_radius"`
	Graph           interaction.Algorithm `toml:"graph" json:"graph"`
	Workers         int                   `toml:"workers" json:"workers"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CoarseStep:      mover.DefaultCoarseStep,
		FineStep:        mover.DefaultFineStep,
		PreferenceScale: mover.DefaultPreferenceScale,
		ProbeRadius:     interaction.DefaultProbeRadius,
		Graph:           interaction.AlgorithmApproximate,
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "config %s", path)
	}
	if err := cfg.decode(string(data)); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, cfg.Validate()
}

// Parse reads TOML text over the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	if err := cfg.decode(text); err != nil {
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config")
	}
	return cfg, cfg.Validate()
}

func (c *Config) decode(text string) error {
	md, err := toml.Decode(text, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New("unknown keys: " + strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks step sizes, the probe radius and the graph algorithm.
func (c Config) Validate() error {
	if err := c.MoverOptions().Validate(); err != nil {
		return err
	}
	if err := apperrors.ValidateFinite("probe_radius", c.ProbeRadius); err != nil {
		return err
	}
	if !c.Graph.Valid() {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "graph must be %q or %q, got %q",
			interaction.AlgorithmApproximate, interaction.AlgorithmExact, c.Graph)
	}
	if c.Workers < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	return nil
}

// MoverOptions returns the options passed to every mover constructor.
func (c Config) MoverOptions() mover.Options {
	return mover.Options{
		CoarseStep:      c.CoarseStep,
		FineStep:        c.FineStep,
		PreferenceScale: c.PreferenceScale,
	}
}

// GraphOptions returns the options passed to the interaction graph builder.
func (c Config) GraphOptions() interaction.Options {
	return interaction.Options{
		ProbeRadius: c.ProbeRadius,
		Workers:     c.Workers,
	}
}
