package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/movergraph/pkg/graph"
	"github.com/matzehuels/movergraph/pkg/render/nodelink"
)

// Render generates output artifacts from a plan in the requested formats.
// The DOT source is built once and shared by the DOT, SVG and PNG outputs.
func Render(ctx context.Context, p graph.Plan, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	var dot string

	for _, format := range opts.Formats {
		if format != FormatJSON && dot == "" {
			dot = nodelink.ToDOT(p, nodelink.Options{Detailed: opts.Detailed, Clusters: opts.Clusters})
		}

		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = graph.MarshalPlan(p)
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
