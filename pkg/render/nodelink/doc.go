// Package nodelink renders mover interaction graphs as node-link diagrams.
//
// # Usage
//
// Convert a plan to DOT format, then render to SVG or PNG:
//
//	dot := nodelink.ToDOT(plan, nodelink.Options{Clusters: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Options
//
//   - Detailed: node labels list atom IDs and coarse/fine candidate counts
//   - Clusters: each multi-mover connected component is boxed
//
// Nodes are filled by mover kind and named m0, m1, ... by graph index.
// Edges are undirected.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering.
package nodelink
