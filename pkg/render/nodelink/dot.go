package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/movergraph/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the controlled atom IDs and candidate counts in node
	// labels. When false, only the index and kind are shown.
	Detailed bool
	// Clusters draws a box around every connected component with more than
	// one mover.
	Clusters bool
}

// kindColors assigns a fill color to each mover kind; unknown kinds are white.
var kindColors = map[string]string{
	"single-hydrogen":    "#e8f1fb",
	"nh3":                "#e6f4ea",
	"aromatic-methyl":    "#fef7e0",
	"tetrahedral-methyl": "#fdeee0",
	"flip":               "#f3e8fd",
}

// ToDOT converts a plan's interaction graph to undirected Graphviz DOT.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
//
// Movers that share an edge may need to be optimized together; with
// Clusters set, each such group is drawn inside its own box.
func ToDOT(p graph.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	written := make([]bool, len(p.Movers))
	if opts.Clusters {
		for ci, comp := range p.Components {
			if len(comp) < 2 {
				continue
			}
			fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", ci)
			fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("component %d", ci))
			buf.WriteString("    style=\"rounded,dashed\";\n")
			for _, i := range comp {
				buf.WriteString("  ")
				writeNode(&buf, p.Movers[i], opts.Detailed)
				written[i] = true
			}
			buf.WriteString("  }\n")
		}
	}
	for i, m := range p.Movers {
		if !written[i] {
			writeNode(&buf, m, opts.Detailed)
		}
	}

	buf.WriteString("\n")
	for _, e := range p.Edges {
		fmt.Fprintf(&buf, "  m%d -- m%d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, m graph.Mover, detailed bool) {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(m, detailed))}
	if c, ok := kindColors[m.Kind]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	fmt.Fprintf(buf, "  m%d [%s];\n", m.Index, strings.Join(attrs, ", "))
}

func fmtLabel(m graph.Mover, detailed bool) string {
	label := fmt.Sprintf("%d %s", m.Index, m.Kind)
	if !detailed {
		return label
	}
	atoms := make([]string, len(m.Atoms))
	for i, a := range m.Atoms {
		atoms[i] = strconv.Itoa(a)
	}
	return fmt.Sprintf("%s\natoms: %s\ncoarse: %d\nfine: %d", label, strings.Join(atoms, " "), m.Coarse, m.Fine)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
