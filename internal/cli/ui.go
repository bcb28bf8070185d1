package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/movergraph/pkg/graph"
	"github.com/matzehuels/movergraph/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleKey      = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// printDetail prints an indented dim line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Plan Summary
// =============================================================================

// printSummary prints the counts of a pipeline result and, for each failed
// candidate, a warning naming the atom.
func printSummary(w io.Writer, res *pipeline.Result) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("Plan %s", res.RunID.String()[:8])))
	if res.Stats.Atoms > 0 {
		printKeyValue(w, "Atoms", strconv.Itoa(res.Stats.Atoms))
	}
	printKeyValue(w, "Algorithm", res.Plan.Algorithm)
	printKeyValue(w, "Movers", StyleNumber.Render(strconv.Itoa(res.Stats.Movers)))
	printKeyValue(w, "Edges", StyleNumber.Render(strconv.Itoa(res.Stats.Edges)))
	printKeyValue(w, "Components", StyleNumber.Render(strconv.Itoa(res.Stats.Components)))
	printKeyValue(w, "Largest", StyleNumber.Render(strconv.Itoa(res.Stats.Largest)))
	printStatus(w, res.Stats, res.CacheHit)

	for _, f := range res.Plan.Failures {
		name := f.Name
		if name == "" {
			name = f.Element
		}
		printWarning(w, "%s atom %d (%s): %s", f.Kind, f.Atom, name, f.Error)
	}
}

// printStatus prints timings and the cache state on a single line.
func printStatus(w io.Writer, s pipeline.Stats, cached bool) {
	var parts []string
	if !cached {
		parts = append(parts,
			"read "+s.ReadTime.Round(time.Microsecond).String(),
			"place "+s.PlaceTime.Round(time.Microsecond).String(),
			"graph "+s.GraphTime.Round(time.Microsecond).String(),
		)
	}

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	if len(parts) > 0 {
		line += StyleDim.Render(" · ")
	}
	fmt.Fprintln(w, line+statusStyle.Render(status))
}

// moverTable renders one row per mover with the component it belongs to.
func moverTable(p graph.Plan) string {
	component := make(map[int]int, len(p.Movers))
	for ci, comp := range p.Components {
		for _, i := range comp {
			component[i] = ci
		}
	}

	rows := make([][]string, 0, len(p.Movers))
	for _, m := range p.Movers {
		atoms := make([]string, len(m.Atoms))
		for i, a := range m.Atoms {
			atoms[i] = strconv.Itoa(a)
		}
		rows = append(rows, []string{
			strconv.Itoa(m.Index),
			m.Kind,
			strings.Join(atoms, " "),
			strconv.Itoa(m.Coarse),
			strconv.Itoa(m.Fine),
			strconv.Itoa(component[m.Index]),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Kind", "Atoms", "Coarse", "Fine", "Component").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		}).
		String()
}
