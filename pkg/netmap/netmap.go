// Package netmap renders a rail network as a Graphviz diagram.
//
// Stations become nodes colored by line, tracks become undirected edges
// labeled with travel time and distance. Blocked tracks are drawn dashed
// in red. This package uses [github.com/goccy/go-graphviz] for
// in-process rendering, so no external graphviz binary is required.
package netmap

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/railnav/railnav/pkg/railnet"
)

// lineColors maps each line to its conventional map color.
var lineColors = map[railnet.Line]string{
	railnet.LineWestern:      "#7b3f00",
	railnet.LineCentral:      "#c0392b",
	railnet.LineHarbour:      "#2e86c1",
	railnet.LineTransHarbour: "#7d3c98",
}

// lineColor returns the map color for a line, grey for unknown lines.
func lineColor(l railnet.Line) string {
	if c, ok := lineColors[l]; ok {
		return c
	}
	return "#7f8c8d"
}

// ToDOT converts a network to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(n *railnet.Network) string {
	var buf bytes.Buffer
	buf.WriteString("graph rail {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	for _, s := range n.Stations() {
		attrs := []string{
			fmt.Sprintf("label=%q", s.Name),
			fmt.Sprintf("color=%q", lineColor(s.Line)),
		}
		if s.Interchange {
			attrs = append(attrs, "peripheries=2")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", s.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, t := range n.Tracks() {
		attrs := []string{fmt.Sprintf("color=%q", lineColor(t.Line))}
		if t.Time >= railnet.Inf {
			attrs = append(attrs, "style=dashed", "color=\"#c0392b\"", "label=\"blocked\"")
		} else {
			attrs = append(attrs, fmt.Sprintf("label=\"%d min / %d km\"", t.Time, t.Dist))
		}
		fmt.Fprintf(&buf, "  n%d -- n%d [%s];\n", t.U, t.V, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
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
