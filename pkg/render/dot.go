package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/stackcheck/pkg/stacking"
)

// Options configures partition rendering.
type Options struct {
	// Title is shown above the stacks when set, usually the arrival line.
	Title string

	// Labeled adds a "stack N" caption under each column.
	Labeled bool
}

// ToDOT converts a partition to Graphviz DOT source. The result can be
// rendered with [RenderSVG].
func ToDOT(p stacking.Partition, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph stacks {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  newrank=true;\n")
	buf.WriteString("  ranksep=0.05;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fillcolor=white, fontsize=18, width=0.8, height=0.45, fixedsize=true];\n")
	buf.WriteString("  edge [style=invis];\n")

	for i, s := range p {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		if opts.Labeled {
			fmt.Fprintf(&buf, "    color=transparent;\n    label=\"stack %d\";\n    labelloc=b;\n", i+1)
		} else {
			buf.WriteString("    style=invis;\n")
		}
		for j, id := range s {
			attrs := []string{fmt.Sprintf("label=%q", strconv.Itoa(id))}
			if j == len(s)-1 {
				attrs = append(attrs, "fillcolor=\"#e8f0fe\"")
			}
			fmt.Fprintf(&buf, "    %s [%s];\n", nodeID(i, j), strings.Join(attrs, ", "))
		}
		for j := 1; j < len(s); j++ {
			fmt.Fprintf(&buf, "    %s -> %s;\n", nodeID(i, j-1), nodeID(i, j))
		}
		buf.WriteString("  }\n")
	}

	// Bottoms share a rank and are chained so columns keep partition order.
	var bottoms []string
	for i, s := range p {
		if len(s) > 0 {
			bottoms = append(bottoms, nodeID(i, 0))
		}
	}
	if len(bottoms) > 1 {
		buf.WriteString("\n")
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(bottoms, "; "))
		fmt.Fprintf(&buf, "  %s [constraint=false];\n", strings.Join(bottoms, " -> "))
	}

	// Set last so clusters do not inherit it.
	if opts.Title != "" {
		fmt.Fprintf(&buf, "\n  label=%q;\n  labelloc=t;\n", opts.Title)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(stack, pos int) string {
	return fmt.Sprintf("s%d_%d", stack, pos)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root element with one whose
// viewBox starts at the origin and whose size matches it.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
