// Package render draws stack partitions with Graphviz.
//
// # Overview
//
// Each stack becomes one column of boxes, bottom container at the bottom
// and the container that is loaded first at the top. Columns appear in
// partition order, left to right.
//
// # Usage
//
// Convert a partition to DOT, then render to SVG:
//
//	dot := render.ToDOT(stacks, render.Options{Title: "3,1,2"})
//	svg, err := render.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package render
