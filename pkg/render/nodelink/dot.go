package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/gridwork/pkg/grid"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes header scopes and column widths in labels.
	// When false, only group names and column titles are shown.
	Detailed bool
}

// Block is one merged header cell.
type Block struct {
	Row    int
	Start  int
	End    int
	Header grid.HeaderMetaData
}

// ID returns the node identifier of the block.
func (b Block) ID() string {
	return fmt.Sprintf("r%d:%d-%d", b.Row, b.Start, b.End)
}

// Contains reports whether the column at index lies inside the block.
func (b Block) Contains(index int) bool {
	return index >= b.Start && index <= b.End
}

// Blocks returns every header block, row by row, left to right. Columns
// without metadata at a row contribute no block to it.
func Blocks(d *grid.Data) []Block {
	cols := d.Columns()
	var out []Block
	for row := 0; row < d.HeaderRowCount(); row++ {
		for i := 0; i < len(cols); {
			start, end, ok := grid.BlockRange(cols, row, i)
			if !ok {
				i++
				continue
			}
			md, _ := cols[i].HeaderAt(row)
			out = append(out, Block{Row: row, Start: start, End: end, Header: md})
			i = end + 1
		}
	}
	return out
}

// ToDOT converts a grid's header blocks to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Columns that cannot be moved are drawn dashed; hidden columns grey.
func ToDOT(d *grid.Data, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	blocks := Blocks(d)
	fmt.Fprintf(&buf, "  %q [label=%q, shape=plaintext, style=\"\"];\n", "grid", "grid")
	for _, b := range blocks {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", b.ID(), blockLabel(b, opts.Detailed))
	}
	for i, c := range d.Columns() {
		attrs := []string{fmt.Sprintf("label=%q", columnLabel(c, opts.Detailed))}
		switch {
		case !c.Visible():
			attrs = append(attrs, "style=\"rounded,filled\"", "fillcolor=lightgrey", "fontcolor=gray40")
		case !c.Movable():
			attrs = append(attrs, "style=\"rounded,filled,dashed\"")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", columnID(i, c), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, b := range blocks {
		fmt.Fprintf(&buf, "  %q -> %q;\n", parentOf(blocks, b.Row, b.Start), b.ID())
	}
	for i, c := range d.Columns() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", parentOf(blocks, d.HeaderRowCount(), i), columnID(i, c))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// parentOf returns the deepest block above row that contains the column at
// index, or the root.
func parentOf(blocks []Block, row, index int) string {
	parent := "grid"
	for _, b := range blocks {
		if b.Row < row && b.Contains(index) {
			parent = b.ID()
		}
	}
	return parent
}

func columnID(index int, c *grid.Column) string {
	return fmt.Sprintf("c%d:%s", index, c.ID())
}

func blockLabel(b Block, detailed bool) string {
	if !detailed || b.Header.Scope == "" {
		return b.Header.Group
	}
	return b.Header.Group + "\nscope: " + b.Header.Scope
}

func columnLabel(c *grid.Column, detailed bool) string {
	if !detailed {
		return c.Title()
	}
	return c.Title() + "\nwidth: " + strconv.FormatFloat(c.Width(), 'f', -1, 64)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
