// Package render groups the grid renderers.
//
// # Overview
//
//   - Terminal text (in [term] subpackage): draws widgets cell by cell,
//     used by the interactive demo, the trace replay and the HTTP driver
//   - Node-link diagrams (in [nodelink] subpackage): the header block
//     hierarchy of a grid as Graphviz DOT or SVG
//
// # Terminal Rendering
//
//	r := term.New(data)
//	w := canvas.NewWidget(data, r)
//	screen := term.NewScreen(80, 24)
//	r.Draw(screen, w, viewport.Transform(), state.Highlight())
//	fmt.Println(screen.Render(term.DefaultTheme()))
//
// # Node-Link Diagrams
//
//	dot := nodelink.ToDOT(data, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [term]: github.com/matzehuels/gridwork/pkg/render/term
// [nodelink]: github.com/matzehuels/gridwork/pkg/render/nodelink
package render
