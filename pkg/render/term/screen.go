package term

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Style classifies a screen cell for theming.
type Style uint8

const (
	StyleBody Style = iota
	StyleHeader
	StyleHandle
	StyleCollapsed
	StyleFloating
	StyleHighlight
)

// Screen is a fixed-size grid of terminal cells. A wide rune occupies its
// cell and a zero placeholder in the cell to its right.
type Screen struct {
	width, height int
	runes         [][]rune
	styles        [][]Style
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: max(width, 0), height: max(height, 0)}
	s.runes = make([][]rune, s.height)
	s.styles = make([][]Style, s.height)
	for y := range s.runes {
		s.runes[y] = []rune(strings.Repeat(" ", s.width))
		s.styles[y] = make([]Style, s.width)
	}
	return s
}

// Size returns the screen dimensions in cells.
func (s *Screen) Size() (width, height int) { return s.width, s.height }

// Put writes cells starting at (x, y), clipping at the screen edges.
func (s *Screen) Put(x, y int, cells []rune, st Style) {
	if y < 0 || y >= s.height {
		return
	}
	for i, r := range cells {
		cx := x + i
		if cx < 0 || cx >= s.width {
			continue
		}
		s.runes[y][cx] = r
		s.styles[y][cx] = st
	}
	// A wide rune split by a screen edge would shift the line.
	if i := -x; i > 0 && i < len(cells) && cells[i] == 0 && s.width > 0 {
		s.runes[y][0] = ' '
	}
	if i := s.width - x; i > 0 && i < len(cells) && cells[i] == 0 {
		s.runes[y][s.width-1] = ' '
	}
}

// Restyle changes the style of a rectangle of cells.
func (s *Screen) Restyle(x, y, w, h int, st Style) {
	for cy := max(y, 0); cy < min(y+h, s.height); cy++ {
		for cx := max(x, 0); cx < min(x+w, s.width); cx++ {
			s.styles[cy][cx] = st
		}
	}
}

// StyleAt returns the style of a cell.
func (s *Screen) StyleAt(x, y int) Style {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return StyleBody
	}
	return s.styles[y][x]
}

// Lines returns the screen as plain text.
func (s *Screen) Lines() []string {
	out := make([]string, s.height)
	for y, row := range s.runes {
		out[y] = runeString(row)
	}
	return out
}

// String returns the screen as plain text lines.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Render returns the screen styled with th.
func (s *Screen) Render(th Theme) string {
	lines := make([]string, s.height)
	for y := range s.runes {
		var b strings.Builder
		start := 0
		for x := 1; x <= s.width; x++ {
			if x < s.width && s.styles[y][x] == s.styles[y][start] {
				continue
			}
			b.WriteString(th.Style(s.styles[y][start]).Render(runeString(s.runes[y][start:x])))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func runeString(cells []rune) string {
	var b strings.Builder
	for _, r := range cells {
		if r != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Cells lays s out in exactly width terminal cells, truncating with an
// ellipsis or padding with spaces. Zero-width runes are dropped.
func Cells(s string, width int) []rune {
	if width <= 0 {
		return nil
	}
	out := make([]rune, 0, width)
	limit := width
	truncated := runewidth.StringWidth(s) > width
	if truncated {
		limit = width - 1
	}

	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if w+rw > limit {
			break
		}
		out = append(out, r)
		if rw == 2 {
			out = append(out, 0)
		}
		w += rw
	}
	if truncated {
		out = append(out, '…')
	}
	for len(out) < width {
		out = append(out, ' ')
	}
	return out
}

// Fit is [Cells] as a string.
func Fit(s string, width int) string {
	return runeString(Cells(s, width))
}
