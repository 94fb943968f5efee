package term

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")  // Teal - headers
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - handles
	colorDim   = lipgloss.Color("240") // Dim gray - collapsed rows
	colorPanel = lipgloss.Color("236") // Dark gray - pinned columns
	colorAmber = lipgloss.Color("220") // Amber - drag highlight
)

// =============================================================================
// Theme
// =============================================================================

// Theme maps cell styles to lipgloss styles.
type Theme struct {
	Body      lipgloss.Style
	Header    lipgloss.Style
	Handle    lipgloss.Style
	Collapsed lipgloss.Style
	Floating  lipgloss.Style
	Highlight lipgloss.Style
}

// DefaultTheme returns the theme used by the CLI.
func DefaultTheme() Theme {
	return Theme{
		Body:      lipgloss.NewStyle().Foreground(colorWhite),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(colorCyan),
		Handle:    lipgloss.NewStyle().Foreground(colorGray),
		Collapsed: lipgloss.NewStyle().Foreground(colorDim).Italic(true),
		Floating:  lipgloss.NewStyle().Foreground(colorWhite).Background(colorPanel),
		Highlight: lipgloss.NewStyle().Reverse(true).Foreground(colorAmber),
	}
}

// PlainTheme renders every style as unstyled text.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{Body: s, Header: s, Handle: s, Collapsed: s, Floating: s, Highlight: s}
}

// Style returns the lipgloss style for st.
func (th Theme) Style(st Style) lipgloss.Style {
	switch st {
	case StyleHeader:
		return th.Header
	case StyleHandle:
		return th.Handle
	case StyleCollapsed:
		return th.Collapsed
	case StyleFloating:
		return th.Floating
	case StyleHighlight:
		return th.Highlight
	default:
		return th.Body
	}
}
