package cli

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings of the demo.
type keyMap struct {
	quit    key.Binding
	edit    key.Binding
	commit  key.Binding
	cancel  key.Binding
	zoomIn  key.Binding
	zoomOut key.Binding
	reset   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit cell under pointer"),
		),
		commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		zoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		zoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		reset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset view"),
		),
	}
}

// editing switches the bindings between browsing and editing a cell.
func (k *keyMap) editing(on bool) {
	k.commit.SetEnabled(on)
	k.cancel.SetEnabled(on)
	k.edit.SetEnabled(!on)
	k.zoomIn.SetEnabled(!on)
	k.zoomOut.SetEnabled(!on)
	k.reset.SetEnabled(!on)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.edit, k.commit, k.cancel, k.zoomIn, k.zoomOut, k.reset, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.edit, k.commit, k.cancel},
		{k.zoomIn, k.zoomOut, k.reset},
		{k.quit},
	}
}
