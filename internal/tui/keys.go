package tui

import "charm.land/bubbles/v2/key"

// browseKeyMap defines key bindings for browsing mode.
type browseKeyMap struct {
	FileNext key.Binding
	FilePrev key.Binding
	SeqNext  key.Binding
	SeqPrev  key.Binding
	QuickMin key.Binding
	QuickMax key.Binding
	Filter   key.Binding
	Quit     key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		FileNext: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next file"),
		),
		FilePrev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous file"),
		),
		SeqNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next record"),
		),
		SeqPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous record"),
		),
		QuickMin: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "min filter preset"),
		),
		QuickMax: key.NewBinding(
			key.WithKeys("M"),
			key.WithHelp("M", "max filter preset"),
		),
		Filter: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "enter filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
