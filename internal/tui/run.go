package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/seqwell/seqscope/internal/catalog"
	"github.com/seqwell/seqscope/internal/config"
	"github.com/seqwell/seqscope/internal/tuilog"
)

// Run starts the interactive browser over a built catalog. When watching
// is enabled the staleness callback is delivered into the event loop as
// a message, so it is processed like any other input event.
func Run(cat *catalog.Catalog, cfg config.Config, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewModel(cat, cfg), opts...)

	if cfg.Watch {
		if err := cat.Watch(func() { p.Send(CatalogStaleMsg{}) }); err != nil {
			tuilog.Log.Warn("catalog watch unavailable", "error", err)
		}
		defer cat.Close()
	}

	tuilog.Log.Info("starting TUI", "files", cat.Len())
	_, err := p.Run()
	tuilog.Log.Info("TUI exited", "error", err)
	return err
}
