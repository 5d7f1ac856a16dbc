package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/seqwell/seqscope/internal/catalog"
	"github.com/seqwell/seqscope/internal/config"
	"github.com/seqwell/seqscope/internal/controller"
	"github.com/seqwell/seqscope/internal/i18n"
)

// Model is the top-level bubbletea model. It owns the Controller and
// translates key presses into controller events; everything it renders
// comes from the controller's snapshot.
type Model struct {
	ctrl    *controller.Controller
	cat     *catalog.Catalog
	keys    browseKeyMap
	presets controller.Presets

	width  int
	height int
	ready  bool
	stale  bool
}

// NewModel creates the TUI model over a built catalog.
func NewModel(cat *catalog.Catalog, cfg config.Config) Model {
	presets := controller.Presets{Min: cfg.QuickMin, Max: cfg.QuickMax}
	return Model{
		ctrl:    controller.New(cat, presets),
		cat:     cat,
		keys:    defaultBrowseKeyMap(),
		presets: presets,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case CatalogStaleMsg:
		m.stale = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ctrl.Mode() == controller.FilterInput {
		m.handleFilterKey(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Handle(controller.Key(controller.Quit))
		if m.ctrl.Done() {
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.FileNext):
		m.ctrl.Handle(controller.Key(controller.FileNext))
	case key.Matches(msg, m.keys.FilePrev):
		m.ctrl.Handle(controller.Key(controller.FilePrev))
	case key.Matches(msg, m.keys.SeqNext):
		m.ctrl.Handle(controller.Key(controller.SeqNext))
	case key.Matches(msg, m.keys.SeqPrev):
		m.ctrl.Handle(controller.Key(controller.SeqPrev))
	case key.Matches(msg, m.keys.QuickMin):
		m.ctrl.Handle(controller.Key(controller.QuickMin))
	case key.Matches(msg, m.keys.QuickMax):
		m.ctrl.Handle(controller.Key(controller.QuickMax))
	case key.Matches(msg, m.keys.Filter):
		m.ctrl.Handle(controller.Key(controller.StartFilter))
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) {
	switch s := msg.String(); s {
	case "enter":
		m.ctrl.Handle(controller.Key(controller.CommitFilter))
	case "esc":
		m.ctrl.Handle(controller.Key(controller.CancelFilter))
	case "backspace":
		m.ctrl.Handle(controller.Key(controller.Backspace))
	case "space":
		m.ctrl.Handle(controller.Rune(' '))
	default:
		if utf8.RuneCountInString(s) == 1 {
			r, _ := utf8.DecodeRuneInString(s)
			m.ctrl.Handle(controller.Rune(r))
		}
	}
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if !m.ready {
		v := tea.NewView(i18n.T("tui.loading", "Loading..."))
		v.AltScreen = true
		return v
	}

	filesHeight := m.height * 20 / 100
	if filesHeight < 5 {
		filesHeight = 5
	}
	bottomHeight := m.height - filesHeight - 1

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth

	files := renderPane(
		i18n.T("tui.files.title", "Sequence Files"),
		m.renderFileList(m.width-2, filesHeight-3),
		m.width, filesHeight,
	)

	histTitle := i18n.T("tui.histogram.title", "Length Bins (filtered)")
	hist := renderPane(
		histTitle,
		renderHistogram(m.ctrl.Snapshot().Bins, leftWidth-2, bottomHeight-3),
		leftWidth, bottomHeight,
	)

	infoHeight := bottomHeight * 60 / 100
	controlsHeight := bottomHeight - infoHeight
	info := renderPane(
		i18n.T("tui.filter.title", "Filter & Info"),
		m.renderFilterInfo(),
		rightWidth, infoHeight,
	)
	controls := renderPane(
		i18n.T("tui.controls.title", "Controls"),
		m.renderControls(),
		rightWidth, controlsHeight,
	)

	right := lipgloss.JoinVertical(lipgloss.Left, info, controls)
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, hist, right)
	content := lipgloss.JoinVertical(lipgloss.Left, files, bottom)

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

// renderFileList keeps the selected row visible by windowing the file
// list around the selection.
func (m Model) renderFileList(width, height int) string {
	count := m.cat.Len()
	if count == 0 {
		return ""
	}
	if height < 1 {
		height = 1
	}

	selected := m.ctrl.FileIndex()
	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	end := start + height
	if end > count {
		end = count
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			b.WriteByte('\n')
		}
		line := "  " + m.cat.File(i).Path()
		if i == selected {
			line = selectedFileStyle.Render("> " + m.cat.File(i).Path())
		}
		if lipgloss.Width(line) > width {
			line = line[:width]
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m Model) renderFilterInfo() string {
	var lines []string
	if m.ctrl.Mode() == controller.FilterInput {
		lines = append(lines, filterActiveStyle.Render(
			i18n.Tf("tui.filter.prompt", "Filter (min-max): %s", m.ctrl.Buffer()+"▌")))
	} else {
		lines = append(lines, i18n.Tf("tui.filter.info", "Filter: %s | Total: %d | Selected len: %d",
			m.ctrl.Filter().String(),
			len(m.ctrl.Snapshot().Lengths),
			m.ctrl.SelectedLength()))
	}
	if m.stale {
		lines = append(lines, staleStyle.Render(i18n.T("tui.stale", "catalog changed on disk")))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderControls() string {
	entries := []struct {
		keys key.Binding
		text string
	}{
		{m.keys.Quit, "quit"},
		{m.keys.FilePrev, "files"},
		{m.keys.SeqPrev, "records"},
		{m.keys.Filter, "filter"},
		{m.keys.QuickMin, fmt.Sprintf("min %d", m.presets.Min)},
		{m.keys.QuickMax, fmt.Sprintf("max %d", m.presets.Max)},
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = helpKeyStyle.Render(e.keys.Help().Key) + helpTextStyle.Render(":"+e.text)
	}
	return strings.Join(parts, "  ")
}

func renderPane(title, content string, width, height int) string {
	body := paneTitleStyle.Render(title) + "\n" + content
	return paneBorderStyle.
		Width(width - 2).
		Height(height - 2).
		MaxHeight(height).
		Render(body)
}
