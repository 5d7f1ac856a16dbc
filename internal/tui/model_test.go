package tui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/seqwell/seqscope/internal/catalog"
	"github.com/seqwell/seqscope/internal/config"
	"github.com/seqwell/seqscope/internal/controller"
)

func newTestModel(files int) Model {
	byPath := make(map[string][]int, files)
	for i := 0; i < files; i++ {
		byPath[fmt.Sprintf("/data/f%02d.fasta", i)] = []int{10, 20, 30}
	}
	return NewModel(catalog.New(byPath), config.Default())
}

func TestRenderFileListMarksSelection(t *testing.T) {
	m := newTestModel(3)
	out := m.renderFileList(80, 10)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "> ") || !strings.Contains(lines[0], "f00.fasta") {
		t.Errorf("first line should be the marked selection: %q", lines[0])
	}
	if strings.Contains(lines[1], "> ") {
		t.Errorf("unselected line has marker: %q", lines[1])
	}
}

func TestRenderFileListWindowsAroundSelection(t *testing.T) {
	m := newTestModel(20)
	for i := 0; i < 15; i++ {
		m.ctrl.Handle(controller.Key(controller.FileNext))
	}

	out := m.renderFileList(80, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 visible lines, got %d", len(lines))
	}
	if !strings.Contains(lines[4], "> ") || !strings.Contains(lines[4], "f15.fasta") {
		t.Errorf("selection should be the last visible row: %q", lines[4])
	}
}

func TestRenderFilterInfoShowsBufferInFilterMode(t *testing.T) {
	m := newTestModel(1)
	m.ctrl.Handle(controller.Key(controller.StartFilter))
	m.ctrl.Handle(controller.Rune('1'))
	m.ctrl.Handle(controller.Rune('0'))

	out := m.renderFilterInfo()
	if !strings.Contains(out, "10") {
		t.Fatalf("filter prompt should show the live buffer: %q", out)
	}
}

func TestRenderFilterInfoShowsRangeAndTotals(t *testing.T) {
	m := newTestModel(1)
	out := m.renderFilterInfo()
	if !strings.Contains(out, "0-∞") {
		t.Errorf("info should show the unbounded range: %q", out)
	}
	if !strings.Contains(out, "3") {
		t.Errorf("info should show the filtered total: %q", out)
	}
}
