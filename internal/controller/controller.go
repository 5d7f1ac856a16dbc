// Package controller owns the navigation state of the browser and drives
// recomputation. All mutation goes through Handle, which implements a
// small two-mode state machine: Browsing for selection movement and quick
// filters, FilterInput for typing a length range. Recompute is total and
// idempotent, so every relevant transition simply recomputes the whole
// snapshot from the selected file's raw lengths.
package controller

import (
	"strconv"
	"strings"

	"github.com/seqwell/seqscope/internal/catalog"
	"github.com/seqwell/seqscope/internal/histogram"
)

// Mode is the input mode of the state machine.
type Mode int

const (
	// Browsing handles selection movement, quick filters and quit.
	Browsing Mode = iota
	// FilterInput collects a "min-max" range into the text buffer.
	FilterInput
)

// EventKind enumerates the discrete input events the controller accepts.
type EventKind int

const (
	FileNext EventKind = iota
	FilePrev
	SeqNext
	SeqPrev
	QuickMin
	QuickMax
	StartFilter
	InputRune
	Backspace
	CancelFilter
	CommitFilter
	Quit
)

// Event is one discrete input event. Rune is set only for InputRune.
type Event struct {
	Kind EventKind
	Rune rune
}

// Key builds an event with no rune payload.
func Key(kind EventKind) Event { return Event{Kind: kind} }

// Rune builds a character-input event.
func Rune(r rune) Event { return Event{Kind: InputRune, Rune: r} }

// Presets are the bounds applied by the two quick-filter shortcuts.
type Presets struct {
	Min int
	Max int
}

// DefaultPresets mirrors the m/M shortcuts: min 1000, max 10000.
func DefaultPresets() Presets { return Presets{Min: 1000, Max: 10000} }

// Controller holds the selection indices, active filter range, input
// buffer and the current analytics snapshot. It is the exclusive owner
// of all of them; nothing else writes this state.
type Controller struct {
	cat     *catalog.Catalog
	presets Presets

	fileIdx int
	seqIdx  int
	filter  histogram.Range
	mode    Mode
	buffer  string
	done    bool

	raw      []int
	snapshot histogram.Snapshot
}

// New selects the first file of the catalog and computes the initial
// snapshot under the identity filter.
func New(cat *catalog.Catalog, presets Presets) *Controller {
	c := &Controller{
		cat:     cat,
		presets: presets,
		filter:  histogram.All(),
	}
	c.loadSelected()
	return c
}

// Handle processes one input event to completion. Events that have no
// meaning in the current mode are no-ops.
func (c *Controller) Handle(ev Event) {
	if c.mode == FilterInput {
		c.handleFilterInput(ev)
		return
	}
	c.handleBrowsing(ev)
}

func (c *Controller) handleBrowsing(ev Event) {
	switch ev.Kind {
	case FileNext:
		if c.fileIdx < c.cat.Len()-1 {
			c.fileIdx++
			c.loadSelected()
		}
	case FilePrev:
		if c.fileIdx > 0 {
			c.fileIdx--
			c.loadSelected()
		}
	case SeqNext:
		if c.seqIdx < len(c.snapshot.Lengths)-1 {
			c.seqIdx++
		}
	case SeqPrev:
		if c.seqIdx > 0 {
			c.seqIdx--
		}
	case QuickMin:
		c.filter.Min = c.presets.Min
		c.recompute()
	case QuickMax:
		c.filter.Max = c.presets.Max
		c.recompute()
	case StartFilter:
		c.buffer = ""
		c.mode = FilterInput
	case Quit:
		c.done = true
	}
}

func (c *Controller) handleFilterInput(ev Event) {
	switch ev.Kind {
	case InputRune:
		c.buffer += string(ev.Rune)
	case Backspace:
		if len(c.buffer) > 0 {
			c.buffer = c.buffer[:len(c.buffer)-1]
		}
	case CancelFilter:
		c.buffer = ""
		c.mode = Browsing
	case CommitFilter:
		// Malformed input is discarded without touching the filter and
		// without surfacing an error.
		if r, ok := parseRange(c.buffer); ok {
			c.filter = r
			c.recompute()
		}
		c.buffer = ""
		c.mode = Browsing
	}
}

// parseRange parses exactly two hyphen-separated natural-number tokens.
func parseRange(input string) (histogram.Range, bool) {
	parts := strings.Split(strings.TrimSpace(input), "-")
	if len(parts) != 2 {
		return histogram.Range{}, false
	}
	min, err := strconv.ParseUint(parts[0], 10, 63)
	if err != nil {
		return histogram.Range{}, false
	}
	max, err := strconv.ParseUint(parts[1], 10, 63)
	if err != nil {
		return histogram.Range{}, false
	}
	return histogram.Range{Min: int(min), Max: int(max)}, true
}

// loadSelected pulls the selected file's raw lengths and recomputes.
func (c *Controller) loadSelected() {
	if c.cat.Len() == 0 {
		c.raw = nil
		c.snapshot = histogram.Snapshot{}
		c.seqIdx = 0
		return
	}
	c.raw = c.cat.File(c.fileIdx).Lengths()
	c.recompute()
}

// recompute rebuilds the snapshot from raw under the active filter and
// re-clamps the sequence selection to the new filtered size.
func (c *Controller) recompute() {
	c.snapshot = histogram.Compute(c.raw, c.filter)
	if n := len(c.snapshot.Lengths); c.seqIdx >= n {
		c.seqIdx = n - 1
	}
	if c.seqIdx < 0 {
		c.seqIdx = 0
	}
}

// Mode returns the current input mode.
func (c *Controller) Mode() Mode { return c.mode }

// Buffer returns the filter input buffer.
func (c *Controller) Buffer() string { return c.buffer }

// FileIndex returns the selected file index.
func (c *Controller) FileIndex() int { return c.fileIdx }

// SeqIndex returns the selected sequence index within the filtered
// lengths.
func (c *Controller) SeqIndex() int { return c.seqIdx }

// Filter returns the active filter range.
func (c *Controller) Filter() histogram.Range { return c.filter }

// Snapshot returns the current analytics snapshot.
func (c *Controller) Snapshot() histogram.Snapshot { return c.snapshot }

// SelectedFile returns the selected file, or nil for an empty catalog.
func (c *Controller) SelectedFile() *catalog.SequenceFile {
	if c.cat.Len() == 0 {
		return nil
	}
	return c.cat.File(c.fileIdx)
}

// SelectedLength returns the length of the selected record, or 0 when
// the filtered list is empty.
func (c *Controller) SelectedLength() int {
	if c.seqIdx >= len(c.snapshot.Lengths) {
		return 0
	}
	return c.snapshot.Lengths[c.seqIdx]
}

// Done reports whether a Quit event ended the session.
func (c *Controller) Done() bool { return c.done }
