package tui

import (
	"fmt"
	"strings"

	"github.com/seqwell/seqscope/internal/histogram"
	"github.com/seqwell/seqscope/internal/i18n"
)

// renderHistogram draws one bar per bin, scaled to the widest bar that
// fits. Bins beyond the pane height are dropped from the bottom.
func renderHistogram(bins []histogram.Bin, width, height int) string {
	if len(bins) == 0 {
		return helpTextStyle.Render(i18n.T("tui.histogram.empty", "no records in range"))
	}

	maxCount := 1
	labelWidth := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
		if len(b.Label) > labelWidth {
			labelWidth = len(b.Label)
		}
	}

	countWidth := len(fmt.Sprintf("%d", maxCount))
	barWidth := width - labelWidth - countWidth - 3
	if barWidth < 1 {
		barWidth = 1
	}

	shown := bins
	if height > 0 && len(shown) > height {
		shown = shown[:height]
	}

	var b strings.Builder
	for i, bin := range shown {
		if i > 0 {
			b.WriteByte('\n')
		}
		n := bin.Count * barWidth / maxCount
		if bin.Count > 0 && n == 0 {
			n = 1
		}
		b.WriteString(binLabelStyle.Render(fmt.Sprintf("%*s", labelWidth, bin.Label)))
		b.WriteByte(' ')
		b.WriteString(barCountStyle.Render(fmt.Sprintf("%*d", countWidth, bin.Count)))
		b.WriteByte(' ')
		b.WriteString(barStyle.Render(strings.Repeat("█", n)))
	}
	return b.String()
}
