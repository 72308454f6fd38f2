// Package chart renders terminal charts of Fibonacci sequence growth.
// It offers a compact sparkline built from Unicode block elements and a
// higher-resolution braille dot chart, both suitable for plain CLI output
// and for embedding in the TUI explorer.
package chart

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/awij3301/fibonnaci/internal/ui"
)

// sparklineChars maps values 0..7 to Unicode block elements ▁▂▃▄▅▆▇█.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// GrowthSeries converts a Fibonacci sequence into normalized growth samples
// in [0, 100]. The sample for each term is its size in bits relative to the
// largest term, which makes the exponential growth of the sequence readable
// on a linear chart.
func GrowthSeries(values []*big.Int) []float64 {
	if len(values) == 0 {
		return nil
	}
	maxBits := 0
	for _, v := range values {
		if b := v.BitLen(); b > maxBits {
			maxBits = b
		}
	}
	samples := make([]float64, len(values))
	if maxBits == 0 {
		return samples
	}
	for i, v := range values {
		samples[i] = float64(v.BitLen()) / float64(maxBits) * 100.0
	}
	return samples
}

// RenderSparkline converts values (0..100) into a sparkline string using
// Unicode block elements. Out-of-range values are clamped.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	runes := make([]rune, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		idx := int(v / 100.0 * 7.0)
		if idx > 7 {
			idx = 7
		}
		runes[i] = sparklineChars[idx]
	}
	return string(runes)
}

// brailleDots maps (col 0-1, row 0-3) to the braille dot bit offsets.
// Braille character = U+2800 + sum of activated dot bits.
// Column 0: dots 1,2,3,7 (bits 0,1,2,6)
// Column 1: dots 4,5,6,8 (bits 3,4,5,7)
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40}, // left column
	{0x08, 0x10, 0x20, 0x80}, // right column
}

// RenderBrailleChart renders values (0..100) as a multi-row braille dot
// chart. Each braille character is 2 columns wide and 4 rows tall in the
// dot grid. The chart has rows text rows and width character columns;
// values are plotted right-aligned (most recent on the right).
func RenderBrailleChart(values []float64, width, rows int) []string {
	if width <= 0 || rows <= 0 || len(values) == 0 {
		return nil
	}

	dotRows := rows * 4
	dotCols := width * 2

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}

	startIdx := 0
	if len(values) > dotCols {
		startIdx = len(values) - dotCols
	}

	for i := startIdx; i < len(values); i++ {
		dotCol := (i - startIdx) + (dotCols - min(len(values), dotCols))
		v := values[i]
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}

		// Map value to dot row (0 = top, dotRows-1 = bottom)
		dotRow := dotRows - 1 - int(v/100.0*float64(dotRows-1))
		if dotRow < 0 {
			dotRow = 0
		}
		if dotRow >= dotRows {
			dotRow = dotRows - 1
		}

		charCol := dotCol / 2
		charRow := dotRow / 4
		subCol := dotCol % 2
		subRow := dotRow % 4

		if charCol >= 0 && charCol < width && charRow >= 0 && charRow < rows {
			grid[charRow][charCol] |= brailleDots[subCol][subRow]
		}
	}

	result := make([]string, rows)
	for r := range grid {
		result[r] = string(grid[r])
	}
	return result
}

// RenderSamplesChart renders normalized samples (0..100) as a framed
// braille chart with a title and a caption. The frame and accents follow
// the active theme.
func RenderSamplesChart(samples []float64, title, caption string, width, rows int) string {
	if len(samples) == 0 {
		return ""
	}
	if width <= 0 {
		width = 60
	}
	if rows <= 0 {
		rows = 8
	}

	theme := ui.GetCurrentTUITheme()
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.Dim)

	var body strings.Builder
	body.WriteString(titleStyle.Render(title))
	body.WriteByte('\n')
	for _, line := range RenderBrailleChart(samples, width, rows) {
		body.WriteString(line)
		body.WriteByte('\n')
	}
	body.WriteString(dimStyle.Render(caption))

	return borderStyle.Render(body.String())
}

// RenderGrowthChart renders a framed braille chart of the sequence growth.
func RenderGrowthChart(values []*big.Int, width, rows int) string {
	samples := GrowthSeries(values)
	if len(samples) == 0 {
		return ""
	}
	title := fmt.Sprintf("Fibonacci growth, F(0)..F(%d)", len(values)-1)
	caption := fmt.Sprintf("bits, max %d", maxBitLen(values))
	return RenderSamplesChart(samples, title, caption, width, rows)
}

func maxBitLen(values []*big.Int) int {
	maxBits := 0
	for _, v := range values {
		if b := v.BitLen(); b > maxBits {
			maxBits = b
		}
	}
	return maxBits
}
