// Package tui implements the interactive sequence explorer. It is a small
// bubbletea application that renders the growth of the Fibonacci sequence
// as a terminal chart and lets the user grow or shrink the number of terms.
package tui

import (
	"context"
	"fmt"
	"math/big"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/awij3301/fibonnaci/internal/chart"
	apperrors "github.com/awij3301/fibonnaci/internal/errors"
	"github.com/awij3301/fibonnaci/internal/fibonacci"
	"github.com/awij3301/fibonnaci/internal/ui"
)

const (
	// DefaultTermCount is the number of terms shown when none is configured.
	DefaultTermCount = 40
	// MaxTermCount bounds the explorer; beyond this the chart carries no
	// extra information and the value panel becomes unreadable.
	MaxTermCount = 500
	// MinTermCount is the smallest explorable sequence.
	MinTermCount = 1

	chartRows    = 8
	growBigStep  = 10
	headerHeight = 2
	footerHeight = 2
)

// Model is the root bubbletea model for the sequence explorer.
type Model struct {
	count        int
	initialCount int
	values       []*big.Int
	samples      *chart.RingBuffer

	keymap KeyMap
	help   help.Model

	width  int
	height int

	err      error
	exitCode int
}

// NewModel creates an explorer model starting at the given term count.
// Counts outside [MinTermCount, MaxTermCount] are clamped.
func NewModel(count int) Model {
	count = clampCount(count)
	m := Model{
		count:        count,
		initialCount: count,
		samples:      chart.NewRingBuffer(MaxTermCount),
		keymap:       DefaultKeyMap(),
		help:         help.New(),
		exitCode:     apperrors.ExitSuccess,
	}
	m.regenerate()
	return m
}

func clampCount(count int) int {
	if count < MinTermCount {
		return DefaultTermCount
	}
	if count > MaxTermCount {
		return MaxTermCount
	}
	return count
}

// regenerate recomputes the sequence and chart samples for the current
// count. Counts are bounded, so recomputing on every change stays cheap.
func (m *Model) regenerate() {
	values, err := fibonacci.Sequence(m.count)
	if err != nil {
		m.err = err
		m.exitCode = apperrors.ExitErrorGeneric
		return
	}
	m.values = values
	m.samples.Reset()
	for _, s := range chart.GrowthSeries(values) {
		m.samples.Push(s)
	}
}

// Init returns the initial command; the explorer is purely event-driven.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.samples.Resize(m.chartWidth() * 2) // braille packs 2 samples per column
		m.regenerate()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Grow):
		if m.count < MaxTermCount {
			m.count++
			m.regenerate()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Shrink):
		if m.count > MinTermCount {
			m.count--
			m.regenerate()
		}
		return m, nil

	case key.Matches(msg, m.keymap.GrowBig):
		m.count += growBigStep
		if m.count > MaxTermCount {
			m.count = MaxTermCount
		}
		m.regenerate()
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		m.count = m.initialCount
		m.regenerate()
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	return m, nil
}

// chartWidth returns the inner width available to the chart.
func (m Model) chartWidth() int {
	w := m.width - 4 // border and padding
	if w < 10 {
		w = 10
	}
	return w
}

// View renders the explorer: a header, the growth chart, the latest term
// summary, and the help footer.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	theme := ui.GetCurrentTUITheme()
	titleStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.Dim)
	errStyle := lipgloss.NewStyle().Foreground(theme.Error)

	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n" + m.help.View(m.keymap)
	}

	header := titleStyle.Render("Fibonacci sequence explorer") +
		dimStyle.Render(fmt.Sprintf("  %d terms", m.count))

	// The ring buffer keeps only as many samples as the chart can plot.
	title := fmt.Sprintf("Fibonacci growth, F(0)..F(%d)", m.count-1)
	caption := fmt.Sprintf("bits, max %d", m.values[len(m.values)-1].BitLen())
	body := chart.RenderSamplesChart(m.samples.Slice(), title, caption, m.chartWidth(), chartRows)

	last := m.values[len(m.values)-1]
	summary := dimStyle.Render(fmt.Sprintf("F(%d) has %d digits (%d bits)",
		m.count-1, len(last.String()), last.BitLen()))

	footer := m.help.View(m.keymap)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, summary, footer)
}

// Run is the public entry point for the TUI mode. It creates the bubbletea
// program, runs it until the user quits, and returns the exit code.
func Run(ctx context.Context, count int) int {
	model := NewModel(count)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}
