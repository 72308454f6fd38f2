// Package ui owns terminal theming. It holds the ANSI color schemes used by
// the CLI output and the lipgloss palettes used by the TUI explorer and the
// charts, and exposes accessor functions so theme switches (including
// NO_COLOR) take effect everywhere at once.
package ui
