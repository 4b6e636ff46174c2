package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true)
	styleHeader   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ebdbb2")).Bold(true)
	styleDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleGutter   = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleTask     = lipgloss.NewStyle().Foreground(lipgloss.Color("#1d2021")).Background(lipgloss.Color("#83a598"))
	styleTaskDrag = lipgloss.NewStyle().Foreground(lipgloss.Color("#1d2021")).Background(lipgloss.Color("#fabd2f"))
	styleChip     = lipgloss.NewStyle().Foreground(lipgloss.Color("#83a598"))
	styleDone     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	styleStatus   = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374")).Italic(true)
)
