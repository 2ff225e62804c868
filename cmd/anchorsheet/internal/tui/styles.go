package tui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	secondary = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#9A9A9A"}
	water     = lipgloss.AdaptiveColor{Light: "#A7C7E7", Dark: "#1F3B57"}
	land      = lipgloss.AdaptiveColor{Light: "#E8E4D8", Dark: "#2B2A26"}

	mapStyle = lipgloss.NewStyle().
			Foreground(subtle).
			Background(land)

	waterStyle = lipgloss.NewStyle().
			Foreground(highlight).
			Background(water)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(lipgloss.Color("#FFF7DB")).
			Background(highlight)

	handleStyle = lipgloss.NewStyle().
			Foreground(secondary).
			Align(lipgloss.Center)

	searchStyle = lipgloss.NewStyle().
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(secondary).
			PaddingLeft(1)

	linkStyle = lipgloss.NewStyle().
			Foreground(highlight)

	rowStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedRowStyle = rowStyle.
				Foreground(special).
				Bold(true)

	separatorStyle = lipgloss.NewStyle().
			Foreground(subtle).
			PaddingLeft(1)

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true)

	fadedStyle = lipgloss.NewStyle().Faint(true)
)
