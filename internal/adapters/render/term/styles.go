package term

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	system      lipgloss.Style
	info        lipgloss.Style
	warning     lipgloss.Style
	errText     lipgloss.Style
	output      lipgloss.Style
	timestamp   lipgloss.Style
	author      lipgloss.Style
	authorSelf  lipgloss.Style
	body        lipgloss.Style
	pending     lipgloss.Style
	failed      lipgloss.Style
	channelName lipgloss.Style
	creator     lipgloss.Style
	empty       lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		system:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		info:        lipgloss.NewStyle().Faint(true),
		warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		errText:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		output:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		timestamp:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		author:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		authorSelf:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		pending:     lipgloss.NewStyle().Faint(true),
		failed:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		channelName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		creator:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:       lipgloss.NewStyle().Faint(true),
	}
}
