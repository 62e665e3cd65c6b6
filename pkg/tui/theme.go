package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/planner/pkg/task"
)

// Theme holds the lipgloss styles for one color mode.
type Theme struct {
	Header       lipgloss.Style
	DayHeader    lipgloss.Style
	Dim          lipgloss.Style
	Day          lipgloss.Style
	Today        lipgloss.Style
	Selected     lipgloss.Style
	BusinessHour lipgloss.Style
	HourLabel    lipgloss.Style
	Help         lipgloss.Style
	Error        lipgloss.Style
	Dragging     lipgloss.Style

	status map[task.Status]lipgloss.Style
}

// Status returns the style for a task status.
func (t Theme) Status(s task.Status) lipgloss.Style {
	if style, ok := t.status[s]; ok {
		return style
	}
	return t.Day
}

// Light is the default palette.
func Light() Theme {
	return Theme{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		DayHeader:    lipgloss.NewStyle().Bold(true).Underline(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Day:          lipgloss.NewStyle(),
		Today:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		Selected:     lipgloss.NewStyle().Reverse(true),
		BusinessHour: lipgloss.NewStyle().Background(lipgloss.Color("255")),
		HourLabel:    lipgloss.NewStyle().Faint(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Dragging:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("99")),
		status: map[task.Status]lipgloss.Style{
			task.StatusUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("27")),
			task.StatusDueSoon:   lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
			task.StatusOverdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			task.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("28")).Strikethrough(true),
		},
	}
}

// Dark is the palette used when dark mode is on.
func Dark() Theme {
	return Theme{
		Header:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		DayHeader:    lipgloss.NewStyle().Bold(true).Underline(true),
		Dim:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Day:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Today:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		Selected:     lipgloss.NewStyle().Reverse(true),
		BusinessHour: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		HourLabel:    lipgloss.NewStyle().Faint(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dragging:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("141")),
		status: map[task.Status]lipgloss.Style{
			task.StatusUpcoming:  lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
			task.StatusDueSoon:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
			task.StatusOverdue:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			task.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("114")).Strikethrough(true),
		},
	}
}
