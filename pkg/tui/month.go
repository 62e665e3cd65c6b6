package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/task"
)

const (
	monthCellWidth = 14
	monthCellTasks = 2
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// renderMonth draws the month grid: whole weeks with padding days dimmed,
// today and the selection highlighted, and up to two task lines per day.
func renderMonth(th Theme, st *app.State, sel, now time.Time) string {
	cells := st.Cells()
	byDate := layout.ByDate(st.Visible())

	var header []string
	for _, name := range weekdayNames {
		header = append(header, th.DayHeader.Render(pad(name, monthCellWidth)))
	}

	lines := []string{strings.Join(header, "")}
	for week := 0; week < len(cells)/7; week++ {
		var blocks []string
		for col := 0; col < 7; col++ {
			cell := cells[week*7+col]
			blocks = append(blocks, renderMonthCell(th, cell.Date, cell.InCurrentMonth,
				byDate[cell.Date.Format("2006-01-02")], sel, now))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	return strings.Join(lines, "\n")
}

func renderMonthCell(th Theme, day time.Time, inMonth bool, tasks []task.Task, sel, now time.Time) string {
	numStyle := th.Day
	if !inMonth {
		numStyle = th.Dim
	}
	if sameDay(day, now) {
		numStyle = th.Today
	}
	if sameDay(day, sel) {
		numStyle = th.Selected
	}

	lines := []string{numStyle.Render(fmt.Sprintf("%2d", day.Day())) + strings.Repeat(" ", monthCellWidth-2)}

	shown := len(tasks)
	if shown > monthCellTasks {
		shown = monthCellTasks
	}
	for _, t := range tasks[:shown] {
		line := glyph.ForStatus(t.Status).Symbol + " " + t.Title
		lines = append(lines, th.Status(t.Status).Render(pad(line, monthCellWidth)))
	}
	if rest := len(tasks) - shown; rest > 0 {
		lines = append(lines, th.Dim.Render(pad(fmt.Sprintf("+%d more", rest), monthCellWidth)))
	}
	for len(lines) < 1+monthCellTasks+1 {
		lines = append(lines, strings.Repeat(" ", monthCellWidth))
	}
	return strings.Join(lines, "\n")
}

// pad truncates or right-pads to the given width.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
