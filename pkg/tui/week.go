package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/grid"
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/task"
)

const weekCellWidth = 16

// renderWeek draws the 7-day week grid with one row per hour slot. Hour
// rows outside business hours are skipped unless they hold a task or the
// selection, to keep the grid inside a terminal page. Tasks colliding in
// a slot are cascaded: each later task is narrower and shifted right, so
// every one stays visible.
func renderWeek(th Theme, st *app.State, sel time.Time, selHour int, now time.Time) string {
	cells := st.Cells()
	visible := st.Visible()

	byDay := make([]map[int][]task.Task, len(cells))
	for i, cell := range cells {
		byDay[i] = layout.ByHour(query.ForDate(visible, cell.Date))
	}

	var header []string
	header = append(header, strings.Repeat(" ", 6))
	for _, cell := range cells {
		style := th.DayHeader
		if sameDay(cell.Date, now) {
			style = th.DayHeader.Copy().Inherit(th.Today)
		}
		header = append(header, style.Render(pad(cell.Date.Format("Mon 2"), weekCellWidth)))
	}

	lines := []string{strings.Join(header, "")}
	for hour := 0; hour < grid.HoursPerDay; hour++ {
		if !showHour(byDay, hour, selHour) {
			continue
		}

		var blocks []string
		label := th.HourLabel.Render(fmt.Sprintf("%02d:00 ", hour))
		if hour == selHour {
			label = th.Selected.Render(fmt.Sprintf("%02d:00", hour)) + " "
		}
		blocks = append(blocks, label)

		for i, cell := range cells {
			selected := sameDay(cell.Date, sel) && hour == selHour
			blocks = append(blocks, renderSlot(th, byDay[i][hour], hour, selected))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	return strings.Join(lines, "\n")
}

// showHour keeps business hours always on screen and otherwise only
// renders hour rows that hold tasks or the selection.
func showHour(byDay []map[int][]task.Task, hour, selHour int) bool {
	if hour >= 8 && hour <= 18 {
		return true
	}
	if hour == selHour {
		return true
	}
	for _, day := range byDay {
		if len(day[hour]) > 0 {
			return true
		}
	}
	return false
}

// renderSlot cascades the slot's tasks: task i is indented by its left
// offset and truncated to its width, earlier tasks listed first (they
// stack on top).
func renderSlot(th Theme, tasks []task.Task, hour int, selected bool) string {
	base := th.Day
	if hour >= 9 && hour <= 17 {
		base = th.BusinessHour
	}

	if len(tasks) == 0 {
		line := strings.Repeat(" ", weekCellWidth)
		if selected {
			return th.Selected.Render(line)
		}
		return base.Render(line)
	}

	placements := layout.Cascade(len(tasks))
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		offset := placements[i].LeftPct * weekCellWidth / 100
		width := placements[i].WidthPct * weekCellWidth / 100
		text := strings.Repeat(" ", offset) + pad(t.Title, width)
		style := th.Status(t.Status)
		if selected && i == 0 {
			style = th.Selected
		}
		lines = append(lines, style.Render(pad(text, weekCellWidth)))
	}
	return strings.Join(lines, "\n")
}
