package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/grid"
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/task"
)

const monthWidth = len("Su Mo Tu We Th Fr Sa")

// Month prints the month grid for the anchor date. Days outside the
// anchor month are dimmed, today is bold, and days with tasks are
// highlighted.
func (pp *PrettyPrint) Month(anchor time.Time, tasks []task.Task) {
	now := time.Now()
	byDate := layout.ByDate(tasks)

	tf := color.New(color.FgWhite, color.Italic)
	title := anchor.Format("January 2006")
	mid := (monthWidth - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)

	h := color.New(color.Underline)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	dim := color.New(color.Faint, color.FgWhite)
	plain := color.New(color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.FgHiCyan)

	for i, cell := range grid.Generate(anchor, grid.ModeMonth) {
		printer := plain
		if !cell.InCurrentMonth {
			printer = dim
		}
		if len(byDate[cell.Date.Format("2006-01-02")]) > 0 {
			printer = busy
		}
		if sameDay(cell.Date, now) {
			printer = today
		}
		_, _ = printer.Printf("%2d", cell.Date.Day())

		if (i+1)%7 == 0 {
			fmt.Print("\n")
		} else {
			fmt.Print(" ")
		}
	}
	fmt.Print("\n")
}

// Week prints the 7 days of the anchor's week, each with its tasks in
// hour order. Tasks without a clock time lead the day.
func (pp *PrettyPrint) Week(anchor time.Time, tasks []task.Task) {
	now := time.Now()
	d := color.New(color.Bold, color.Underline)
	dt := color.New(color.Bold, color.Underline, color.FgHiCyan)
	faint := color.New(color.Faint)

	for _, cell := range grid.Generate(anchor, grid.ModeWeek) {
		printer := d
		if sameDay(cell.Date, now) {
			printer = dt
		}
		_, _ = printer.Println(cell.Date.Format("Monday, January 2"))

		dayTasks := make([]task.Task, 0)
		for _, t := range tasks {
			if t.TaskDate.SameDay(cell.Date) {
				dayTasks = append(dayTasks, t)
			}
		}
		if len(dayTasks) == 0 {
			_, _ = faint.Println("  none")
			fmt.Println("")
			continue
		}

		byHour := layout.ByHour(dayTasks)
		for hour := 0; hour < grid.HoursPerDay; hour++ {
			for _, t := range byHour[hour] {
				label := "all day"
				if t.Time != nil {
					label = t.Time.String()
				}
				_, _ = faint.Printf("  %7s  ", label)
				fmt.Println(t.Title)
			}
		}
		fmt.Println("")
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
