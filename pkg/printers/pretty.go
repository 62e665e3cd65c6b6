// Package printers renders tasks and calendars for the terminal.
package printers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/glyph"
	"tableflip.dev/planner/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-4dca  "))

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Tasks prints a task table: status glyph, priority glyph, title, date,
// time, and due date.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, t := range tasks {
		cells := make([]interface{}, 0, 6)
		if pp.ShowID {
			cells = append(cells, t.ID)
		}
		cells = append(cells,
			statusColor(t.Status).Sprint(glyph.ForStatus(t.Status).Symbol),
			glyph.ForPriority(t.Priority).Symbol,
			titleText(t),
			t.TaskDate.ISO(),
			clockText(t),
			dueText(t),
		)
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// JSON prints the tasks as a JSON array.
func (pp *PrettyPrint) JSON(tasks []task.Task) error {
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}

// Key prints the status and priority glyph legend.
func (pp *PrettyPrint) Key() {
	pp.keyTable("Status", glyph.StatusGlyphs())
	pp.keyTable("Priority", glyph.PriorityGlyphs())
}

func (pp *PrettyPrint) keyTable(title string, glyphs []glyph.Glyph) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, g := range glyphs {
		tbl.AddRow(g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\n"+title)))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func titleText(t task.Task) string {
	if t.Completed {
		return glyph.Strike(t.Title)
	}
	return t.Title
}

func clockText(t task.Task) string {
	if t.Time == nil {
		return ""
	}
	return t.Time.String()
}

func dueText(t task.Task) string {
	if t.DueDate == nil {
		return ""
	}
	return "due " + t.DueDate.ISO()
}

func statusColor(s task.Status) *color.Color {
	switch s {
	case task.StatusCompleted:
		return color.New(color.FgGreen)
	case task.StatusDueSoon:
		return color.New(color.FgYellow)
	case task.StatusOverdue:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgBlue)
	}
}
