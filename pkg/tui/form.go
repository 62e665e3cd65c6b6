package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/planner/pkg/task"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldTime
	fieldDue
	fieldPriority
	fieldCount
)

var fieldLabels = []string{"title", "description", "date", "time", "due", "priority"}

// form is the add-task input form. Tab cycles fields, enter submits, esc
// cancels (handled by the model).
type form struct {
	inputs []textinput.Model
	focus  int
}

func newForm(day time.Time, clock *task.Clock) form {
	f := form{inputs: make([]textinput.Model, fieldCount)}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 120
		f.inputs[i] = ti
	}
	f.inputs[fieldTitle].Placeholder = "what needs doing?"
	f.inputs[fieldDate].SetValue(day.Format("2006-01-02"))
	if clock != nil {
		f.inputs[fieldTime].SetValue(clock.String())
	}
	f.inputs[fieldDue].Placeholder = "2006-01-02 (optional)"
	f.inputs[fieldPriority].Placeholder = "low|medium|high"
	f.inputs[fieldTitle].Focus()
	return f
}

func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return nil
	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// draft builds a task draft from the form fields.
func (f *form) draft() (task.Draft, error) {
	d := task.Draft{
		Title:       f.inputs[fieldTitle].Value(),
		Description: f.inputs[fieldDescription].Value(),
	}

	date, err := task.ParseDate(strings.TrimSpace(f.inputs[fieldDate].Value()))
	if err != nil {
		return task.Draft{}, err
	}
	d.TaskDate = date

	if v := strings.TrimSpace(f.inputs[fieldTime].Value()); v != "" {
		clock, err := task.ParseClock(v)
		if err != nil {
			return task.Draft{}, err
		}
		d.Time = &clock
	}

	if v := strings.TrimSpace(f.inputs[fieldDue].Value()); v != "" {
		due, err := task.ParseDate(v)
		if err != nil {
			return task.Draft{}, err
		}
		d.DueDate = &due
	}

	priority, err := task.ParsePriority(f.inputs[fieldPriority].Value())
	if err != nil {
		return task.Draft{}, err
	}
	d.Priority = priority

	return d, d.Validate()
}

func (f *form) view(th Theme) string {
	var b strings.Builder
	b.WriteString(th.Header.Render("New task"))
	b.WriteString("\n")
	for i, input := range f.inputs {
		label := fieldLabels[i]
		style := th.Dim
		if i == f.focus {
			style = th.Today
		}
		b.WriteString(style.Render(pad(label, 12)))
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString(th.Help.Render("enter save · tab next field · esc cancel"))
	return b.String()
}

// searchInput wraps a single text input for the search bar.
type searchInput struct {
	input textinput.Model
}

func newSearchInput() searchInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "title or description"
	ti.CharLimit = 120
	return searchInput{input: ti}
}

func (s *searchInput) Focus() { s.input.Focus() }

func (s *searchInput) Blur() { s.input.Blur() }

func (s *searchInput) Value() string { return s.input.Value() }

func (s *searchInput) SetValue(v string) { s.input.SetValue(v) }

func (s searchInput) View() string { return s.input.View() }

func (s *searchInput) update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}
