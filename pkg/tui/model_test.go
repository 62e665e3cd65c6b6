package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/grid"
	"tableflip.dev/planner/pkg/task"
)

func fixedNow() time.Time {
	return time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local)
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	svc := app.NewService(context.Background(), nil)
	svc.Now = fixedNow
	return NewModel(context.Background(), app.NewState(svc))
}

func addTask(t *testing.T, m Model, title, on string, clock *task.Clock) task.Task {
	t.Helper()
	d, err := task.ParseDate(on)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	added, err := m.state.Service.Add(task.Draft{Title: title, TaskDate: d, Time: clock})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	return added
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestViewToggle(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "v")
	if m.state.Mode != grid.ModeWeek {
		t.Fatalf("expected week mode, got %v", m.state.Mode)
	}
	m = press(t, m, "v")
	if m.state.Mode != grid.ModeMonth {
		t.Fatalf("expected month mode, got %v", m.state.Mode)
	}
}

func TestSelectionFollowsCursor(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "l")
	if m.sel.Day() != 7 {
		t.Fatalf("expected selection on the 7th, got %s", m.sel)
	}
	if m.state.Anchor.Day() != 7 {
		t.Fatalf("anchor must follow the selection, got %s", m.state.Anchor)
	}

	m = press(t, m, "h", "h")
	if m.sel.Day() != 5 {
		t.Fatalf("expected selection on the 5th, got %s", m.sel)
	}

	// In month mode j/k move by a week.
	m = press(t, m, "j")
	if m.sel.Day() != 12 {
		t.Fatalf("expected selection a week later, got %s", m.sel)
	}
}

func TestHourMovementInWeekMode(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "v")

	if m.selHour != 9 {
		t.Fatalf("expected initial hour 9, got %d", m.selHour)
	}
	m = press(t, m, "j", "j")
	if m.selHour != 11 {
		t.Fatalf("expected hour 11, got %d", m.selHour)
	}
	for i := 0; i < 30; i++ {
		m = press(t, m, "k")
	}
	if m.selHour != 0 {
		t.Fatalf("hour must clamp at 0, got %d", m.selHour)
	}
}

func TestPeriodNavigation(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "n")
	if m.state.Anchor.Month() != time.April {
		t.Fatalf("expected April, got %s", m.state.Anchor)
	}
	m = press(t, m, "p", "p")
	if m.state.Anchor.Month() != time.February {
		t.Fatalf("expected February, got %s", m.state.Anchor)
	}
	m = press(t, m, "t")
	if m.state.Anchor.Month() != time.March || m.sel.Day() != 6 {
		t.Fatalf("expected today restored, got anchor %s sel %s", m.state.Anchor, m.sel)
	}
}

func TestToggleCompleteKey(t *testing.T) {
	m := newTestModel(t)
	added := addTask(t, m, "Pay rent", "2024-03-06", nil)

	m = press(t, m, "x")
	got, err := m.state.Service.Get(added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Completed {
		t.Fatalf("expected the selected task completed")
	}
}

func TestDeleteKey(t *testing.T) {
	m := newTestModel(t)
	added := addTask(t, m, "Pay rent", "2024-03-06", nil)

	m = press(t, m, "d")
	if _, err := m.state.Service.Get(added.ID); err != app.ErrNotFound {
		t.Fatalf("expected the task gone, got %v", err)
	}
}

func TestGrabAndDrop(t *testing.T) {
	m := newTestModel(t)
	added := addTask(t, m, "Standup", "2024-03-06", nil)

	m = press(t, m, "m")
	if m.state.Dragging() != added.ID {
		t.Fatalf("expected drag started")
	}

	m = press(t, m, "l", "l", "enter")
	got, err := m.state.Service.Get(added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TaskDate.ISO() != "2024-03-08" {
		t.Fatalf("expected task dropped on the 8th, got %s", got.TaskDate.ISO())
	}
	if got.Time != nil {
		t.Fatalf("month drop must not assign a time")
	}
	if m.state.Dragging() != "" {
		t.Fatalf("drop must end the drag")
	}
}

func TestGrabAndDropOntoHourSlot(t *testing.T) {
	m := newTestModel(t)
	nine := task.Clock{Hour: 9}
	added := addTask(t, m, "Standup", "2024-03-06", &nine)

	m = press(t, m, "v", "m", "j", "j", "enter")
	got, err := m.state.Service.Get(added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Time == nil || got.Time.Hour != 11 {
		t.Fatalf("expected task moved to 11:00, got %v", got.Time)
	}
}

func TestEscCancelsDrag(t *testing.T) {
	m := newTestModel(t)
	added := addTask(t, m, "Standup", "2024-03-06", nil)

	m = press(t, m, "m", "esc", "l", "enter")
	got, _ := m.state.Service.Get(added.ID)
	if got.TaskDate.ISO() != "2024-03-06" {
		t.Fatalf("cancelled drag must not move the task, got %s", got.TaskDate.ISO())
	}
}

func TestSearchFlow(t *testing.T) {
	m := newTestModel(t)
	addTask(t, m, "Pay rent", "2024-03-06", nil)
	addTask(t, m, "Dentist", "2024-03-06", nil)

	m = press(t, m, "/", "r", "e", "n", "t", "enter")
	if m.state.Search != "rent" {
		t.Fatalf("expected search term set, got %q", m.state.Search)
	}
	visible := m.state.Visible()
	if len(visible) != 1 || visible[0].Title != "Pay rent" {
		t.Fatalf("unexpected visible set: %+v", visible)
	}

	// esc leaves the previous term untouched.
	m = press(t, m, "/", "x", "esc")
	if m.state.Search != "rent" {
		t.Fatalf("esc must not commit the edit, got %q", m.state.Search)
	}
}

func TestAddFormOpensAndCancels(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a")
	if m.mode != modeAdd || m.form == nil {
		t.Fatalf("expected add mode with a form")
	}
	m = press(t, m, "esc")
	if m.mode != modeNormal || m.form != nil {
		t.Fatalf("expected add mode cancelled")
	}
	if len(m.state.Service.Tasks()) != 0 {
		t.Fatalf("cancelled form must not add a task")
	}
}

func TestThemeToggleKey(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "D")
	if !m.state.DarkMode {
		t.Fatalf("expected dark mode")
	}
	m = press(t, m, "D")
	if m.state.DarkMode {
		t.Fatalf("expected light mode restored")
	}
}

func TestMonthViewShowsTasks(t *testing.T) {
	m := newTestModel(t)
	addTask(t, m, "Pay rent", "2024-03-06", nil)
	addTask(t, m, "A", "2024-03-06", nil)
	addTask(t, m, "B", "2024-03-06", nil)

	out := m.View()
	if !strings.Contains(out, "Pay rent") {
		t.Fatalf("expected task title in the month view")
	}
	if !strings.Contains(out, "+1 more") {
		t.Fatalf("expected overflow marker for the third task")
	}
	if !strings.Contains(out, "March 2024") {
		t.Fatalf("expected month header")
	}
}

func TestWeekViewShowsHourSlots(t *testing.T) {
	m := newTestModel(t)
	nine := task.Clock{Hour: 9}
	addTask(t, m, "Standup", "2024-03-06", &nine)

	m = press(t, m, "v")
	out := m.View()
	if !strings.Contains(out, "09:00") {
		t.Fatalf("expected the 9am row")
	}
	if !strings.Contains(out, "Standup") {
		t.Fatalf("expected task title in the week view")
	}
	if strings.Contains(out, "03:00") {
		t.Fatalf("empty off-hours rows must be hidden")
	}
}
