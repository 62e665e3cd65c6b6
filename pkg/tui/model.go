// Package tui is the interactive calendar: month and week grids with
// keyboard-driven task editing and grab-and-drop rescheduling.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/grid"
	"tableflip.dev/planner/pkg/layout"
	"tableflip.dev/planner/pkg/query"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/task"
)

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeSearch
)

type refreshMsg struct{}

type watchStartedMsg struct {
	events <-chan store.Event
}

// Model is the bubbletea model for the planner UI.
type Model struct {
	ctx   context.Context
	state *app.State
	theme Theme

	mode    mode
	sel     time.Time
	selHour int
	taskIdx int

	form   *form
	search searchInput

	events <-chan store.Event

	width  int
	height int
	errMsg string
}

// NewModel builds the UI model around the application state.
func NewModel(ctx context.Context, st *app.State) Model {
	m := Model{
		ctx:     ctx,
		state:   st,
		sel:     task.DateOf(st.Service.Now()).Time,
		selHour: 9,
		search:  newSearchInput(),
	}
	m.theme = Light()
	if st.DarkMode {
		m.theme = Dark()
	}
	return m
}

// Run starts the interactive UI and blocks until it exits.
func Run(ctx context.Context, st *app.State) error {
	p := tea.NewProgram(NewModel(ctx, st), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.startWatch()
}

func (m Model) startWatch() tea.Cmd {
	p := m.state.Service.Persistence
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		events, err := p.Watch(m.ctx)
		if err != nil {
			return nil
		}
		return watchStartedMsg{events: events}
	}
}

func waitEvent(events <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case watchStartedMsg:
		m.events = msg.events
		return m, waitEvent(m.events)

	case refreshMsg:
		m.state.Service.Reload(m.ctx)
		return m, waitEvent(m.events)

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeSearch:
			return m.updateSearch(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.moveSelection(-1)
	case "right", "l":
		m.moveSelection(1)
	case "up", "k":
		if m.state.Mode == grid.ModeWeek {
			m.moveHour(-1)
		} else {
			m.moveSelection(-7)
		}
	case "down", "j":
		if m.state.Mode == grid.ModeWeek {
			m.moveHour(1)
		} else {
			m.moveSelection(7)
		}

	case "n", "]":
		m.state.ChangePeriod(app.PeriodNext)
		m.sel = m.state.Anchor
		m.taskIdx = 0
	case "p", "[":
		m.state.ChangePeriod(app.PeriodPrev)
		m.sel = m.state.Anchor
		m.taskIdx = 0
	case "t":
		m.state.ChangePeriod(app.PeriodToday)
		m.sel = task.DateOf(m.state.Service.Now()).Time
		m.taskIdx = 0

	case "v":
		if m.state.Mode == grid.ModeMonth {
			m.state.ChangeView(grid.ModeWeek)
		} else {
			m.state.ChangeView(grid.ModeMonth)
		}

	case "tab":
		if n := len(m.slotTasks()); n > 0 {
			m.taskIdx = (m.taskIdx + 1) % n
		}

	case "x":
		if t, ok := m.selectedTask(); ok {
			m.report(m.state.Service.ToggleComplete(t.ID))
		}
	case "d":
		if t, ok := m.selectedTask(); ok {
			m.report(m.state.Service.Delete(t.ID))
		}

	case "a":
		f := newForm(m.sel, m.slotClock())
		m.form = &f
		m.mode = modeAdd

	case "m":
		if t, ok := m.selectedTask(); ok {
			m.state.DragStart(t.ID)
		}
	case "enter":
		if m.state.Dragging() != "" {
			m.report(m.state.Drop(task.DateOf(m.sel), m.slotClock()))
			m.taskIdx = 0
		}
	case "esc":
		m.state.CancelDrag()

	case "/":
		m.search.SetValue(m.state.Search)
		m.search.Focus()
		m.mode = modeSearch

	case "D":
		m.report(m.state.ToggleTheme())
		m.theme = Light()
		if m.state.DarkMode {
			m.theme = Dark()
		}
	}
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeNormal
		return m, nil
	case "enter":
		draft, err := m.form.draft()
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		if _, err := m.state.Service.Add(draft); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.form = nil
		m.mode = modeNormal
		return m, nil
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.Blur()
		m.mode = modeNormal
		return m, nil
	case "enter":
		m.state.SetSearch(m.search.Value())
		m.search.Blur()
		m.mode = modeNormal
		m.taskIdx = 0
		return m, nil
	}
	cmd := m.search.update(msg)
	return m, cmd
}

// moveSelection shifts the selected day and keeps the anchor on it so the
// grid follows the cursor across period boundaries.
func (m *Model) moveSelection(days int) {
	m.sel = m.sel.AddDate(0, 0, days)
	m.state.Anchor = m.sel
	m.taskIdx = 0
}

func (m *Model) moveHour(delta int) {
	m.selHour += delta
	if m.selHour < 0 {
		m.selHour = 0
	}
	if m.selHour > grid.HoursPerDay-1 {
		m.selHour = grid.HoursPerDay - 1
	}
	m.taskIdx = 0
}

// slotClock is the drop target time: the selected hour in week mode, none
// in month mode.
func (m Model) slotClock() *task.Clock {
	if m.state.Mode != grid.ModeWeek {
		return nil
	}
	return &task.Clock{Hour: m.selHour}
}

// slotTasks lists the visible tasks in the selected slot, in stable
// order.
func (m Model) slotTasks() []task.Task {
	day := query.ForDate(m.state.Visible(), m.sel)
	if m.state.Mode != grid.ModeWeek {
		return day
	}
	return layout.ByHour(day)[m.selHour]
}

func (m Model) selectedTask() (task.Task, bool) {
	tasks := m.slotTasks()
	if len(tasks) == 0 {
		return task.Task{}, false
	}
	idx := m.taskIdx
	if idx >= len(tasks) {
		idx = len(tasks) - 1
	}
	return tasks[idx], true
}

func (m *Model) report(err error) {
	if err != nil {
		m.errMsg = err.Error()
	}
}

func (m Model) View() string {
	var body string
	switch m.state.Mode {
	case grid.ModeWeek:
		body = renderWeek(m.theme, m.state, m.sel, m.selHour, m.state.Service.Now())
	default:
		body = renderMonth(m.theme, m.state, m.sel, m.state.Service.Now())
	}

	header := m.theme.Header.Render(m.headerText())
	footer := m.footerText()

	sections := []string{header, body}
	if m.mode == modeAdd && m.form != nil {
		sections = append(sections, m.form.view(m.theme))
	}
	sections = append(sections, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) headerText() string {
	label := m.state.Anchor.Format("January 2006")
	if m.state.Mode == grid.ModeWeek {
		label = "Week of " + grid.StartOfWeek(m.state.Anchor).Format("Jan 2, 2006")
	}
	if m.state.Search != "" {
		label += fmt.Sprintf("  /%s", m.state.Search)
	}
	if !m.state.Filters.Empty() {
		label += "  [filtered]"
	}
	return label
}

func (m Model) footerText() string {
	if m.errMsg != "" {
		return m.theme.Error.Render(m.errMsg)
	}
	if m.mode == modeSearch {
		return "search: " + m.search.View()
	}
	if id := m.state.Dragging(); id != "" {
		if t, err := m.state.Service.Get(id); err == nil {
			return m.theme.Dragging.Render(fmt.Sprintf("moving %q -- enter to drop, esc to cancel", t.Title))
		}
	}
	return m.theme.Help.Render("hjkl move · n/p period · t today · v view · a add · x done · d delete · m move · / search · D theme · q quit")
}
