// Package glyph maps task statuses and priorities to terminal symbols.
package glyph

import (
	"fmt"

	"tableflip.dev/planner/pkg/task"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

var statusGlyphs = map[task.Status]Glyph{
	task.StatusUpcoming: {
		Key:     "u",
		Symbol:  "●",
		Meaning: "upcoming task",
	},
	task.StatusDueSoon: {
		Key:     "s",
		Symbol:  "◉",
		Meaning: "task due today",
	},
	task.StatusOverdue: {
		Key:     "o",
		Symbol:  "⚑",
		Meaning: "task past its due date",
	},
	task.StatusCompleted: {
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	},
}

var priorityGlyphs = map[task.Priority]Glyph{
	task.PriorityLow: {
		Key:     "l",
		Symbol:  "˅",
		Meaning: "low priority",
	},
	task.PriorityMedium: {
		Key:     "m",
		Symbol:  " ",
		Meaning: "medium priority",
	},
	task.PriorityHigh: {
		Key:     "h",
		Symbol:  "✷",
		Meaning: "high priority",
	},
}

// ForStatus returns the glyph for a status.
func ForStatus(s task.Status) Glyph {
	return statusGlyphs[s]
}

// ForPriority returns the glyph for a priority.
func ForPriority(p task.Priority) Glyph {
	return priorityGlyphs[p]
}

// StatusGlyphs returns glyphs for all statuses, in status order.
func StatusGlyphs() []Glyph {
	g := make([]Glyph, 0, len(statusGlyphs))
	for _, s := range task.AllStatuses() {
		g = append(g, statusGlyphs[s])
	}
	return g
}

// PriorityGlyphs returns glyphs for all priorities, in priority order.
func PriorityGlyphs() []Glyph {
	g := make([]Glyph, 0, len(priorityGlyphs))
	for _, p := range task.AllPriorities() {
		g = append(g, priorityGlyphs[p])
	}
	return g
}

func (g Glyph) String() string {
	return g.Symbol
}
