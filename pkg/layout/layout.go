// Package layout places tasks that share a calendar slot so every task
// stays at least partially visible, and buckets tasks into slots.
package layout

import (
	"tableflip.dev/planner/pkg/task"
)

// Placement is the visual geometry for one task within a slot, expressed
// in percent of the slot width. Higher StackOrder renders above lower.
type Placement struct {
	WidthPct   int
	LeftPct    int
	StackOrder int
}

// Cascade lays out n tasks sharing a slot as a cascading stack: the i-th
// task narrows by 5% per step (floored at 50%), shifts right by 8% per
// step, and earlier tasks stack above later ones. The result is aligned
// by index to the slot's stable task order and is fully deterministic.
func Cascade(n int) []Placement {
	placements := make([]Placement, n)
	for i := 0; i < n; i++ {
		width := 85 - i*5
		if width < 50 {
			width = 50
		}
		placements[i] = Placement{
			WidthPct:   width,
			LeftPct:    i * 8,
			StackOrder: n - i,
		}
	}
	return placements
}

// ByDate groups tasks by their scheduled date (keyed "2006-01-02"),
// preserving input order within each bucket. Month-view cells bind to
// these buckets.
func ByDate(tasks []task.Task) map[string][]task.Task {
	buckets := make(map[string][]task.Task)
	for _, t := range tasks {
		key := t.TaskDate.ISO()
		buckets[key] = append(buckets[key], t)
	}
	return buckets
}

// ByHour groups a single day's tasks by the truncated hour of their clock
// time, preserving input order within each bucket. Tasks without a time
// land in hour 0. Week-view slots bind to these buckets.
func ByHour(tasks []task.Task) map[int][]task.Task {
	buckets := make(map[int][]task.Task)
	for _, t := range tasks {
		hour := t.Hour()
		buckets[hour] = append(buckets[hour], t)
	}
	return buckets
}
