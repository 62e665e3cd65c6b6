package layout

import (
	"testing"

	"tableflip.dev/planner/pkg/task"
)

func TestCascadeTwoTasks(t *testing.T) {
	placements := Cascade(2)

	if placements[0].WidthPct != 85 || placements[0].LeftPct != 0 {
		t.Fatalf("task0: got %+v", placements[0])
	}
	if placements[1].WidthPct != 80 || placements[1].LeftPct != 8 {
		t.Fatalf("task1: got %+v", placements[1])
	}
	if placements[0].StackOrder <= placements[1].StackOrder {
		t.Fatalf("task0 must stack above task1: %d vs %d",
			placements[0].StackOrder, placements[1].StackOrder)
	}
}

func TestCascadeCrowdedSlot(t *testing.T) {
	placements := Cascade(12)

	for i, p := range placements {
		if p.WidthPct < 50 {
			t.Fatalf("task %d narrower than 50%%: %d", i, p.WidthPct)
		}
		if i == 0 {
			continue
		}
		prev := placements[i-1]
		if p.WidthPct > prev.WidthPct {
			t.Fatalf("width must be non-increasing: %d then %d", prev.WidthPct, p.WidthPct)
		}
		if p.LeftPct <= prev.LeftPct {
			t.Fatalf("left offset must strictly increase: %d then %d", prev.LeftPct, p.LeftPct)
		}
		if p.StackOrder >= prev.StackOrder {
			t.Fatalf("earlier tasks stack above later ones")
		}
	}

	// The floor kicks in from the 8th task on.
	if placements[7].WidthPct != 50 || placements[11].WidthPct != 50 {
		t.Fatalf("expected 50%% floor, got %d and %d",
			placements[7].WidthPct, placements[11].WidthPct)
	}
}

func TestCascadeDeterministic(t *testing.T) {
	a := Cascade(5)
	b := Cascade(5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("placement %d differs between runs", i)
		}
	}
}

func TestCascadeEmpty(t *testing.T) {
	if got := Cascade(0); len(got) != 0 {
		t.Fatalf("expected no placements, got %d", len(got))
	}
}

func TestByDatePreservesOrder(t *testing.T) {
	date := func(v string) task.Date {
		d, err := task.ParseDate(v)
		if err != nil {
			t.Fatalf("parse date: %v", err)
		}
		return d
	}

	tasks := []task.Task{
		{ID: "a", TaskDate: date("2024-03-01")},
		{ID: "b", TaskDate: date("2024-03-02")},
		{ID: "c", TaskDate: date("2024-03-01")},
	}

	buckets := ByDate(tasks)
	first := buckets["2024-03-01"]
	if len(first) != 2 || first[0].ID != "a" || first[1].ID != "c" {
		t.Fatalf("unexpected bucket: %+v", first)
	}
	if len(buckets["2024-03-02"]) != 1 {
		t.Fatalf("expected one task on the 2nd")
	}
}

func TestByHourDefaultsToMidnight(t *testing.T) {
	nine := task.Clock{Hour: 9}
	nineThirty := task.Clock{Hour: 9, Minute: 30}

	tasks := []task.Task{
		{ID: "allday"},
		{ID: "nine", Time: &nine},
		{ID: "ninethirty", Time: &nineThirty},
	}

	buckets := ByHour(tasks)
	if len(buckets[0]) != 1 || buckets[0][0].ID != "allday" {
		t.Fatalf("expected all-day task in hour 0: %+v", buckets[0])
	}
	slot := buckets[9]
	if len(slot) != 2 || slot[0].ID != "nine" || slot[1].ID != "ninethirty" {
		t.Fatalf("expected both 9am tasks in order: %+v", slot)
	}
}
