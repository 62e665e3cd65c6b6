package grid

import (
	"testing"
	"time"
)

func TestGenerateMonthWholeWeeks(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		anchor := time.Date(2024, month, 15, 0, 0, 0, 0, time.Local)
		cells := Generate(anchor, ModeMonth)

		if len(cells)%7 != 0 {
			t.Fatalf("%s: expected whole weeks, got %d cells", month, len(cells))
		}
		if cells[0].Date.Weekday() != time.Sunday {
			t.Fatalf("%s: expected Sunday start, got %s", month, cells[0].Date.Weekday())
		}
		if cells[len(cells)-1].Date.Weekday() != time.Saturday {
			t.Fatalf("%s: expected Saturday end, got %s", month, cells[len(cells)-1].Date.Weekday())
		}
	}
}

func TestGenerateMonthEveryDayOnce(t *testing.T) {
	anchor := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local) // leap February
	cells := Generate(anchor, ModeMonth)

	seen := make(map[string]bool)
	inMonth := 0
	var prev time.Time
	for i, cell := range cells {
		key := cell.Date.Format("2006-01-02")
		if seen[key] {
			t.Fatalf("duplicate date %s", key)
		}
		seen[key] = true
		if i > 0 && !cell.Date.Equal(prev.AddDate(0, 0, 1)) {
			t.Fatalf("gap between %s and %s", prev, cell.Date)
		}
		prev = cell.Date
		if cell.InCurrentMonth {
			inMonth++
			if cell.Date.Month() != time.February {
				t.Fatalf("%s flagged in-month", key)
			}
		} else if cell.Date.Month() == time.February {
			t.Fatalf("%s flagged as padding", key)
		}
	}
	if inMonth != 29 {
		t.Fatalf("expected all 29 days of February 2024, got %d", inMonth)
	}
}

func TestGenerateMonthDeterministic(t *testing.T) {
	anchor := time.Date(2024, time.March, 31, 18, 4, 5, 0, time.Local)
	a := Generate(anchor, ModeMonth)
	b := Generate(anchor, ModeMonth)
	if len(a) != len(b) {
		t.Fatalf("non-deterministic cell count")
	}
	for i := range a {
		if !a[i].Date.Equal(b[i].Date) || a[i].InCurrentMonth != b[i].InCurrentMonth {
			t.Fatalf("cell %d differs between runs", i)
		}
	}
}

func TestGenerateWeek(t *testing.T) {
	// 2024-03-06 is a Wednesday; its week starts Sunday 2024-03-03.
	anchor := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.Local)
	cells := Generate(anchor, ModeWeek)

	if len(cells) != 7 {
		t.Fatalf("expected 7 cells, got %d", len(cells))
	}
	first := cells[0].Date
	if first.Weekday() != time.Sunday {
		t.Fatalf("expected Sunday first, got %s", first.Weekday())
	}
	if first.After(anchor) {
		t.Fatalf("week start must be on or before the anchor")
	}
	if first.Day() != 3 {
		t.Fatalf("expected March 3, got %s", first)
	}
	for i, cell := range cells {
		if !cell.InCurrentMonth {
			t.Fatalf("week cells are never padding")
		}
		if cell.Date.Day() != 3+i {
			t.Fatalf("unexpected day order: %s at %d", cell.Date, i)
		}
	}
}

func TestGenerateWeekOnSundayKeepsAnchor(t *testing.T) {
	sunday := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.Local)
	cells := Generate(sunday, ModeWeek)
	if !cells[0].Date.Equal(sunday) {
		t.Fatalf("a Sunday anchor starts its own week, got %s", cells[0].Date)
	}
}

func TestNavigation(t *testing.T) {
	anchor := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)

	next := Next(anchor, ModeMonth)
	if next.Month() != time.February || next.Day() != 1 {
		t.Fatalf("expected February 1, got %s", next)
	}
	prev := Prev(anchor, ModeMonth)
	if prev.Month() != time.December || prev.Year() != 2023 {
		t.Fatalf("expected December 2023, got %s", prev)
	}

	wAnchor := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.Local)
	if got := Next(wAnchor, ModeWeek); got.Day() != 13 {
		t.Fatalf("expected +7 days, got %s", got)
	}
	if got := Prev(wAnchor, ModeWeek); got.Day() != 28 || got.Month() != time.February {
		t.Fatalf("expected February 28, got %s", got)
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("week") != ModeWeek {
		t.Fatalf("expected week")
	}
	if ParseMode(" WEEK ") != ModeWeek {
		t.Fatalf("expected case-insensitive week")
	}
	if ParseMode("") != ModeMonth || ParseMode("month") != ModeMonth {
		t.Fatalf("expected month default")
	}
}
