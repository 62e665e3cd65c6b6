package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateRoundTrip(t *testing.T) {
	d := mustDate(t, "2024-03-01")

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-03-01"` {
		t.Fatalf("unexpected encoding: %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.ISO() != "2024-03-01" {
		t.Fatalf("round trip changed the date: %s", back.ISO())
	}
}

func TestDateZeroMarshalsEmpty(t *testing.T) {
	b, err := json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("unexpected encoding: %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.IsZero() {
		t.Fatalf("expected zero date")
	}
}

func TestDateDayComparisons(t *testing.T) {
	d := mustDate(t, "2024-03-01")

	morning := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	night := time.Date(2024, time.March, 1, 23, 59, 59, 0, time.Local)
	if !d.SameDay(morning) || !d.SameDay(night) {
		t.Fatalf("expected SameDay across the whole day")
	}
	if d.BeforeDay(night) {
		t.Fatalf("a date is not before its own day")
	}

	next := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.Local)
	if !d.BeforeDay(next) {
		t.Fatalf("expected date before the next day")
	}
	if d.SameDay(next) {
		t.Fatalf("date should not match the next day")
	}
}

func TestClockParseAndFormat(t *testing.T) {
	c, err := ParseClock("09:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hour != 9 || c.Minute != 5 {
		t.Fatalf("unexpected clock: %+v", c)
	}
	if c.String() != "09:05" {
		t.Fatalf("unexpected format: %s", c)
	}

	if _, err := ParseClock("25:00"); err == nil {
		t.Fatalf("expected error for invalid hour")
	}
}

func TestTaskJSONRoundTrip(t *testing.T) {
	clock := Clock{Hour: 9}
	due := mustDate(t, "2024-03-05")
	original := Task{
		ID:          "abc",
		Title:       "Pay rent",
		Description: "first of the month",
		TaskDate:    mustDate(t, "2024-03-01"),
		Time:        &clock,
		DueDate:     &due,
		Priority:    PriorityHigh,
		Status:      StatusUpcoming,
		CreatedAt:   Timestamp{Time: time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC)},
		UpdatedAt:   Timestamp{Time: time.Date(2024, 2, 21, 10, 0, 0, 0, time.UTC)},
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Task
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if back.ID != original.ID || back.Title != original.Title || back.Description != original.Description {
		t.Fatalf("identity fields changed: %+v", back)
	}
	if back.TaskDate.ISO() != "2024-03-01" {
		t.Fatalf("task date changed: %s", back.TaskDate.ISO())
	}
	if back.Time == nil || back.Time.String() != "09:00" {
		t.Fatalf("time changed: %v", back.Time)
	}
	if back.DueDate == nil || back.DueDate.ISO() != "2024-03-05" {
		t.Fatalf("due date changed: %v", back.DueDate)
	}
	if back.Priority != PriorityHigh {
		t.Fatalf("priority changed: %s", back.Priority)
	}
	if !back.CreatedAt.Equal(original.CreatedAt.Time) || !back.UpdatedAt.Equal(original.UpdatedAt.Time) {
		t.Fatalf("timestamps changed")
	}
}

func TestTaskNoTimeOmitted(t *testing.T) {
	b, err := json.Marshal(Task{ID: "x", TaskDate: mustDate(t, "2024-03-01")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := raw["time"]; ok {
		t.Fatalf("expected time to be omitted when unset")
	}
	if _, ok := raw["dueDate"]; ok {
		t.Fatalf("expected dueDate to be omitted when unset")
	}
}
