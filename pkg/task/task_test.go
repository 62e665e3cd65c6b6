package task

import (
	"testing"
	"time"
)

func TestDraftValidate(t *testing.T) {
	valid := Draft{Title: "Pay rent", TaskDate: mustDate(t, "2024-03-01")}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := (Draft{Title: "   ", TaskDate: mustDate(t, "2024-03-01")}).Validate(); err != ErrEmptyTitle {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := (Draft{Title: "Pay rent"}).Validate(); err != ErrMissingDate {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
}

func TestNewAssignsIdentityAndStatus(t *testing.T) {
	now := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.Local)
	due := mustDate(t, "2024-03-01")

	created := New("id-1", Draft{
		Title:    "  Pay rent  ",
		TaskDate: mustDate(t, "2024-03-01"),
		DueDate:  &due,
	}, now)

	if created.ID != "id-1" {
		t.Fatalf("unexpected id: %s", created.ID)
	}
	if created.Title != "Pay rent" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.Priority != PriorityMedium {
		t.Fatalf("expected default priority medium, got %s", created.Priority)
	}
	if created.Status != StatusDueSoon {
		t.Fatalf("expected due-soon on the due day, got %s", created.Status)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Fatalf("expected timestamps set to now")
	}
}

func TestClampDue(t *testing.T) {
	taskDate := mustDate(t, "2024-03-01")

	if got := ClampDue(taskDate, nil); got != nil {
		t.Fatalf("nil due date must stay nil, got %v", got)
	}

	early := mustDate(t, "2024-02-20")
	got := ClampDue(taskDate, &early)
	if got == nil || got.ISO() != "2024-03-01" {
		t.Fatalf("expected clamp up to task date, got %v", got)
	}

	late := mustDate(t, "2024-03-09")
	got = ClampDue(taskDate, &late)
	if got == nil || got.ISO() != "2024-03-09" {
		t.Fatalf("expected later due date kept, got %v", got)
	}
}

func TestHourBucket(t *testing.T) {
	tk := Task{}
	if tk.Hour() != 0 {
		t.Fatalf("expected all-day tasks in hour 0, got %d", tk.Hour())
	}
	tk.Time = &Clock{Hour: 14, Minute: 30}
	if tk.Hour() != 14 {
		t.Fatalf("expected truncated hour 14, got %d", tk.Hour())
	}
}
