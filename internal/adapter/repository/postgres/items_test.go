package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	domainForm "ministry-budget-api/internal/domain/form"

	"gorm.io/gorm"
)

func TestEventRepositoryScopedByForm(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	d1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	first := &domainForm.Event{FormID: 1, EventName: "Retreat", EventDate: &d1, EstimatedExpenses: 500}
	second := &domainForm.Event{FormID: 1, EventName: "Kickoff", EventDate: &d2}
	other := &domainForm.Event{FormID: 2, EventName: "Foreign"}
	for _, e := range []*domainForm.Event{first, second, other} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create %s: %v", e.EventName, err)
		}
	}

	got, err := repo.ListByForm(ctx, 1)
	if err != nil {
		t.Fatalf("ListByForm: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].EventName != "Kickoff" || got[1].EventName != "Retreat" {
		t.Fatalf("order = %s, %s, want date ascending", got[0].EventName, got[1].EventName)
	}

	// form scoping keeps another form's event out of reach
	if _, err := repo.GetByForm(ctx, 1, other.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByForm(foreign) = %v, want ErrRecordNotFound", err)
	}
	if err := repo.Delete(ctx, 1, other.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Delete(foreign) = %v, want ErrRecordNotFound", err)
	}

	first.EstimatedExpenses = 750
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reloaded, err := repo.GetByForm(ctx, 1, first.ID)
	if err != nil {
		t.Fatalf("GetByForm: %v", err)
	}
	if reloaded.EstimatedExpenses != 750 {
		t.Fatalf("estimated expenses = %v, want 750", reloaded.EstimatedExpenses)
	}

	if err := repo.Delete(ctx, 1, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	remaining, err := repo.ListByForm(ctx, 1)
	if err != nil {
		t.Fatalf("ListByForm after delete: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("len after delete = %d, want 1", len(remaining))
	}
}

func TestGoalRepositoryScopedByForm(t *testing.T) {
	db := openTestDB(t)
	repo := NewGoalRepository(db)
	ctx := context.Background()

	due := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	g1 := &domainForm.Goal{FormID: 1, Goal: "Grow attendance", MeasureTarget: "20 percent", DueDate: &due}
	g2 := &domainForm.Goal{FormID: 1, Goal: "Train volunteers"}
	other := &domainForm.Goal{FormID: 2, Goal: "Foreign"}
	for _, g := range []*domainForm.Goal{g1, g2, other} {
		if err := repo.Create(ctx, g); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByForm(ctx, 1)
	if err != nil {
		t.Fatalf("ListByForm: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	if _, err := repo.GetByForm(ctx, 1, other.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByForm(foreign) = %v, want ErrRecordNotFound", err)
	}

	g1.MeasureTarget = "25 percent"
	if err := repo.Save(ctx, g1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	reloaded, err := repo.GetByForm(ctx, 1, g1.ID)
	if err != nil {
		t.Fatalf("GetByForm: %v", err)
	}
	if reloaded.MeasureTarget != "25 percent" {
		t.Fatalf("measure target = %q", reloaded.MeasureTarget)
	}

	if err := repo.Delete(ctx, 1, g2.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, 1, g2.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second Delete = %v, want ErrRecordNotFound", err)
	}
}
