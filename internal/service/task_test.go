package service

import (
	"context"
	"testing"
	"time"

	"github.com/nechberman/berman/internal/models"
)

func newTaskServiceAt(t *testing.T, start time.Time) (*TaskService, *time.Time) {
	t.Helper()
	repos := newTestRepos(t)
	svc := NewTaskService(repos.Tasks, DefaultTaskRetention)
	clock := start
	svc.now = func() time.Time { return clock }
	return svc, &clock
}

func hasTask(tasks []models.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

func TestSaveStampsCompletedAtOnDone(t *testing.T) {
	start := time.Date(2025, 12, 9, 12, 0, 0, 0, time.UTC)
	svc, _ := newTaskServiceAt(t, start)
	ctx := context.Background()

	saved := svc.Save(ctx, models.Task{ID: "t_done", Title: "x", Status: models.TaskDone})
	if saved.CompletedAt != start.UnixMilli() {
		t.Errorf("expected CompletedAt stamped at now, got %d", saved.CompletedAt)
	}

	// A task already carrying a timestamp keeps it.
	again := svc.Save(ctx, models.Task{ID: "t_done", Status: models.TaskDone, CompletedAt: 42})
	if again.CompletedAt != 42 {
		t.Errorf("expected existing CompletedAt preserved, got %d", again.CompletedAt)
	}
}

func TestSaveClearsCompletedAtWhenLeavingDone(t *testing.T) {
	start := time.Date(2025, 12, 9, 12, 0, 0, 0, time.UTC)
	svc, _ := newTaskServiceAt(t, start)
	ctx := context.Background()

	saved := svc.Save(ctx, models.Task{ID: "t_reopen", Status: models.TaskOpen, CompletedAt: 42})
	if saved.CompletedAt != 0 {
		t.Errorf("expected CompletedAt cleared outside done, got %d", saved.CompletedAt)
	}
}

func TestListEvictsAfterRetentionWindow(t *testing.T) {
	start := time.Date(2025, 12, 9, 12, 0, 0, 0, time.UTC)
	svc, clock := newTaskServiceAt(t, start)
	ctx := context.Background()

	svc.Save(ctx, models.Task{ID: "t_exp", Title: "done task", Status: models.TaskDone})
	svc.Save(ctx, models.Task{ID: "t_open", Title: "open task", Status: models.TaskOpen})

	*clock = start.Add(29 * time.Minute)
	if !hasTask(svc.List(ctx), "t_exp") {
		t.Fatal("expected done task still visible inside the window")
	}

	*clock = start.Add(31 * time.Minute)
	tasks := svc.List(ctx)
	if hasTask(tasks, "t_exp") {
		t.Error("expected done task evicted past the window")
	}
	if !hasTask(tasks, "t_open") {
		t.Error("expected non-done task retained regardless of age")
	}

	// Eviction must have hit the store, not just the returned view.
	if hasTask(svc.tasks.List(ctx), "t_exp") {
		t.Error("expected evicted task removed from the store")
	}
}

func TestEvictionOnlyHappensAtReadTime(t *testing.T) {
	start := time.Date(2025, 12, 9, 12, 0, 0, 0, time.UTC)
	svc, clock := newTaskServiceAt(t, start)
	ctx := context.Background()

	svc.Save(ctx, models.Task{ID: "t_lazy", Status: models.TaskDone})

	*clock = start.Add(2 * time.Hour)

	// No List call yet: the record must still be in the store.
	if !hasTask(svc.tasks.List(ctx), "t_lazy") {
		t.Fatal("expected expired task to persist until the next List")
	}

	svc.List(ctx)
	if hasTask(svc.tasks.List(ctx), "t_lazy") {
		t.Error("expected List to purge the expired task")
	}
}

func TestCycleRotatesStatus(t *testing.T) {
	start := time.Date(2025, 12, 9, 12, 0, 0, 0, time.UTC)
	svc, _ := newTaskServiceAt(t, start)
	ctx := context.Background()

	svc.Save(ctx, models.Task{ID: "t_cycle", Status: models.TaskOpen})

	task, ok := svc.Cycle(ctx, "t_cycle")
	if !ok || task.Status != models.TaskInProgress {
		t.Fatalf("expected open -> in_progress, got %+v (%v)", task, ok)
	}

	task, _ = svc.Cycle(ctx, "t_cycle")
	if task.Status != models.TaskDone || task.CompletedAt == 0 {
		t.Fatalf("expected in_progress -> done with fresh stamp, got %+v", task)
	}

	task, _ = svc.Cycle(ctx, "t_cycle")
	if task.Status != models.TaskOpen || task.CompletedAt != 0 {
		t.Fatalf("expected done -> open with stamp cleared, got %+v", task)
	}

	if _, ok := svc.Cycle(ctx, "no-such-task"); ok {
		t.Error("expected Cycle of unknown id to report not found")
	}
}
