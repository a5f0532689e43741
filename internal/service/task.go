package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nechberman/berman/internal/models"
	"github.com/nechberman/berman/internal/repository"
)

// DefaultTaskRetention is how long a completed task stays visible
// before it is purged.
const DefaultTaskRetention = 30 * time.Minute

var evictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "berman_task_evictions_total",
	Help: "Completed tasks purged after the retention window.",
})

// TaskService owns the task lifecycle: status transitions stamp or
// clear the completion timestamp, and reads lazily purge tasks that
// finished longer ago than the retention window.
//
// Eviction happens only at read time. There is no background sweeper,
// so an expired task stays in the store until the next List call.
type TaskService struct {
	tasks     *repository.Repository[models.Task]
	retention time.Duration
	now       func() time.Time
}

// NewTaskService creates a task service with the given retention
// window; zero or negative falls back to the default.
func NewTaskService(tasks *repository.Repository[models.Task], retention time.Duration) *TaskService {
	if retention <= 0 {
		retention = DefaultTaskRetention
	}
	return &TaskService{tasks: tasks, retention: retention, now: time.Now}
}

// List returns the live tasks, deleting any that completed longer ago
// than the retention window. Note that List writes to the store when
// it evicts; it is not read-only.
func (s *TaskService) List(ctx context.Context) []models.Task {
	tasks := s.tasks.List(ctx)
	now := s.now().UnixMilli()

	live := tasks[:0]
	evicted := 0
	for _, t := range tasks {
		if t.Status == models.TaskDone && t.CompletedAt > 0 && now-t.CompletedAt > s.retention.Milliseconds() {
			evicted++
			continue
		}
		live = append(live, t)
	}

	if evicted > 0 {
		s.tasks.Replace(ctx, live)
		evictionsTotal.Add(float64(evicted))
		slog.Info("expired tasks evicted", "count", evicted)
	}
	return live
}

// Save upserts a task, maintaining the completion timestamp: entering
// done stamps it if unset, leaving done clears it.
func (s *TaskService) Save(ctx context.Context, task models.Task) models.Task {
	if task.Status == models.TaskDone {
		if task.CompletedAt == 0 {
			task.CompletedAt = s.now().UnixMilli()
		}
	} else {
		task.CompletedAt = 0
	}
	s.tasks.Upsert(ctx, task)
	return task
}

// Delete removes a task. Unknown ids are a no-op.
func (s *TaskService) Delete(ctx context.Context, id string) {
	s.tasks.Delete(ctx, id)
}

// Cycle advances a task one step around the status wheel
// (open -> in_progress -> done -> open) and saves it. It returns the
// updated task, or false if the id is unknown.
func (s *TaskService) Cycle(ctx context.Context, id string) (models.Task, bool) {
	task, ok := s.tasks.Get(ctx, id)
	if !ok {
		return models.Task{}, false
	}

	switch task.Status {
	case models.TaskOpen:
		task.Status = models.TaskInProgress
	case models.TaskInProgress:
		task.Status = models.TaskDone
	default:
		task.Status = models.TaskOpen
	}
	task.CompletedAt = 0

	return s.Save(ctx, task), true
}
