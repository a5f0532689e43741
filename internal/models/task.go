package models

// TaskStatus is the lifecycle state of a task.
//
// Tasks move open -> in_progress -> done; a done task can be reopened,
// which clears its completion timestamp.
type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// Task is a tracked chore or incident.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assignedTo"`
	Status      TaskStatus `json:"status"`
	DueDate     string     `json:"dueDate"`
	Category    string     `json:"category"`
	CreatedBy   string     `json:"createdBy"`

	// CompletedAt is a Unix-millisecond timestamp set when the task
	// enters done, zero otherwise. Done tasks are purged after a
	// retention window measured from this instant.
	CompletedAt int64 `json:"completedAt,omitempty"`
}

// EntityID implements repository.Entity.
func (t Task) EntityID() string { return t.ID }
