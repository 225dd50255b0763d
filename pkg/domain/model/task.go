package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/tom-tochito/procomply/pkg/domain/types"
)

// NewTaskID generates a new UUID v4 TaskID
func NewTaskID() types.TaskID {
	return types.TaskID(uuid.New().String())
}

// Task represents a compliance task, optionally attached to a building
type Task struct {
	ID          types.TaskID
	TenantID    types.TenantID
	BuildingID  types.BuildingID
	Title       string
	Description string
	Status      types.TaskStatus
	Priority    types.TaskPriority
	DueDate     string // ISO date ("2006-01-02"), empty when unset
	Assignee    string

	TemplateID types.TemplateID
	Data       map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOverdue reports whether the task's due date has passed relative to now.
// Completed tasks are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == types.TaskStatusCompleted || t.DueDate == "" {
		return false
	}
	due, err := time.Parse("2006-01-02", t.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now.Truncate(24 * time.Hour))
}
