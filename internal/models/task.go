package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskCategory groups tasks by operational area.
type TaskCategory string

const (
	TaskCategoryCleaning    TaskCategory = "cleaning"
	TaskCategoryMaintenance TaskCategory = "maintenance"
	TaskCategoryHACCP       TaskCategory = "haccp"
	TaskCategoryReception   TaskCategory = "reception"
	TaskCategoryOther       TaskCategory = "other"
)

// TaskPriority orders tasks for display.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskRecurrence describes how a task repeats after completion.
type TaskRecurrence string

const (
	TaskRecurrenceNone    TaskRecurrence = "none"
	TaskRecurrenceDaily   TaskRecurrence = "daily"
	TaskRecurrenceWeekly  TaskRecurrence = "weekly"
	TaskRecurrenceMonthly TaskRecurrence = "monthly"
)

// Closed sets accepted on import.
var (
	TaskCategories = []TaskCategory{
		TaskCategoryCleaning,
		TaskCategoryMaintenance,
		TaskCategoryHACCP,
		TaskCategoryReception,
		TaskCategoryOther,
	}
	TaskPriorities  = []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}
	TaskRecurrences = []TaskRecurrence{
		TaskRecurrenceNone,
		TaskRecurrenceDaily,
		TaskRecurrenceWeekly,
		TaskRecurrenceMonthly,
	}
)

// Task is a tracked operational to-do. Tags are non-critical metadata;
// on import they are the one field where bad entries are dropped
// individually instead of rejecting the record.
type Task struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    TaskCategory   `json:"category"`
	Priority    TaskPriority   `json:"priority"`
	Recurrence  TaskRecurrence `json:"recurrence"`
	Done        bool           `json:"done"`
	DueAt       *time.Time     `json:"dueAt,omitempty"`
	CompletedAt *time.Time     `json:"completedAt,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Note        string         `json:"note,omitempty"`
}

// NewTask creates an open task with a fresh id.
func NewTask(title string, category TaskCategory, priority TaskPriority) *Task {
	return &Task{
		ID:         uuid.NewString(),
		Title:      title,
		Category:   category,
		Priority:   priority,
		Recurrence: TaskRecurrenceNone,
	}
}

func (t Task) EntityID() string { return t.ID }
