package domain

import (
	"strings"
	"time"
)

// Task represents a task in the domain model.
// This is a pure domain model without storage concerns.
type Task struct {
	ID          string
	Description string
	Completed   bool
	CreatedAt   time.Time
	DueDate     *time.Time
	OwnerID     string
}

// NewTask creates an incomplete task created at now.
func NewTask(id, ownerID, description string, due *time.Time, now time.Time) Task {
	return Task{
		ID:          id,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		DueDate:     copyTime(due),
		OwnerID:     ownerID,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && t.OwnerID != "" && strings.TrimSpace(t.Description) != ""
}

// HasDueDate reports whether the task has a deadline.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// IsOverdue reports whether the task is incomplete and its due date precedes now.
func (t Task) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// IsDueToday reports whether the task is incomplete and due on now's calendar day.
func (t Task) IsDueToday(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && SameDay(*t.DueDate, now)
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	c := t
	c.DueDate = copyTime(t.DueDate)
	return c
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// ParsedCandidate is the parser's tentative task before confirmation.
type ParsedCandidate struct {
	Description string
	DueDate     *time.Time
}

// HasDueDate reports whether a date expression was recognized.
func (c ParsedCandidate) HasDueDate() bool {
	return c.DueDate != nil
}
