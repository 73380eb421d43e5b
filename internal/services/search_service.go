package services

import (
	"time"

	"say-to-plan/internal/domain"
)

// FilterTasks returns the tasks in view, keeping collection order.
func FilterTasks(tasks []domain.Task, view View, now time.Time) []domain.Task {
	var keep func(domain.Task) bool
	switch view {
	case ViewPending:
		keep = func(t domain.Task) bool { return !t.Completed }
	case ViewCompleted:
		keep = func(t domain.Task) bool { return t.Completed }
	case ViewOverdue:
		keep = func(t domain.Task) bool { return t.IsOverdue(now) }
	case ViewToday:
		keep = func(t domain.Task) bool { return t.IsDueToday(now) }
	default:
		return tasks
	}

	result := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}

// View returns the owner's tasks in view, newest first.
func (s *TaskStore) View(view View) []domain.Task {
	tasks, now := s.snapshot()
	return FilterTasks(tasks, view, now)
}

// Tasks returns every task of the owner, newest first.
func (s *TaskStore) Tasks() []domain.Task { return s.View(ViewAll) }

// Pending returns incomplete tasks.
func (s *TaskStore) Pending() []domain.Task { return s.View(ViewPending) }

// Completed returns completed tasks.
func (s *TaskStore) Completed() []domain.Task { return s.View(ViewCompleted) }

// Overdue returns incomplete tasks whose due date has passed.
func (s *TaskStore) Overdue() []domain.Task { return s.View(ViewOverdue) }

// DueToday returns incomplete tasks due on the current calendar day.
func (s *TaskStore) DueToday() []domain.Task { return s.View(ViewToday) }
