package services

import (
	"time"

	"say-to-plan/internal/domain"
)

// ComputeStats summarizes tasks as of now.
func ComputeStats(tasks []domain.Task, now time.Time) domain.Stats {
	stats := domain.Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
		if t.IsDueToday(now) {
			stats.DueToday++
		}
	}
	stats.CompletionRate = domain.CompletionRate(stats.Completed, stats.Total)
	return stats
}

// Stats summarizes the owner's collection.
func (s *TaskStore) Stats() domain.Stats {
	tasks, now := s.snapshot()
	return ComputeStats(tasks, now)
}
