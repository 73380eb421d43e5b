package domain

import "math"

// Stats summarizes a task collection.
type Stats struct {
	Total          int
	Pending        int
	Completed      int
	Overdue        int
	DueToday       int
	CompletionRate int
}

// CompletionRate returns completed/total as a rounded percentage, 0 for an empty collection.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
